package service

import (
	"context"
	"errors"
	"sync"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"hadirku_backend/internals/features/attendance/qrtoken"
	"hadirku_backend/internals/features/attendance/qrtoken/repository"
)

type Store interface {
	Load(ctx context.Context) (qrtoken.Token, error)
	Save(ctx context.Context, tok qrtoken.Token, now time.Time) error
}

type QRService struct {
	Store     Store
	Generator qrtoken.Generator
	BaseURL   string
	ImageSize int
	Log       *zap.Logger

	mu sync.Mutex
}

func NewQRService(store Store, gen qrtoken.Generator, baseURL string, imageSize int, log *zap.Logger) *QRService {
	if log == nil {
		log = zap.NewNop()
	}
	if imageSize <= 0 {
		imageSize = 320
	}
	return &QRService{Store: store, Generator: gen, BaseURL: baseURL, ImageSize: imageSize, Log: log}
}

// Current: token aktif; dibuat baru kalau belum ada / sudah lewat.
func (s *QRService) Current(ctx context.Context, now time.Time) (qrtoken.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := s.Store.Load(ctx)
	switch {
	case err == nil && !tok.Expired(now):
		return tok, nil
	case err != nil && !errors.Is(err, repository.ErrNoToken):
		return qrtoken.Token{}, err
	}
	return s.rotateLocked(ctx, now)
}

func (s *QRService) Rotate(ctx context.Context, now time.Time) (qrtoken.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rotateLocked(ctx, now)
}

func (s *QRService) rotateLocked(ctx context.Context, now time.Time) (qrtoken.Token, error) {
	tok := s.Generator.Generate(now)
	if err := s.Store.Save(ctx, tok, now); err != nil {
		return qrtoken.Token{}, err
	}
	s.Log.Info("qr token rotated", zap.Time("expires_at", tok.ExpiresAt))
	return tok, nil
}

// Verify dipakai alur scan. Belum ada token sama sekali → dianggap mismatch.
func (s *QRService) Verify(ctx context.Context, scanned string, now time.Time) error {
	tok, err := s.Store.Load(ctx)
	if errors.Is(err, repository.ErrNoToken) {
		return qrtoken.ErrTokenMismatch
	}
	if err != nil {
		return err
	}
	return tok.Validate(qrtoken.ExtractValue(scanned), now)
}

// PNG: gambar QR token aktif (recovery Medium).
func (s *QRService) PNG(ctx context.Context, now time.Time) ([]byte, qrtoken.Token, error) {
	tok, err := s.Current(ctx, now)
	if err != nil {
		return nil, qrtoken.Token{}, err
	}
	png, err := qrcode.Encode(qrtoken.Content(s.BaseURL, tok), qrcode.Medium, s.ImageSize)
	if err != nil {
		return nil, qrtoken.Token{}, err
	}
	return png, tok, nil
}
