// Package qrtoken mengelola token QR harian yang dipindai saat presensi.
package qrtoken

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTokenMismatch = errors.New("QR code tidak valid")
	ErrTokenExpired  = errors.New("QR code sudah kedaluwarsa, minta admin menampilkan QR terbaru")
)

type Token struct {
	Value     string    `json:"value"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Validate: cocokkan nilai (constant time) lalu cek kedaluwarsa.
func (t Token) Validate(candidate string, now time.Time) error {
	candidate = strings.TrimSpace(candidate)
	if t.Value == "" || candidate == "" ||
		subtle.ConstantTimeCompare([]byte(t.Value), []byte(candidate)) != 1 {
		return ErrTokenMismatch
	}
	if !now.Before(t.ExpiresAt) {
		return ErrTokenExpired
	}
	return nil
}

func (t Token) Expired(now time.Time) bool { return !now.Before(t.ExpiresAt) }

type Generator struct {
	Location *time.Location
	// NewValue bisa diganti di test.
	NewValue func() string
}

func NewGenerator(loc *time.Location) Generator {
	if loc == nil {
		loc = time.UTC
	}
	return Generator{Location: loc, NewValue: uuid.NewString}
}

// Generate: token baru yang berlaku sampai tengah malam berikutnya (zona sekolah).
func (g Generator) Generate(now time.Time) Token {
	loc := g.Location
	if loc == nil {
		loc = time.UTC
	}
	newValue := g.NewValue
	if newValue == nil {
		newValue = uuid.NewString
	}
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc)
	return Token{Value: newValue(), IssuedAt: local, ExpiresAt: midnight}
}
