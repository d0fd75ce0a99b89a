package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"

	"hadirku_backend/internals/features/attendance/qrtoken"
)

const CurrentKey = "hadirku:qr:current"

var ErrNoToken = errors.New("belum ada token QR aktif")

type RedisStore struct {
	Client *redis.Client
	Key    string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client, Key: CurrentKey}
}

func (s *RedisStore) Load(ctx context.Context) (qrtoken.Token, error) {
	raw, err := s.Client.Get(ctx, s.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return qrtoken.Token{}, ErrNoToken
	}
	if err != nil {
		return qrtoken.Token{}, err
	}
	var tok qrtoken.Token
	if err := sonic.Unmarshal(raw, &tok); err != nil {
		return qrtoken.Token{}, err
	}
	return tok, nil
}

// Save: TTL mengikuti ExpiresAt supaya key hilang sendiri lewat tengah malam.
func (s *RedisStore) Save(ctx context.Context, tok qrtoken.Token, now time.Time) error {
	ttl := tok.ExpiresAt.Sub(now)
	if ttl <= 0 {
		return qrtoken.ErrTokenExpired
	}
	raw, err := sonic.Marshal(tok)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.Key, raw, ttl).Err()
}
