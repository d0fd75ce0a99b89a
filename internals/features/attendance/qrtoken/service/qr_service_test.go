package service

import (
	"bytes"
	"context"
	"image/png"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hadirku_backend/internals/features/attendance/qrtoken"
	"hadirku_backend/internals/features/attendance/qrtoken/repository"
)

func setupService(t *testing.T) (*miniredis.Miniredis, *QRService) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	n := 0
	gen := qrtoken.Generator{Location: time.UTC, NewValue: func() string {
		n++
		return []string{"tok-a", "tok-b", "tok-c"}[n-1]
	}}
	return mr, NewQRService(repository.NewRedisStore(client), gen, "https://hadirku.test/scan", 256, zap.NewNop())
}

func TestQRService_CurrentIsStableWithinDay(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 4, 6, 0, 0, 0, time.UTC)

	first, err := svc.Current(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, "tok-a", first.Value)

	again, err := svc.Current(ctx, now.Add(3*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, first.Value, again.Value)
}

func TestQRService_RotateReplacesToken(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 4, 6, 0, 0, 0, time.UTC)

	_, err := svc.Current(ctx, now)
	require.NoError(t, err)
	rotated, err := svc.Rotate(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, "tok-b", rotated.Value)

	assert.ErrorIs(t, svc.Verify(ctx, "tok-a", now), qrtoken.ErrTokenMismatch)
	assert.NoError(t, svc.Verify(ctx, "tok-b", now))
	assert.NoError(t, svc.Verify(ctx, "https://hadirku.test/scan?token=tok-b", now))
}

func TestQRService_VerifyWithoutToken(t *testing.T) {
	_, svc := setupService(t)
	err := svc.Verify(context.Background(), "anything", time.Now())
	assert.ErrorIs(t, err, qrtoken.ErrTokenMismatch)
}

func TestQRService_KeyExpiresAtMidnight(t *testing.T) {
	mr, svc := setupService(t)
	now := time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC)
	_, err := svc.Current(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, mr.TTL(repository.CurrentKey))
}

func TestQRService_PNG(t *testing.T) {
	_, svc := setupService(t)
	raw, tok, err := svc.PNG(context.Background(), time.Date(2024, 3, 4, 6, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "tok-a", tok.Value)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}
