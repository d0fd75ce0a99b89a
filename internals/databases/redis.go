package database

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"hadirku_backend/internals/configs"
)

var Redis *redis.Client

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func RedisConfigFromEnv() RedisConfig {
	return RedisConfig{
		Addr:     configs.GetEnv("REDIS_ADDR", "localhost:6379"),
		Password: configs.GetEnv("REDIS_PASSWORD"),
		DB:       configs.GetEnvInt("REDIS_DB", 0),
	}
}

func NewRedisClient(cfg RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// ConnectRedis: gagal ping hanya warning, token QR akan error saat dipakai.
func ConnectRedis() {
	cfg := RedisConfigFromEnv()
	Redis = NewRedisClient(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] Redis %s belum bisa di-ping: %v", cfg.Addr, err)
		return
	}
	log.Printf("✅ Redis connected (%s db=%d)", cfg.Addr, cfg.DB)
}

func CloseRedis() {
	if Redis != nil {
		_ = Redis.Close()
	}
}
