package configs

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger membuat logger zap untuk layer service.
// APP_ENV=development → console encoder + level debug.
func NewLogger() *zap.Logger {
	var cfg zap.Config
	if GetEnv("APP_ENV", "production") == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Printf("[WARN] zap init gagal, pakai nop logger: %v", err)
		return zap.NewNop()
	}
	return logger.With(zap.String("service", "hadirku"))
}
