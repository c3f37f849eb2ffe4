package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger لاگر سراسری برنامه؛ تا قبل از InitLogger بی‌صدا است
var Logger = zap.NewNop()

// InitLogger builds the global logger for the given environment.
func InitLogger(env string) error {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = l
	Logger.Info("✅ Zap logger initialized", zap.String("env", env))
	return nil
}

// SyncLogger flushes buffered entries.
func SyncLogger() {
	_ = Logger.Sync()
}
