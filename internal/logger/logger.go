package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"campushub/internal/config"
)

// New builds the application logger. Production uses zap's production preset,
// everything else the development preset; both emit JSON with an ISO8601 timestamp.
func New(cfg *config.AppConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Encoding = "json"

	if cfg.LogLevel != "" {
		if err := zapCfg.Level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
	}

	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapCfg.Build()
}
