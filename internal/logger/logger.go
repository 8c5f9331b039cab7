package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a zap logger configured for dev or prod at the given level.
// MODE=prod selects the production config, anything else development.
// An unparsable level falls back to info.
func New(level string) *zap.SugaredLogger {
	var cfg zap.Config

	if os.Getenv("MODE") == "prod" {
		cfg = zap.NewProductionConfig()
		cfg.DisableCaller = true
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg.Level = zap.NewAtomicLevelAt(lvl)
	// keep stdout clean for command output
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		// Fallback to a simple logger if the configured one fails
		fallback := zap.NewExample().Sugar()
		fallback.Warnf("Failed to create configured logger: %v", err)

		return fallback
	}

	return logger.Sugar()
}

// NewNullSugaredLogger returns a logger that discards everything
func NewNullSugaredLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
