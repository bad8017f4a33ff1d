package utils

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// InitLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
// LOG_FORMAT=console gives the development encoder; anything else is JSON on
// stdout for log collectors.
func InitLogger() error {
	var level zapcore.Level
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var config zap.Config
	if os.Getenv("LOG_FORMAT") == "console" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.OutputPaths = []string{"stdout"}
		config.ErrorOutputPaths = []string{"stderr"}
	}
	config.Level = zap.NewAtomicLevelAt(level)

	built, err := config.Build()
	if err != nil {
		return err
	}
	logger = built.With(zap.String("service_name", "rent-it-server"))
	return nil
}

// Log returns the process logger. Before InitLogger it is a no-op logger, so
// packages may log unconditionally.
func Log() *zap.Logger {
	return logger
}
