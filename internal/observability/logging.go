// Package observability builds the puzzle runner's logger. Logs go to stderr;
// stdout carries only the puzzle answer.
package observability

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/advent/internal/config"
)

// LoggerName is the root name of every runner logger.
const LoggerName = "advent"

// NewLogger creates a structured stderr logger from the given logging configuration.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
// Postcondition: Returns a configured zap.Logger or a non-nil error.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	return newLogger(cfg, zapcore.Lock(os.Stderr))
}

// newLogger writes to out without sampling; every tuning trial is logged.
// Caller annotations are added at debug level only.
func newLogger(cfg config.LoggingConfig, out zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}
	enc, err := encoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(enc, out, zap.NewAtomicLevelAt(level))
	opts := []zap.Option{zap.ErrorOutput(out), zap.AddStacktrace(zapcore.DPanicLevel)}
	if level == zapcore.DebugLevel {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(core, opts...).Named(LoggerName), nil
}

func encoder(format string) (zapcore.Encoder, error) {
	switch format {
	case "json":
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(ec), nil
	case "console":
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(ec), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// ForRun tags logger with the day and part being solved.
func ForRun(logger *zap.Logger, day, part int) *zap.Logger {
	return logger.With(zap.Int("day", day), zap.Int("part", part))
}
