package hardfloat

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hardfloat-specific context.
// This provides structured logging with consistent field names.
//
// Only the batch Evaluator logs; the arithmetic itself is silent.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithFormat adds the format name to the logger.
func (l *Logger) WithFormat(f Format) *Logger {
	return &Logger{
		Logger: l.Logger.With("format", f.Name()),
	}
}

// WithRoundingMode adds a rounding mode field to the logger.
func (l *Logger) WithRoundingMode(rm RoundingMode) *Logger {
	return &Logger{
		Logger: l.Logger.With("rounding_mode", rm.String()),
	}
}

// LogBatch logs the outcome of one batch evaluation.
func (l *Logger) LogBatch(ctx context.Context, op string, count int, sticky Flags, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch failed",
			"op", op,
			"count", count,
			"error", err,
		)
		return
	}
	if sticky.Has(Invalid) {
		l.WarnContext(ctx, "batch raised invalid",
			"op", op,
			"count", count,
			"flags", sticky.String(),
		)
		return
	}
	l.DebugContext(ctx, "batch completed",
		"op", op,
		"count", count,
		"flags", sticky.String(),
	)
}

// LogCapabilities logs the host floating-point features detected at startup.
func (l *Logger) LogCapabilities(ctx context.Context, c Capabilities) {
	l.DebugContext(ctx, "host capabilities",
		"arch", c.Arch,
		"fma", c.FMA,
		"half_precision", c.HalfPrecision,
		"bfloat16", c.BFloat16,
	)
}
