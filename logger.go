package fusedl2

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with fusedl2-specific context.
// This provides structured logging with consistent field names.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRows adds a query row count field to the logger.
func (l *Logger) WithRows(rows int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows),
	}
}

// WithRefs adds a reference row count field to the logger.
func (l *Logger) WithRefs(refs int) *Logger {
	return &Logger{
		Logger: l.Logger.With("refs", refs),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogAssign logs an assignment operation.
func (l *Logger) LogAssign(ctx context.Context, rows, refs, dim int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "assignment failed",
			"rows", rows,
			"refs", refs,
			"dimension", dim,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "assignment completed",
			"rows", rows,
			"refs", refs,
			"dimension", dim,
			"duration", duration,
		)
	}
}
