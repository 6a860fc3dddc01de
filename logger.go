package sortbench

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/docker/go-units"

	"github.com/hupe1980/sortbench/model"
)

// Logger wraps slog.Logger with sortbench-specific context.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithMode adds a mode field to the logger.
func (l *Logger) WithMode(mode Mode) *Logger {
	return &Logger{
		Logger: l.Logger.With("mode", string(mode)),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithRank adds a rank (k) field to the logger.
func (l *Logger) WithRank(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// LogGenerate logs the generation phase.
func (l *Logger) LogGenerate(ctx context.Context, count int, seed uint64, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "generate failed",
			"count", count,
			"seed", seed,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "records generated",
			"count", count,
			"seed", seed,
			"size", units.HumanSize(float64(int64(count)*model.Size)),
			"duration", duration,
		)
	}
}

// LogOrder logs the timed ordering phase.
func (l *Logger) LogOrder(ctx context.Context, k int, elapsed, user, system time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "ordering failed",
			"k", k,
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "ordering completed",
			"k", k,
			"elapsed", elapsed,
			"cpu_user", user,
			"cpu_system", system,
		)
	}
}

// LogRelease logs the bulk release of arena-allocated records.
func (l *Logger) LogRelease(ctx context.Context, arena string, bytes int64) {
	l.DebugContext(ctx, "records released",
		"arena", arena,
		"bytes", units.BytesSize(float64(bytes)),
	)
}
