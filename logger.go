package gridcore

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with gridcore-specific context.
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

// WithColumn adds a column index field to the logger.
func (l *Logger) WithColumn(col int) *Logger {
	return &Logger{
		Logger: l.Logger.With("column", col),
	}
}

// WithRows adds a row count field to the logger.
func (l *Logger) WithRows(rows int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows),
	}
}

// LogIngest logs a row ingestion operation.
func (l *Logger) LogIngest(ctx context.Context, rows, cols int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "ingest failed",
			"rows", rows,
			"columns", cols,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "ingest completed",
			"rows", rows,
			"columns", cols,
		)
	}
}

// LogRebuild logs a view rebuild.
func (l *Logger) LogRebuild(ctx context.Context, total, filtered int, elapsed time.Duration) {
	l.DebugContext(ctx, "view rebuilt",
		"total", total,
		"filtered", filtered,
		"elapsed", elapsed,
	)
}

// LogQuery logs a window query.
func (l *Logger) LogQuery(ctx context.Context, scrollTop float64, start, end int) {
	l.DebugContext(ctx, "window query",
		"scroll_top", scrollTop,
		"start", start,
		"end", end,
	)
}
