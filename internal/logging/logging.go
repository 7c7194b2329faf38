// Package logging wraps slog.Logger with nrrd-specific fields.
package logging

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with consistent field names for fetch and
// decode events.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithSource adds the input name to the logger.
func (l *Logger) WithSource(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", name),
	}
}

// LogFetch logs acquisition of an input buffer.
func (l *Logger) LogFetch(ctx context.Context, size int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fetch failed",
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "fetch completed",
			"bytes", size,
			"elapsed", elapsed,
		)
	}
}

// LogDecode logs the outcome of a decode.
func (l *Logger) LogDecode(ctx context.Context, encoding string, elements int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "decode failed",
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "decode completed",
			"encoding", encoding,
			"elements", elements,
			"elapsed", elapsed,
		)
	}
}

// LogBatch logs the summary of a multi-input run.
func (l *Logger) LogBatch(ctx context.Context, total, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch completed with failures",
			"total", total,
			"failed", failed,
		)
	} else {
		l.InfoContext(ctx, "batch completed",
			"total", total,
		)
	}
}
