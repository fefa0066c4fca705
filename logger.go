package funi

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger is the slog.Logger the package reports through. Records use the
// keys "method", "height", "width" and "unique".
type Logger struct {
	*slog.Logger
}

// NewLogger logs through handler, or through an info level text handler on
// stderr when handler is nil. Any slog.Handler works, including
// charmbracelet/log loggers.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return NewTextLogger(slog.LevelInfo)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger writes JSON lines at level and above to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger writes logfmt lines at level and above to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger drops every record.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// WithShape returns a child logger tagged with the table extents.
func (l *Logger) WithShape(height, width int) *Logger {
	return &Logger{Logger: l.With("height", height, "width", width)}
}

// LogUnique reports one deduplication call: failures at error level,
// results at debug level.
func (l *Logger) LogUnique(ctx context.Context, m Method, height, width, unique int, err error) {
	attrs := []any{"method", m.String(), "height", height, "width", width}
	if err != nil {
		l.ErrorContext(ctx, "unique failed", append(attrs, "error", err)...)
		return
	}
	l.DebugContext(ctx, "unique completed", append(attrs, "unique", unique)...)
}

// LogBatch reports a finished UniqueBatch run.
func (l *Logger) LogBatch(ctx context.Context, tables, failed int) {
	if failed == 0 {
		l.InfoContext(ctx, "batch completed", "tables", tables)
		return
	}
	l.WarnContext(ctx, "batch completed with failures",
		"tables", tables, "failed", failed, "succeeded", tables-failed)
}
