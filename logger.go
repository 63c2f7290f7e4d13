package flattree

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/flattree/core"
)

// Logger wraps slog.Logger with flattree-specific context.
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
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

var discardLogger = NoopLogger()

// WithVariant adds a variant field to the logger.
func (l *Logger) WithVariant(v core.Variant) *Logger {
	return &Logger{
		Logger: l.Logger.With("variant", v.String()),
	}
}

// WithName adds a blob name field to the logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// LogEncode logs an encode operation.
func (l *Logger) LogEncode(ctx context.Context, v core.Variant, nodes int, maxChildren uint64, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "encode failed",
			"variant", v.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "encode completed",
			"variant", v.String(),
			"nodes", nodes,
			"max_children", maxChildren,
			"elapsed", elapsed,
		)
	}
}

// LogBatchEncode logs an EncodeAll operation.
func (l *Logger) LogBatchEncode(ctx context.Context, count int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch encode failed",
			"total", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch encode completed",
			"count", count,
		)
	}
}

// LogQuery logs a path query.
func (l *Logger) LogQuery(ctx context.Context, pathLen, results int, found bool) {
	l.DebugContext(ctx, "query completed",
		"path_len", pathLen,
		"found", found,
		"results", results,
	)
}

// LogSave logs a save operation.
func (l *Logger) LogSave(ctx context.Context, name string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "encoding saved",
			"name", name,
			"bytes", size,
		)
	}
}

// LogLoad logs a load operation.
func (l *Logger) LogLoad(ctx context.Context, name string, v core.Variant, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "encoding loaded",
			"name", name,
			"variant", v.String(),
		)
	}
}
