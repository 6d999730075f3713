// Package logging builds the structured loggers used across citynews.
//
// Loggers write to stderr by default so log lines never interleave with the
// terminal UI or with command output on stdout.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/inovacc/citynews/internal/model"
)

type contextKey string

const (
	loggerContextKey    contextKey = "logger"
	requestIDContextKey contextKey = "request_id"
)

// ParseLevel converts a level name into a slog.Level.
// Unknown names fall back to warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// New creates a logger writing to w with the given level and format.
// format is either model.LogFormatJSON or model.LogFormatText.
func New(w io.Writer, level, format string) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	}

	if strings.EqualFold(format, model.LogFormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// FromContext retrieves the logger from the context, or returns the default logger if not found.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}

	return slog.Default()
}

// WithRequestID stores the id of an outgoing request in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, id)
}

// RequestID returns the request id stored in the context, or "".
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDContextKey).(string); ok {
		return id
	}

	return ""
}

// WithRequest returns a logger that includes the request id from the context.
func WithRequest(ctx context.Context, logger *slog.Logger) *slog.Logger {
	id := RequestID(ctx)
	if id == "" {
		return logger
	}

	return logger.With(slog.String("request_id", id))
}
