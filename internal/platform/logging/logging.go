// Package logging builds the slog loggers used across ticketcore and carries
// them through context.
//
// The scenario runner stores a logger tagged with the current step in the
// context; services log through FromContextOr so that their records carry
// the step that caused them:
//
//	ctx = logging.With(ctx, slog.Int("step", i), slog.String("op", op))
//	...
//	logging.FromContextOr(ctx, s.logger).WarnContext(ctx, "command rejected",
//	    slog.String("operation", "MoveTicket"),
//	    slog.Any("error", err),
//	)
//
// Error records include the operation name, entity identifiers and the full
// error chain via slog.Any("error", err). Personal data such as email
// addresses is redacted by the handler.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type contextKey struct{}

// New creates a logger writing to w.
//
// level is one of debug, info, warn or error, in any case; anything else
// logs at info. format is FormatText or FormatJSON; anything else is JSON.
// Debug loggers include the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}
	if format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel parses one of the four named levels, ignoring case. Offsets
// such as "info+2" are rejected.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// With returns a copy of ctx whose logger also records args.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

// FromContext returns the logger carried by ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, slog.Default())
}

// FromContextOr returns the logger carried by ctx, or fallback.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return fallback
}
