// Package slogctx carries a [slog.Logger] inside a context.
package slogctx

import (
	"context"
	"log/slog"

	"libdb.so/ctxt"
)

// From returns a slog.Logger from the context. If no logger is found, the
// default logger is returned.
func From(ctx context.Context) *slog.Logger {
	logger, ok := ctxt.From[*slog.Logger](ctx)
	if ok {
		return logger
	}
	return slog.Default()
}

// With returns a new context carrying logger.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return ctxt.With(ctx, logger)
}

// WithAttrs returns a new context whose logger has the given attributes
// added.
func WithAttrs(ctx context.Context, args ...any) context.Context {
	return With(ctx, From(ctx).With(args...))
}
