package logger

import (
	"context"
	"log/slog"
)

type kindKey struct{}

// WithKind returns a context whose log records carry kind=name.
func WithKind(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, kindKey{}, name)
}

// KindFromContext is the ContextExtractor for WithKind.
func KindFromContext(ctx context.Context) (slog.Attr, bool) {
	name, ok := ctx.Value(kindKey{}).(string)
	if !ok || name == "" {
		return slog.Attr{}, false
	}
	return Kind(name), true
}
