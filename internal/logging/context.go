package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// loggerKey is unexported so only this package can install a logger in a
// context; the empty struct costs nothing as a map key.
type loggerKey struct{}

// WithLogger attaches logger to ctx for retrieval by FromContext.
// A nil logger leaves ctx unchanged.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithFields attaches a child of the context logger carrying extra
// key-value pairs, so everything logged further down the call chain repeats
// them.
func WithFields(ctx context.Context, keyvals ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(keyvals...))
}

// FromContext returns the logger attached to ctx, or the process-wide
// default when none is attached.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
