// Package context holds request-scoped values and timeout helpers shared by
// pulseboard components.
package context

import (
	"context"
	"time"
)

// DefaultPingTimeout bounds dependency health checks.
const DefaultPingTimeout = 2 * time.Second

type requestIDKey struct{}

// WithRequestID stores id in ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithPingTimeout derives a context bounded by DefaultPingTimeout.
func WithPingTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultPingTimeout)
}
