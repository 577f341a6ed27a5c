// Package obscontext carries request-scoped observability identifiers.
package obscontext

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	principalKey contextKey = "principal"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// WithPrincipal records the authenticated username for log correlation.
func WithPrincipal(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, principalKey, username)
}

func PrincipalFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(principalKey).(string); ok {
		return v
	}
	return ""
}
