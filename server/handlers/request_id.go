package handlers

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID stores the request id for handler logging.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
