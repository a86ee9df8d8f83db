package log

import "context"

// FieldRequestID is the structured field name carrying the request id.
const FieldRequestID = "request_id"

type requestIDKey struct{}

// WithRequestID stores the request id so every log line written with ctx carries it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
