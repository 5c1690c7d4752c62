package server

import "context"

type contextKey string

const (
	contextKeyRequestID  contextKey = "requestID"
	contextKeyAPIVersion contextKey = "apiVersion"
)

// RequestIDFromContext returns the request id set by the middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}

// APIVersionFromContext returns the negotiated API version.
func APIVersionFromContext(ctx context.Context) string {
	v, ok := ctx.Value(contextKeyAPIVersion).(string)
	if !ok || v == "" {
		return DefaultAPIVersion
	}
	return v
}
