package httputil

import (
	"context"
	"net/http"
)

// Context key type to avoid collisions
type contextKey string

const (
	subjectKey   contextKey = "subject"
	requestIDKey contextKey = "requestID"
)

// WithSubject adds the authenticated subject to the request context
func WithSubject(r *http.Request, subject string) *http.Request {
	ctx := context.WithValue(r.Context(), subjectKey, subject)
	return r.WithContext(ctx)
}

// GetSubject retrieves the authenticated subject from context, returns empty string if not found
func GetSubject(r *http.Request) string {
	subject, _ := r.Context().Value(subjectKey).(string)
	return subject
}

// WithRequestID adds the request ID to the context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID retrieves the request ID from context, returns empty string if not found
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
