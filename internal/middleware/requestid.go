package middleware

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// RequestIDKey is the context key for storing the request ID.
const RequestIDKey contextKey = "request_id"

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// GetRequestID extracts the request ID from the context.
// Returns empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// requestIDFrom reuses the caller's ID when present and mints one otherwise.
func requestIDFrom(header string) string {
	if header != "" {
		return header
	}
	return uuid.NewString()
}

// RequestIDInterceptor returns a Connect interceptor that tags each call with
// a request ID and echoes it in the response headers. When an outer HTTP
// middleware already tagged the context, its ID is kept and the header is
// left to that middleware.
func RequestIDInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if GetRequestID(ctx) != "" {
				return next(ctx, req)
			}

			id := requestIDFrom(req.Header().Get(RequestIDHeader))
			ctx = WithRequestID(ctx, id)

			resp, err := next(ctx, req)
			if resp != nil {
				resp.Header().Set(RequestIDHeader, id)
			}
			return resp, err
		}
	}
}
