package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// GinRequestID tags each HTTP request with a request ID, stores it in the
// request context, and echoes it in the response headers.
func GinRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := requestIDFrom(c.GetHeader(RequestIDHeader))
		c.Request = c.Request.WithContext(WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GinLogger logs each HTTP request through slog once it completes.
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"request_id", GetRequestID(c.Request.Context()),
			"remote_addr", c.ClientIP(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			slog.Error("Request completed", attrs...)
		case status >= 400:
			slog.Warn("Request completed", attrs...)
		default:
			slog.Info("Request completed", attrs...)
		}
	}
}
