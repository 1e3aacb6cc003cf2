package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"

	"github.com/lvyanru/aida-chat/pkg/logger"
)

// RequestIDKey is the header carrying the request id
const RequestIDKey = "X-Request-ID"

// Logger assigns a request id, stores a tagged logger in the context and
// logs each request. Probe paths are not logged.
func Logger(base *slog.Logger) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		path := string(c.Path())

		requestID := string(c.Request.Header.Peek(RequestIDKey))
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Response.Header.Set(RequestIDKey, requestID)

		log := logger.WithRequestID(base, requestID)
		ctx = logger.WithContext(ctx, log)

		if skipLogging(path) {
			c.Next(ctx)
			return
		}

		log = log.With(
			"method", string(c.Method()),
			"path", path,
			"client_ip", c.ClientIP(),
		)
		log.Debug("request started")

		c.Next(ctx)

		latency := time.Since(start)
		statusCode := c.Response.StatusCode()
		log = log.With(
			"status", statusCode,
			"latency_ms", latency.Milliseconds(),
		)

		switch {
		case statusCode >= 500:
			log.Error("request completed with server error")
		case statusCode >= 400:
			log.Warn("request completed with client error")
		default:
			log.Info("request completed")
		}
	}
}

func skipLogging(path string) bool {
	return path == "/health/live" || path == "/health/ready" || path == "/ping"
}

// GetRequestID returns the request id set by Logger
func GetRequestID(c *app.RequestContext) string {
	return string(c.Response.Header.Peek(RequestIDKey))
}
