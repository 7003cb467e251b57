package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/finpulse/internal/logger"
)

// RequestLogger is a Gin middleware that attaches a request-scoped logger to
// the request context and logs method, path, status code, latency and
// request ID once the request completes.
//
// Handlers and services retrieve the scoped logger with
// logger.FromContext(c.Request.Context()), so every line they emit carries
// the same request_id.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
//
// Example log output:
//
//	{"level":"info","service":"finpulse","request_id":"123e4567-...","method":"GET","path":"/api/v1/news","status":200,"latency_ms":15,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		rid, _ := c.Get(RequestIDKey)
		scoped := logger.L().With().Str("request_id", toString(rid)).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), scoped))

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		event := scoped.Info()
		if status >= 500 {
			event = scoped.Error()
		}
		event.
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", latency.Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
