package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestID is a Gin middleware that tags every request with an identifier.
//
// Behavior:
//   - Reuses the caller's X-Request-ID when it parses as a UUID, so a feed
//     request can be traced across a gateway and this service.
//   - Otherwise generates a new UUID (v4).
//   - Stores it in the Gin context under "request_id", where RequestLogger
//     picks it up for the request-scoped logger.
//   - Echoes it in the X-Request-ID response header.
//
// It must run before RequestLogger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
