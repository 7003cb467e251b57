package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/finpulse/internal/metrics"
)

// Metrics records request counts and latencies per route template. Requests
// that match no route are grouped under "unmatched".
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
