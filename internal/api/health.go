package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/finpulse/internal/logger"
)

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on the provider response cache).
//
// Provider availability is deliberately not part of readiness: the feed
// degrades to fixtures instead of failing.
type HealthHandler struct {
	cachePing func(ctx context.Context) error
}

// NewHealthHandler constructs a HealthHandler with the provided ping function.
//
// Parameters:
//   - cachePing (func(ctx) error): Checks that the response cache is reachable.
//     Typically, this is cache.Cache.Ping. May be nil.
//
// Returns:
//   - *HealthHandler: A new handler instance.
func NewHealthHandler(cachePing func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{cachePing: cachePing}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if the cache answers, 503 otherwise.
//
// Parameters:
//   - r (*gin.Engine): The Gin router to register routes on.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks if the service is up)
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness probe (checks the response cache)
	// @Summary      Readiness probe
	// @Description  Returns ready if the provider response cache is reachable
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.cachePing != nil {
			if err := h.cachePing(c.Request.Context()); err != nil {
				logger.FromContext(c.Request.Context()).Warn().Err(err).Msg("readiness check failed")
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
}
