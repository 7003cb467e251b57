package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/finpulse/config"
	"github.com/guttosm/finpulse/internal/api"
	"github.com/guttosm/finpulse/internal/logger"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Opens the provider response cache (Redis or in-process) via InitCache().
//   - Builds the provider clients and the feed orchestrator.
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., the Redis client).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// indirection for unit testing
	c, err := cacheOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	if !cfg.IsFinnhubConfigured() {
		logger.L().Warn().Msg("FINNHUB_API_KEY not set, equity news and quotes will come from fixtures")
	}

	// Initialize service layer (provider clients + orchestrator)
	svc := BuildFeedService(cfg, c)

	// Initialize HTTP handler layer
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler, cfg.RateLimit)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(c.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = c.Close()
	}

	return router, cleanup, nil
}
