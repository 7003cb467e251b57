package main

//
//  @title           finpulse API
//  @version         1.0
//  @description     Financial news aggregation and normalization service.
//  @termsOfService  https://github.com/guttosm/finpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/finpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        news
//  @tag.description Aggregated news and market tickers
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/finpulse/config"
	_ "github.com/guttosm/finpulse/docs" // swagger docs
	"github.com/guttosm/finpulse/internal/app"
	"github.com/guttosm/finpulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., the Redis client).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// snapshotTimeout bounds a one-off aggregation in snapshot mode.
const snapshotTimeout = 30 * time.Second

// writeSnapshot runs one feed aggregation and writes the response as indented JSON.
//
// Parameters:
//   - ctx (context.Context): Bounds every provider call of the aggregation.
//   - cfg (config.Config): Configuration used to build the cache and providers.
//   - out (io.Writer): Destination of the JSON document (stdout in production).
//
// Returns:
//   - error: if the cache cannot be opened or the output cannot be written.
func writeSnapshot(ctx context.Context, cfg config.Config, out io.Writer) error {
	c, err := app.InitCache(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	resp := app.BuildFeedService(cfg, c).GetFeed(ctx)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// main is the entry point of the finpulse application.
//
// Modes (selected via --mode flag):
//   - api:      Starts the REST API serving the aggregated news feed.
//   - snapshot: Runs one aggregation and prints the feed JSON to stdout.
//
// Flags:
//   - --mode: Execution mode ("api" or "snapshot"). Default: "api".
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or snapshot")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	// stdout carries the snapshot document
	if *mode == "snapshot" && os.Getenv("LOG_OUTPUT") == "" {
		_ = os.Setenv("LOG_OUTPUT", "stderr")
	}

	// Initialize JSON logger
	logger.Init()

	switch *mode {
	case "snapshot":
		logger.L().Info().Msg("building feed snapshot")

		snapCtx, cancel := context.WithTimeout(ctx, snapshotTimeout)
		defer cancel()
		if err := writeSnapshot(snapCtx, config.AppConfig, os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("snapshot failed")
		}

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
