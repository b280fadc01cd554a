// Package main is the entry point for the trip offer aggregation service.
//
//	@title						Trip Offer Aggregation API
//	@version					1.0.0
//	@description				A travel-planning service that aggregates flight offers across candidate date windows and manages saved trips.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/trip-planner/trip-offer-aggregation-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/config"

	// Import generated docs for swagger
	_ "github.com/trip-planner/trip-offer-aggregation-service/docs"

	// Application layers
	"github.com/trip-planner/trip-offer-aggregation-service/internal/adapter/flightrpc"
	triphttp "github.com/trip-planner/trip-offer-aggregation-service/internal/adapter/http"
	"github.com/trip-planner/trip-offer-aggregation-service/internal/adapter/http/middleware"
	"github.com/trip-planner/trip-offer-aggregation-service/internal/adapter/localstore"
	"github.com/trip-planner/trip-offer-aggregation-service/internal/adapter/savedapi"
	"github.com/trip-planner/trip-offer-aggregation-service/internal/adapter/searchapi"
	"github.com/trip-planner/trip-offer-aggregation-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	setupMiddleware(e)

	// Setup routes
	setupRoutes(e, cfg)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Use console writer for non-JSON format
	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	// Set log level from config
	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// setupMiddleware configures the Echo middleware stack: request ID,
// request logging, and panic recovery, in that order.
func setupMiddleware(e *echo.Echo) {
	middleware.Setup(e, log.Logger)
}

// setupRoutes wires the adapters and use cases and registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config) {
	// Offer search pipeline: JSON-RPC source plus the seeded fallback generator
	offerSource := flightrpc.New(flightrpc.Config{
		BaseURL:           cfg.Backends.FlightRPCURL,
		Timeout:           cfg.Backends.FlightRPCTimeout,
		RequestsPerSecond: cfg.Backends.FlightRPCRate,
	})

	seed := cfg.Search.MockSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fallback := usecase.NewMockOfferGenerator(seed)

	offerSearch := usecase.NewOfferSearchUseCase(offerSource, fallback, usecase.Config{
		OriginAirport: cfg.Search.OriginAirport,
		WindowCount:   cfg.Search.WindowCount,
		ResultLimit:   cfg.Search.ResultLimit,
	}, log.Logger)

	// Saved trips: remote collection first, local JSON file as fallback
	remoteStore := savedapi.New(savedapi.Config{
		BaseURL: cfg.Backends.TripAPIURL,
		Timeout: cfg.Backends.TripAPITimeout,
	})
	localStore := localstore.New(cfg.Store.LocalPath, nil)
	savedTrips := usecase.NewSavedTripsUseCase(remoteStore, localStore, log.Logger)

	// Free-text trip search
	queryParser := searchapi.New(searchapi.Config{
		BaseURL: cfg.Backends.TripAPIURL,
		Timeout: cfg.Backends.TextSearchTimeout,
	})
	textSearch := usecase.NewTextSearchUseCase(queryParser)

	// Initialize handler and routes
	handler := triphttp.NewTripHandler(offerSearch, savedTrips, textSearch)
	triphttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
