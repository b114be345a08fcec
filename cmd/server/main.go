// Package main is the entry point for the hotel search aggregation service.
//
//	@title						Hotel Search Aggregation API
//	@version					1.0.0
//	@description				A hotel availability aggregation service that queries multiple tour-operator suppliers and returns unified, deduplicated results.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/hotel-search/hotel-search-and-aggregation-system/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
//
//	@externalDocs.description	Technical Documentation
//	@externalDocs.url			https://github.com/hotel-search/hotel-search-and-aggregation-system/blob/main/docs/architecture.md
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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/hotel-search/hotel-search-and-aggregation-system/docs"

	// Application layers
	hotelhttp "github.com/hotel-search/hotel-search-and-aggregation-system/internal/adapter/http"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/adapter/http/middleware"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/adapter/provider/filos"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/adapter/provider/opengreece"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/adapter/provider/solvex"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/alert"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/cache"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/config"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/domain"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/history"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/infrastructure/logger"
	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second

	// alertQueueSize bounds each subscriber's alert queue
	alertQueueSize = 64

	// cacheCleanupInterval is how often expired in-memory entries are purged
	cacheCleanupInterval = time.Minute
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

	// Request ID, request logging, panic recovery
	middleware.Setup(e, log.Logger)

	// Wire application layers and routes
	cleanup := setupRoutes(e, cfg)
	defer cleanup()

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

// setupLogger builds the service logger from config and installs it as the
// global zerolog logger.
func setupLogger(cfg *config.Config) {
	appLog := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "hotel-search",
	})
	logger.SetGlobal(appLog)
	log.Logger = appLog.Logger
}

// setupRoutes wires suppliers, cache, alerts, history and handlers, then
// registers the HTTP routes. The returned function releases held resources.
func setupRoutes(e *echo.Echo, cfg *config.Config) func() {
	registry := registerSuppliers(cfg)

	store, stopCache := buildCache(cfg)
	bus := buildAlertBus(cfg)
	recorder, closeHistory := buildHistory(cfg)

	manager := usecase.NewProviderManager(registry, store, bus, recorder, log.Logger)
	engine := usecase.NewEngine(manager, usecase.EngineConfig{
		StaggerDelay:  cfg.Search.StaggerDelay,
		GlobalTimeout: cfg.Search.GlobalTimeout,
	}, log.Logger)

	handler := hotelhttp.NewHotelHandler(engine, manager)
	hotelhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return func() {
		stopCache()
		bus.Close()
		closeHistory()
	}
}

// registerSuppliers builds the supplier registry from configuration.
// Suppliers without an endpoint are skipped.
func registerSuppliers(cfg *config.Config) *domain.ProviderRegistry {
	registry := domain.NewProviderRegistry()

	if s := cfg.Suppliers.Solvex; s.Endpoint != "" {
		registry.Register(solvex.NewAdapter(solvex.Config{
			Endpoint: s.Endpoint,
			Username: s.Username,
			Password: s.Password,
			Enabled:  s.Enabled,
		}, log.Logger))
	} else {
		log.Warn().Msg("Solvex endpoint not set, supplier not registered")
	}

	if s := cfg.Suppliers.OpenGreece; s.Endpoint != "" {
		registry.Register(opengreece.NewAdapter(opengreece.Config{
			Endpoint: s.Endpoint,
			Username: s.Username,
			Password: s.Password,
			Enabled:  s.Enabled,
		}, log.Logger))
	} else {
		log.Warn().Msg("OpenGreece endpoint not set, supplier not registered")
	}

	if s := cfg.Suppliers.Filos; s.Endpoint != "" {
		registry.Register(filos.NewAdapter(filos.Config{
			Endpoint: s.Endpoint,
			APIKey:   s.APIKey,
			Enabled:  s.Enabled,
		}, log.Logger))
	} else {
		log.Warn().Msg("Filos endpoint not set, supplier not registered")
	}

	log.Info().Strs("suppliers", registry.Names()).Msg("Suppliers registered")
	return registry
}

// buildCache selects the result cache backend from configuration.
func buildCache(cfg *config.Config) (cache.Store, func()) {
	if cfg.Cache.Backend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		log.Info().Str("addr", cfg.Cache.RedisAddr).Msg("Using Redis result cache")
		return cache.NewRedis(client, cfg.Cache.TTL, log.Logger), func() {
			if err := client.Close(); err != nil {
				log.Error().Err(err).Msg("Error closing Redis client")
			}
		}
	}

	mem := cache.NewMemory(cfg.Cache.TTL)
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cacheCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				mem.Cleanup()
			case <-stop:
				return
			}
		}
	}()
	return mem, func() { close(stop) }
}

// buildAlertBus builds the alert bus with the configured notifiers.
func buildAlertBus(cfg *config.Config) *alert.Bus {
	bus := alert.NewBus(log.Logger)
	bus.Subscribe("log", alert.NewLogNotifier(log.Logger), alertQueueSize)

	if cfg.Alerts.TelegramToken != "" {
		bus.Subscribe("telegram",
			alert.NewTelegramNotifier(cfg.Alerts.TelegramToken, cfg.Alerts.TelegramChatID, log.Logger),
			alertQueueSize)
		log.Info().Msg("Telegram alert notifier enabled")
	}

	return bus
}

// buildHistory builds the search history recorder from configuration.
func buildHistory(cfg *config.Config) (history.Recorder, func()) {
	if cfg.History.DSN == "" {
		log.Info().Msg("Search history disabled")
		return history.Noop{}, func() {}
	}

	pg, err := history.NewPostgres(cfg.History.DSN)
	if err != nil {
		log.Error().Err(err).Msg("Search history unavailable, continuing without it")
		return history.Noop{}, func() {}
	}

	log.Info().Msg("Search history enabled")
	return pg, func() {
		if err := pg.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing history store")
		}
	}
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
