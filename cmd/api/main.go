package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/crumbly/api/internal/config"
	"github.com/crumbly/api/internal/connect"
	"github.com/crumbly/api/internal/container"
	"github.com/crumbly/api/internal/models"
	"github.com/crumbly/api/internal/routes"
	"github.com/crumbly/api/internal/services"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup logger
	logger := setupLogger(cfg)
	logger.Info("Starting Crumbly API server", "environment", cfg.Environment, "store", cfg.StoreBackend)

	// Load the static product catalog
	catalog, err := services.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Error("Failed to load product catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("Product catalog loaded", "products", len(catalog.List()))

	// Initialize the review store backend
	store, err := setupStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize review store", "error", err)
		os.Exit(1)
	}

	// Seed source for an empty store: remote document if configured, bundled
	// file otherwise
	var seed services.SeedSource
	if cfg.SeedURL != "" {
		seed = &services.HTTPSeedSource{URL: cfg.SeedURL}
	} else {
		seed = &services.FileSeedSource{Path: cfg.SeedPath}
	}

	// Initialize dependency container
	appContainer := container.NewContainer(logger, store, seed, catalog, cfg.AllowedOrigin)

	// Setup routes
	router := routes.SetupRoutes(appContainer)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Close store connections
	if err := connect.RedisDisconnect(); err != nil {
		logger.Error("Error disconnecting from Redis", "error", err)
	}
	if err := connect.MongoDBDisconnect(); err != nil {
		logger.Error("Error disconnecting from MongoDB", "error", err)
	}

	logger.Info("Server exited")
}

func setupStore(cfg *config.Config, logger *slog.Logger) (models.ReviewStore, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendRedis:
		client, err := connect.RedisConnect(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to Redis successfully")
		return models.NewRedisStore(client, cfg.ReviewsKey), nil
	case config.StoreBackendMongo:
		client, err := connect.MongoDBConnect(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to MongoDB successfully")
		return models.NewMongoStore(client, cfg.ReviewsKey), nil
	default:
		logger.Info("Using in-memory review store; reviews reset on restart")
		return models.NewMemoryStore(), nil
	}
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	if cfg.IsProduction() {
		// JSON logging for production
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		// Human-readable logging for development
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
