package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/magickal-mortalz/coven-service/internal/audit"
	"github.com/magickal-mortalz/coven-service/internal/cache"
	"github.com/magickal-mortalz/coven-service/internal/config"
	"github.com/magickal-mortalz/coven-service/internal/handlers"
	"github.com/magickal-mortalz/coven-service/internal/repositories/sheet"
	"github.com/magickal-mortalz/coven-service/internal/services"
	"github.com/magickal-mortalz/coven-service/internal/tabular"
	"github.com/magickal-mortalz/coven-service/internal/utils"
	"github.com/magickal-mortalz/coven-service/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	// Initialize the tabular record store
	store, err := tabular.NewStore(cfg.StoreBackend, cfg.WorkbookPath, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize record store: %v", err)
	}

	repo := sheet.NewSheetRepository(store)
	if err := repo.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize collections: %v", err)
	}

	// Initialize Redis (if configured)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: invalid REDIS_URL, running without cache: %v", err)
		} else {
			redisClient = redis.NewClient(opts)
		}
	}
	cacheHelper := cache.NewCacheHelper(redisClient, cache.DashboardCacheConfig.Prefix)

	// Initialize the activity pipeline
	publisher, subscriber, err := audit.NewPubSub(cfg.AuditBroker, cfg.KafkaBrokers, slogLogger)
	if err != nil {
		log.Fatalf("Failed to initialize audit broker: %v", err)
	}
	recorder := audit.NewPublishingRecorder(publisher, utils.RealClock{}, slogLogger)
	writer := audit.NewWriter(subscriber, repo.Activity(), slogLogger)

	writerCtx, stopWriter := context.WithCancel(context.Background())
	go func() {
		if err := writer.Run(writerCtx); err != nil {
			slogLogger.Error("activity writer stopped", "error", err)
		}
	}()

	// Initialize services
	serviceManager := services.NewServiceManager(services.ServiceManagerDeps{
		Repo:      repo,
		Recorder:  recorder,
		Validator: validator.New(),
		Cache:     cacheHelper,
		Logger:    slogLogger,
	})

	// Initialize handlers
	handlerManager := handlers.NewHandlerManager(serviceManager, logger)

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment, "store", cfg.StoreBackend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Stop the activity pipeline before closing the store
	stopWriter()
	if err := publisher.Close(); err != nil {
		log.Printf("Failed to close audit publisher: %v", err)
	}

	if err := store.Close(); err != nil {
		log.Printf("Failed to close record store: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Failed to close Redis connection: %v", err)
		}
	}

	logger.Info("Server exited")
}
