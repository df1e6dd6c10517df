package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jn0w/Lindsey/application/services"
	"github.com/jn0w/Lindsey/infrastructure/config"
	"github.com/jn0w/Lindsey/infrastructure/persistence/mongodb"
	"github.com/jn0w/Lindsey/interfaces/http/rest"
	"github.com/jn0w/Lindsey/interfaces/web"
	"github.com/jn0w/Lindsey/pkg/auth"
	"github.com/jn0w/Lindsey/pkg/observability"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Wire dependencies
	metrics := observability.NewCollector("lindsey")
	repo := mongodb.NewMemoryRepository(
		cfg.MongoURI,
		cfg.MongoDatabase,
		cfg.MongoCollection,
		logger,
		metrics,
	)
	service := services.NewMemoryService(repo, logger)

	tokens, err := auth.NewTokenIssuer(cfg.SessionSecret, "lindsey")
	if err != nil {
		logger.Fatal("Failed to initialize session tokens", zap.Error(err))
	}

	pages, err := web.NewHandler(logger)
	if err != nil {
		logger.Fatal("Failed to load page templates", zap.Error(err))
	}

	// Create router
	router := rest.NewRouter(cfg, service, repo, tokens, metrics, pages, logger)
	handler := router.Setup()

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	if err := logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	log.Println("Server stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
