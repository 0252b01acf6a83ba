// Package main is the entry point for the moments broadcast HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/popeskul/moments-broadcast/internal/client"
	"github.com/popeskul/moments-broadcast/internal/config"
	"github.com/popeskul/moments-broadcast/internal/handler"
	"github.com/popeskul/moments-broadcast/internal/infrastructure/migrate"
	"github.com/popeskul/moments-broadcast/internal/middleware"
	"github.com/popeskul/moments-broadcast/internal/repository"
	"github.com/popeskul/moments-broadcast/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	openAPIPath := flag.String("openapi", "api/openapi.yaml", "path to the OpenAPI document")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		runner := migrate.NewRunner(&migrate.Config{
			DatabaseURL:    cfg.Database.GetURL(),
			MigrationsPath: cfg.Database.MigrationsPath,
		}, logger)
		if err := runner.Up(); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
		version, _, _ := runner.Version()
		logger.Info("Database migrated", zap.Uint("version", version))
	}

	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	whatsapp := client.NewWhatsAppClient(&cfg.WhatsApp, logger)
	if err := whatsapp.Ready(); err != nil {
		// Broadcasts are rejected per request until credentials are set.
		logger.Warn("WhatsApp client is not configured", zap.Error(err))
	}

	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, redisClient, whatsapp, logger)

	rootCtx, stopRoot := context.WithCancel(context.Background())
	defer stopRoot()

	if err := svc.Dispatcher.Start(rootCtx); err != nil {
		logger.Fatal("Failed to start dispatcher", zap.Error(err))
	}

	if err := svc.Scheduler.Start(); err != nil {
		logger.Error("Failed to start scheduler on startup", zap.Error(err))
	} else {
		logger.Info("Scheduler started automatically on application startup")
	}

	if err := svc.Reconcile.Start(); err != nil {
		logger.Error("Failed to start reconciliation sweep", zap.Error(err))
	}

	wrap, stopMiddleware := middleware.Chain(middleware.NewConfig(cfg.Middleware, logger))
	defer stopMiddleware()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrap(setupRouter(handler.NewHandler(svc, logger), *openAPIPath)),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if svc.Scheduler.IsRunning() {
		if err := svc.Scheduler.Stop(); err != nil {
			logger.Error("Failed to stop scheduler", zap.Error(err))
		}
	}

	svc.Reconcile.Stop()

	// In-flight broadcasts get the remaining shutdown budget to finish.
	if err := svc.Dispatcher.Stop(ctx); err != nil {
		logger.Warn("Dispatcher stopped before draining its queue", zap.Error(err))
	}

	logger.Info("Server exited")
}
