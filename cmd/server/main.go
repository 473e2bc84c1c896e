package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	httpAdapter "github.com/gymops/cashcut/internal/adapter/http"
	"github.com/gymops/cashcut/internal/adapter/http/handler"
	"github.com/gymops/cashcut/internal/adapter/http/middleware"
	postgresRepo "github.com/gymops/cashcut/internal/adapter/repository/postgres"
	redisRepo "github.com/gymops/cashcut/internal/adapter/repository/redis"
	"github.com/gymops/cashcut/internal/infrastructure/auth"
	"github.com/gymops/cashcut/internal/infrastructure/config"
	"github.com/gymops/cashcut/internal/infrastructure/logger"
	"github.com/gymops/cashcut/internal/infrastructure/metrics"
	"github.com/gymops/cashcut/internal/infrastructure/postgres"
	"github.com/gymops/cashcut/internal/infrastructure/redis"
	"github.com/gymops/cashcut/internal/infrastructure/syncwatcher"
	"github.com/gymops/cashcut/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "cashcut",
	})
	zerolog.DefaultContextLogger = &log.Logger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	tolerance, err := decimal.NewFromString(cfg.SyncTolerance)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.SyncTolerance).Msg("invalid sync tolerance")
	}

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	cutRepo := postgresRepo.NewCutRepository(pool)
	expenseRepo := postgresRepo.NewExpenseRepository(pool)
	figureRepo := postgresRepo.NewFigureRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	auditRepo := postgresRepo.NewAuditRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	appMetrics := metrics.New()

	// Initialize use cases
	cutUC := usecase.NewCutUseCase(txManager, cutRepo, expenseRepo, figureRepo, auditRepo, cache, idGen, appMetrics)
	syncUC := usecase.NewSyncUseCase(cutRepo, expenseRepo, auditRepo, tolerance, appMetrics)
	userUC := usecase.NewUserUseCase(userRepo, idGen)

	// Authentication is optional; without a JWT manager the API runs open
	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled && cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	}

	// Initialize handlers
	cutHandler := handler.NewCutHandler(cutUC)
	syncHandler := handler.NewSyncHandler(syncUC)
	userHandler := handler.NewUserHandler(userUC)
	authHandler := handler.NewAuthHandler(userUC, jwtManager)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CutHandler:       cutHandler,
		SyncHandler:      syncHandler,
		UserHandler:      userHandler,
		AuthHandler:      authHandler,
		HealthHandler:    healthHandler,
		JWTManager:       jwtManager,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      rateLimiter,
	})

	// Background watcher flags cuts drifting from the expense ledger
	watcherCtx, stopWatcher := context.WithCancel(ctx)
	defer stopWatcher()
	watcher := syncwatcher.NewWatcher(syncwatcher.Config{
		CutRepo:   cutRepo,
		SyncUC:    syncUC,
		Logger:    slog.Default(),
		BatchSize: cfg.SyncWatchBatchSize,
		Interval:  cfg.SyncWatchInterval,
	})
	go func() {
		if err := watcher.Start(watcherCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("sync watcher stopped")
		}
	}()

	// Drop per-IP rate-limit buckets hourly so the map stays bounded
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-watcherCtx.Done():
				return
			case <-ticker.C:
				rateLimiter.CleanupLimiters()
			}
		}
	}()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
