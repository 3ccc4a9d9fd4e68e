package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/xpsc-club/xpsc-server/cache"
	"github.com/xpsc-club/xpsc-server/config"
	"github.com/xpsc-club/xpsc-server/db"
	"github.com/xpsc-club/xpsc-server/handlers"
	"github.com/xpsc-club/xpsc-server/middleware"
	"github.com/xpsc-club/xpsc-server/realtime"
	"github.com/xpsc-club/xpsc-server/repositories"
	api "github.com/xpsc-club/xpsc-server/routes"
	"github.com/xpsc-club/xpsc-server/services"
	"github.com/xpsc-club/xpsc-server/storage"
)

const (
	dbTimeout       = 5 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("application stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("application exited")
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.String("database", cfg.DatabaseName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database
	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Disconnect(client, dbTimeout); err != nil {
			logger.Error("failed to disconnect from database", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	if err := db.Ping(client, dbTimeout); err != nil {
		// Requests will fail individually until the server becomes reachable.
		logger.Error("database is not reachable, continuing", slog.Any("error", err))
	} else {
		logger.Info("database connection established")
	}
	database := client.Database(cfg.DatabaseName)

	roleCache := cache.NewNopRoleCache()
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL, dbTimeout)
		if err != nil {
			logger.Warn("role cache disabled", slog.Any("error", err))
		} else {
			defer redisClient.Close()
			roleCache = cache.NewRedisRoleCache(redisClient, cfg.RoleCacheTTL)
			logger.Info("role cache enabled", slog.Duration("ttl", cfg.RoleCacheTTL))
		}
	}

	// Image uploads (Cloudflare R2)
	var uploader storage.FileUploader
	if cfg.StorageEnabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize Cloudflare R2 uploader: %w", err)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("image storage not configured, uploads disabled")
	}

	wsHub := realtime.NewHub(logger)

	allUserRepo := repositories.NewMongoAllUserRepository(database)
	clubUserRepo := repositories.NewMongoClubUserRepository(database)
	contestRepo := repositories.NewMongoContestRepository(database)
	resultRepo := repositories.NewMongoContestResultRepository(database)

	tokenService := services.NewTokenService(cfg.AccessTokenSecret, cfg.TokenTTL)
	allUserService := services.NewAllUserService(allUserRepo, roleCache, logger)
	clubUserService := services.NewClubUserService(clubUserRepo, uploader, wsHub, logger)
	contestService := services.NewContestService(contestRepo)
	resultService := services.NewContestResultService(resultRepo, wsHub)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := chi.NewRouter()
	api.SetupRoutes(router, api.Dependencies{
		Logger:               logger,
		Tokens:               tokenService,
		Admins:               allUserService,
		AllowedOrigins:       cfg.AllowedOrigins,
		Metrics:              middleware.NewHTTPMetrics(registry),
		MetricsHandler:       promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		AuthHandler:          handlers.NewAuthHandler(tokenService),
		AllUserHandler:       handlers.NewAllUserHandler(allUserService),
		ClubUserHandler:      handlers.NewClubUserHandler(clubUserService),
		ContestHandler:       handlers.NewContestHandler(contestService),
		ContestResultHandler: handlers.NewContestResultHandler(resultService),
		WebSocketHandler:     handlers.NewWebSocketHandler(wsHub, cfg.AllowedOrigins, logger),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("WebSocket hub started")
		return wsHub.Run(gctx)
	})

	g.Go(func() error {
		logger.Info("starting server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Wait for a shutdown signal
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server shutdown complete")
		return nil
	})

	return g.Wait()
}
