// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the user API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the account store (PostgreSQL + migrations, or in-memory).
//  4. Connect to Redis when configured (login throttling).
//  5. Build the token service and wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/userapi/internal/api"
	"github.com/taibuivan/userapi/internal/platform/config"
	"github.com/taibuivan/userapi/internal/platform/constants"
	"github.com/taibuivan/userapi/internal/platform/migration"
	pgstore "github.com/taibuivan/userapi/internal/platform/postgres"
	redisstore "github.com/taibuivan/userapi/internal/platform/redis"
	"github.com/taibuivan/userapi/internal/platform/sec"
	"github.com/taibuivan/userapi/internal/users/auth"
	"github.com/taibuivan/userapi/internal/users/collection"
	"github.com/taibuivan/userapi/internal/users/memstore"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_driver", cfg.StorageDriver),
	)

	// Bound every startup dependency so misconfiguration fails fast.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	health := api.HealthDependencies{}

	// ── 3. Account Store ──────────────────────────────────────────────────
	var (
		userRepository       auth.UserRepository
		collectionRepository collection.Repository
	)

	switch cfg.StorageDriver {
	case config.DriverMemory:
		store := memstore.New()
		userRepository, collectionRepository = store, store
		log.Warn("memory_store_enabled", slog.String("note", "accounts are lost on restart"))

	default:
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		userRepository = auth.NewUserRepository(pool)
		collectionRepository = collection.NewRepository(pool)
		health.CheckDatabase = func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }
	}

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	var attemptRepository auth.AttemptRepository = auth.NoopAttemptRepository{}

	if cfg.UsesRedis() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer closeRedis(log, rdb)

		attemptRepository = auth.NewAttemptRepository(rdb)
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	} else {
		log.Info("login_throttle_disabled", slog.String("reason", "REDIS_URL not set"))
	}

	// ── 5. Security & Domain Wiring ───────────────────────────────────────
	tokenService, err := sec.NewTokenService(sec.TokenConfig{
		Secret: cfg.JWTSecret,
		TTL:    cfg.JWTTTL,
		Issuer: cfg.JWTIssuer,
	})
	must(log, err, "initialize token service")

	authService := auth.NewService(userRepository, attemptRepository, tokenService, auth.Config{
		DetailedLoginErrors: cfg.LoginErrorsDetailed,
		MaxLoginAttempts:    cfg.LoginMaxAttempts,
		LockoutWindow:       cfg.LoginLockoutWindow,
	})
	collectionService := collection.NewService(collectionRepository)

	liveness, readiness := api.NewHealthHandlers(health, log)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokenService, api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(authService),
		Favourites: collection.NewHandler(collectionService, collection.Favourites),
		History:    collection.NewHandler(collectionService, collection.History),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_failed", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger installs a JSON logger at level as the process default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", constants.AppName))

	slog.SetDefault(log)
	return log
}

func closeRedis(log *slog.Logger, client *goredis.Client) {
	log.Info("closing_redis_client")
	if err := client.Close(); err != nil {
		log.Error("redis_close_error", slog.Any("error", err))
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
