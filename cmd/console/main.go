package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lendwise/admin-console/internal/api"
	"github.com/lendwise/admin-console/internal/infrastructure/audit"
	"github.com/lendwise/admin-console/internal/infrastructure/config"
	mongodb "github.com/lendwise/admin-console/internal/infrastructure/db/mongo"
	redisdb "github.com/lendwise/admin-console/internal/infrastructure/db/redis"
	"github.com/lendwise/admin-console/internal/upstream"
	"github.com/lendwise/admin-console/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load(slog.Default())

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	dispatcher := audit.NewDispatcher(0, mongodb.NewAuditRepository(db), log)
	dispatcher.Start(ctx)

	client := upstream.New(cfg.Upstream.BaseURL, &http.Client{Timeout: cfg.Upstream.Timeout}, log)

	e := api.NewRouter(api.Deps{
		Log:           log,
		Redis:         rdb,
		Mongo:         db,
		Client:        client,
		Audit:         dispatcher,
		SessionSecret: cfg.SessionSecret,
		SecureCookies: cfg.Env != "development",
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("upstream", cfg.Upstream.BaseURL).Msg("admin console gateway started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
