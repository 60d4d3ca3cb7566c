package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobtrackr/jobtracker-api/internal/api"
	"github.com/jobtrackr/jobtracker-api/internal/api/ws"
	mongodb "github.com/jobtrackr/jobtracker-api/internal/infrastructure/db/mongo"
	redisdb "github.com/jobtrackr/jobtracker-api/internal/infrastructure/db/redis"
	"github.com/jobtrackr/jobtracker-api/internal/infrastructure/notify"
	"github.com/jobtrackr/jobtracker-api/internal/pkg/config"
	"github.com/jobtrackr/jobtracker-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongodb.NewJobRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("job index creation failed")
	}
	if err := mongodb.NewFeedbackRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("feedback index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Notification pipeline: async dispatch → redis pub/sub → websocket hub ---
	// Workers get a background context so queued notifications can still be
	// delivered during the drain after the shutdown signal arrives.
	dispatcher := notify.NewDispatcher(notify.NewRedisPublisher(rdb), log)
	dispatcher.Start(context.Background())

	hub := ws.NewHub(rdb, log)
	go hub.Run(ctx)

	// --- HTTP server ---
	e := api.NewRouter(api.RouterDeps{
		Config:    cfg,
		Mongo:     db,
		Redis:     rdb,
		Publisher: dispatcher,
		Hub:       hub,
		Logger:    log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	// No new requests can publish now; drain what was already accepted.
	dispatcher.Stop()
	log.Info().Msg("server stopped")
}
