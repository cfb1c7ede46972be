package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	mongodb "github.com/songcontest/contest-api/internal/infrastructure/db/mongo"
	"github.com/songcontest/contest-api/internal/pkg/config"
	"github.com/songcontest/contest-api/pkg/logger"
)

const disconnectTimeout = 10 * time.Second

// app holds what every subcommand needs: configuration, a logger and the
// document store.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	client *mongo.Client
	db     *mongo.Database
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load(ctx, envFile)
	if err != nil {
		return nil, err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "contest-api",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, fmt.Errorf("connect document store: %w", err)
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

	return &app{cfg: cfg, log: log, client: client, db: db}, nil
}

func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	if err := a.client.Disconnect(ctx); err != nil {
		a.log.Warn().Err(err).Msg("mongo disconnect")
	}
}
