package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/songcontest/contest-api/internal/api"
	"github.com/songcontest/contest-api/internal/api/handler"
	"github.com/songcontest/contest-api/internal/core/ports"
	"github.com/songcontest/contest-api/internal/core/service"
	mongodb "github.com/songcontest/contest-api/internal/infrastructure/db/mongo"
	redisdb "github.com/songcontest/contest-api/internal/infrastructure/db/redis"
	"github.com/songcontest/contest-api/internal/infrastructure/queue"
	"github.com/songcontest/contest-api/internal/pkg/config"
	"github.com/songcontest/contest-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

var ensureIndexes bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&ensureIndexes, "ensure-indexes", true, "create missing MongoDB indexes on startup")
}

func serve(ctx context.Context) error {
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	cfg, log := a.cfg, a.log

	if ensureIndexes {
		if err := mongodb.EnsureIndexes(ctx, a.db); err != nil {
			return err
		}
	}

	health := map[string]handler.DependencyCheck{"mongodb": handler.MongoCheck(a.client)}
	tallies, redisCheck, closeRedis := openTallyCache(ctx, cfg.Redis, cfg.Votes.TallyCacheTTL, log)
	defer closeRedis()
	if redisCheck != nil {
		health["redis"] = redisCheck
	}

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(a.db)
	participantRepo := mongodb.NewParticipantRepository(a.db)
	countryRepo := mongodb.NewCountryRepository(a.db)
	competitionRepo := mongodb.NewCompetitionRepository(a.db)
	tx := mongodb.NewTransactor(a.client, cfg.Mongo.Transactions)

	// --- Audit trail ---
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher := queue.NewDispatcher(cfg.Votes.AuditWorkers, mongodb.NewVoteEventRepository(a.db), logger.Component("audit"))
	dispatcher.Start(workerCtx)

	// --- Services ---
	votes := service.NewVoteService(
		userRepo,
		participantRepo,
		tx,
		tallies,
		dispatcher,
		logger.Component("votes"),
	)
	services := api.Services{
		Auth:         service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpire),
		Votes:        votes,
		Accounts:     service.NewAccountService(userRepo, votes, tx, logger.Component("accounts")),
		Countries:    service.NewCountryService(countryRepo, logger.Component("countries")),
		Competitions: service.NewCompetitionService(competitionRepo, countryRepo, logger.Component("competitions")),
		Participants: service.NewParticipantService(participantRepo, countryRepo, votes, tx, logger.Component("participants")),
		Health:       health,
	}

	e := api.NewRouter(services, api.Options{
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			stopWorkers()
			dispatcher.Wait()
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	// Requests are done; flush queued audit events before closing the store.
	stopWorkers()
	dispatcher.Wait()
	log.Info().Msg("server stopped")
	return nil
}

// openTallyCache connects the optional tally cache. When Redis cannot be
// reached it logs a warning and returns a nil cache and check, so tallies
// are computed on every read and readiness only covers MongoDB.
func openTallyCache(ctx context.Context, cfg config.RedisConfig, ttl time.Duration, log zerolog.Logger) (ports.TallyCache, handler.DependencyCheck, func()) {
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("redis unavailable, serving tallies without cache")
		return nil, nil, func() {}
	}
	log.Info().Str("addr", cfg.Addr).Msg("connected to Redis")
	return redisdb.NewTallyCache(rdb, ttl), handler.RedisCheck(rdb), func() { _ = rdb.Close() }
}
