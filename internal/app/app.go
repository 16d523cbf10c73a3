// Package app wires configuration, storage and adapters into the engine's
// use cases. It is shared by the HTTP server and the sweep command.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"

	"ad-exchange/internal/adapter/local"
	"ad-exchange/internal/adapter/oracle"
	"ad-exchange/internal/adapter/postgres"
	redislock "ad-exchange/internal/adapter/redis"
	"ad-exchange/internal/adapter/telemetry"
	"ad-exchange/internal/adapter/usecase"
	"ad-exchange/internal/config"
	"ad-exchange/internal/core/port"
	"ad-exchange/internal/db"
)

// App holds the wired use cases and the resources behind them.
type App struct {
	Campaigns port.CampaignRepository
	Bidding   *usecase.BiddingService
	Auctions  *usecase.AuctionResolver
	Learning  *usecase.PerformanceLearner
	Campaign  *usecase.CampaignService

	pool *pgxpool.Pool
	rdb  *goredis.Client
}

// NewLogger builds the process logger from the Log section.
func NewLogger(cfg config.Config) *slog.Logger {
	return slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
}

// New connects to Postgres (and Redis when configured), optionally applies
// migrations and seed data, and wires every use case. Metrics are
// registered on reg.
func New(ctx context.Context, cfg config.Config, reg prometheus.Registerer, logger *slog.Logger) (*App, error) {
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	a := &App{pool: pool}

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			a.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
		logger.Info("seed data applied")
	}

	var locker port.Locker
	if cfg.Redis.Enabled() {
		a.rdb, err = db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		locker = redislock.NewLocker(a.rdb, cfg.Redis.LockTTL, logger)
		logger.Info("using redis locks", slog.String("address", cfg.Redis.Address))
	} else {
		locker = local.NewLocker()
		logger.Info("using in-process locks")
	}

	var (
		campaigns = postgres.NewCampaignRepository(pool)
		slots     = postgres.NewSlotRepository(pool)
		bids      = postgres.NewBidRepository(pool)
		rentals   = postgres.NewRentalRepository(pool)
		recorder  = telemetry.NewRecorder(reg, logger)
		scorer    = oracle.NewClient(cfg.Oracle, logger)
	)

	a.Campaigns = campaigns
	a.Bidding = usecase.NewBiddingService(campaigns, slots, scorer, locker, recorder, logger,
		usecase.BiddingConfig{
			OracleTimeout: cfg.Oracle.Timeout,
			ScoringBudget: cfg.Bidding.ScoringBudget,
		})
	a.Auctions = usecase.NewAuctionResolver(bids, rentals, slots, locker, recorder, logger)
	a.Learning = usecase.NewPerformanceLearner(campaigns, bids, rentals, slots, recorder, logger,
		cfg.Bidding.RevenuePerConversion)
	a.Campaign = usecase.NewCampaignService(campaigns, bids, rentals, logger)
	return a, nil
}

// Close releases the database and Redis connections.
func (a *App) Close() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	a.pool.Close()
}
