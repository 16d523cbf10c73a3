// Command sweep runs one bidding pass over every active campaign.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"ad-exchange/internal/app"
	"ad-exchange/internal/config"
)

type summary struct {
	mu      sync.Mutex
	runs    int
	skipped int
	failed  int
	bids    int
	credits int64
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(ctx, cfg, prometheus.NewRegistry(), logger)
	if err != nil {
		logger.Error("startup error", slog.Any("error", err))
		os.Exit(1)
	}
	defer a.Close()

	ids, err := a.Campaigns.ListActiveCampaignIDs(ctx)
	if err != nil {
		logger.Error("list active campaigns", slog.Any("error", err))
		a.Close()
		os.Exit(1)
	}
	logger.Info("sweep started", slog.Int("campaigns", len(ids)))

	bar := progressbar.Default(int64(len(ids)), "bidding")
	var sum summary

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Bidding.SweepConcurrency, 1))
	for _, id := range ids {
		g.Go(func() error {
			defer func() { _ = bar.Add(1) }()

			res, err := a.Bidding.RunBidding(gctx, id)

			sum.mu.Lock()
			defer sum.mu.Unlock()
			sum.runs++
			switch {
			case err != nil:
				// One campaign failing must not stop the others.
				sum.failed++
				logger.Error("bidding run failed",
					slog.String("campaign_id", id.String()), slog.Any("error", err))
			case res.Skipped:
				sum.skipped++
			default:
				sum.bids += res.BidsPlaced
				sum.credits += res.CreditsAllocated
			}
			return nil
		})
	}
	_ = g.Wait()
	_ = bar.Finish()

	logger.Info("sweep finished",
		slog.Int("runs", sum.runs),
		slog.Int("skipped", sum.skipped),
		slog.Int("failed", sum.failed),
		slog.Int("bids_placed", sum.bids),
		slog.Int64("credits_allocated", sum.credits))
}
