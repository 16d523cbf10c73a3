package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
)

// BiddingConfig tunes the oracle usage and randomness of a bidding run.
type BiddingConfig struct {
	// OracleTimeout bounds a single oracle call.
	OracleTimeout time.Duration
	// ScoringBudget bounds the total oracle time of one run.
	ScoringBudget time.Duration
	// Roller draws prime-time admission rolls; nil uses CryptoRoller.
	Roller Roller
}

// BiddingService is the per-campaign run orchestrator. It ties the ledger,
// catalog, scorer, selector and bid ledger together and serializes runs of
// the same campaign through the locker.
type BiddingService struct {
	campaigns port.CampaignRepository
	ledger    *CampaignLedger
	catalog   *SlotCatalog
	scorer    *Scorer
	selector  *Selector
	bidLedger *BidLedger
	locker    port.Locker
	telemetry port.Telemetry
	logger    *slog.Logger
}

// NewBiddingService wires a bidding orchestrator. oracle may be nil.
func NewBiddingService(
	campaigns port.CampaignRepository,
	slots port.SlotRepository,
	oracle port.ScoringOracle,
	locker port.Locker,
	telemetry port.Telemetry,
	logger *slog.Logger,
	cfg BiddingConfig,
) *BiddingService {
	ledger := NewCampaignLedger(campaigns, logger)
	return &BiddingService{
		campaigns: campaigns,
		ledger:    ledger,
		catalog:   NewSlotCatalog(slots),
		scorer:    NewScorer(oracle, logger, cfg.OracleTimeout, cfg.ScoringBudget),
		selector:  NewSelector(cfg.Roller, logger),
		bidLedger: NewBidLedger(ledger),
		locker:    locker,
		telemetry: telemetry,
		logger:    logger,
	}
}

// RunBidding implements port.BiddingUseCase.
func (s *BiddingService) RunBidding(ctx context.Context, campaignID uuid.UUID) (*port.RunResult, error) {
	logger := s.logger.With(slog.String("campaign_id", campaignID.String()))

	release, err := s.locker.Acquire(ctx, biddingLockKey(campaignID))
	if errors.Is(err, port.ErrLocked) {
		return s.finish(ctx, campaignID, port.Skip("Bidding run already in progress")), nil
	}
	if err != nil {
		return nil, s.fail(ctx, "acquire bidding lock", err)
	}
	defer release()

	c, err := s.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, s.fail(ctx, "load campaign", err)
	}
	if c == nil {
		return s.finish(ctx, campaignID, port.Skip("Campaign not found")), nil
	}

	ok, reason, err := s.ledger.CheckEligible(ctx, c)
	if err != nil {
		return nil, s.fail(ctx, "check eligibility", err)
	}
	if !ok {
		return s.finish(ctx, campaignID, port.Skip(reason)), nil
	}

	slots, err := s.catalog.FindEligible(ctx, c.Targeting)
	if err != nil {
		return nil, s.fail(ctx, "find eligible slots", err)
	}
	logger.InfoContext(ctx, "eligible slots found", slog.Int("slots", len(slots)))
	if len(slots) == 0 {
		return s.finish(ctx, campaignID, port.Skip("No available slots")), nil
	}

	scored := s.scorer.Score(ctx, slots, c, c.History.Records())
	selected := s.selector.Select(ctx, scored, c.CreditsRemaining, c.DailyBudget, c.Strategy)
	logger.InfoContext(ctx, "slots selected",
		slog.Int("selected", len(selected)), slog.String("strategy", c.Strategy))
	if len(selected) == 0 {
		res := port.Skip("No slots meet criteria")
		res.SlotsEvaluated = len(slots)
		return s.finish(ctx, campaignID, res), nil
	}

	runID := newID()
	placed := make([]domain.Bid, 0, len(selected))
	for _, slot := range selected {
		placed = append(placed, s.bidLedger.PlaceBid(c.ID, runID, slot))
	}
	total, err := s.bidLedger.Commit(ctx, c, runID, placed)
	if err != nil {
		return nil, s.fail(ctx, "commit bids", err)
	}

	logger.InfoContext(ctx, "bids placed",
		slog.String("run_id", runID.String()),
		slog.Int("bids", len(placed)),
		slog.Int64("credits_allocated", total),
		slog.Int64("credits_remaining", c.CreditsRemaining))

	return s.finish(ctx, campaignID, &port.RunResult{
		Success:          true,
		RunID:            runID,
		SlotsEvaluated:   len(slots),
		BidsPlaced:       len(placed),
		CreditsAllocated: total,
		Bids:             placed,
	}), nil
}

func (s *BiddingService) finish(ctx context.Context, campaignID uuid.UUID, res *port.RunResult) *port.RunResult {
	if res.Skipped {
		s.logger.InfoContext(ctx, "bidding run skipped",
			slog.String("campaign_id", campaignID.String()), slog.String("reason", res.Reason))
	}
	s.telemetry.BiddingRun(ctx, campaignID, *res)
	return res
}

func (s *BiddingService) fail(ctx context.Context, op string, err error) error {
	s.telemetry.CaptureError(ctx, "run bidding: "+op, err)
	return fmt.Errorf("%s: %w", op, err)
}

func biddingLockKey(campaignID uuid.UUID) string {
	return "campaign:" + campaignID.String() + ":bidding"
}
