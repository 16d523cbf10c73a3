package usecase

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
)

// AuctionResolver resolves the pending bids of a (slot, date) auction into
// exactly one winner and one rental.
type AuctionResolver struct {
	bids      port.BidRepository
	rentals   port.RentalRepository
	slots     port.SlotRepository
	locker    port.Locker
	telemetry port.Telemetry
	logger    *slog.Logger
	now       func() time.Time
}

// NewAuctionResolver returns a resolver.
func NewAuctionResolver(
	bids port.BidRepository,
	rentals port.RentalRepository,
	slots port.SlotRepository,
	locker port.Locker,
	telemetry port.Telemetry,
	logger *slog.Logger,
) *AuctionResolver {
	return &AuctionResolver{
		bids:      bids,
		rentals:   rentals,
		slots:     slots,
		locker:    locker,
		telemetry: telemetry,
		logger:    logger,
		now:       time.Now,
	}
}

// ResolveAuction implements port.AuctionUseCase.
func (a *AuctionResolver) ResolveAuction(ctx context.Context, slotID uuid.UUID, auctionDate time.Time) (*port.AuctionResult, error) {
	auctionDate = auctionDate.UTC()
	logger := a.logger.With(slog.String("slot_id", slotID.String()), slog.Time("auction_date", auctionDate))

	release, err := a.locker.Acquire(ctx, auctionLockKey(slotID, auctionDate))
	if errors.Is(err, port.ErrLocked) {
		return a.skip(ctx, slotID, "Auction resolution in progress"), nil
	}
	if err != nil {
		return nil, a.fail(ctx, "acquire auction lock", err)
	}
	defer release()

	resolved, err := a.rentals.IsAuctionResolved(ctx, slotID, auctionDate)
	if err != nil {
		return nil, a.fail(ctx, "check auction state", err)
	}
	if resolved {
		return a.skip(ctx, slotID, "Auction already resolved"), nil
	}

	pending, err := a.bids.ListPendingBids(ctx, slotID)
	if err != nil {
		return nil, a.fail(ctx, "list pending bids", err)
	}
	if len(pending) == 0 {
		logger.InfoContext(ctx, "no bids for slot")
		return a.skip(ctx, slotID, "No bids"), nil
	}

	slot, err := a.slots.GetSlot(ctx, slotID)
	if err != nil {
		return nil, a.fail(ctx, "load slot", err)
	}
	if slot == nil {
		return a.skip(ctx, slotID, "Slot not found"), nil
	}

	ranked := RankBids(pending)
	winner := ranked[0]
	competing := len(ranked) - 1
	winningAmount := winner.BidAmount

	winner.Status = domain.BidWon
	winner.CompetingBids = competing
	losers := make([]domain.Bid, 0, competing)
	for _, bid := range ranked[1:] {
		bid.Status = domain.BidLost
		bid.CompetingBids = competing
		bid.WinningBid = &winningAmount
		losers = append(losers, bid)
	}

	rental := domain.Rental{
		ID:             newID(),
		SlotID:         slotID,
		CampaignID:     winner.CampaignID,
		BidID:          winner.ID,
		StartTime:      auctionDate,
		EndTime:        auctionDate.Add(time.Duration(slot.DurationHours) * time.Hour),
		DurationHours:  slot.DurationHours,
		CreditsCharged: winningAmount,
		PriceEUR:       domain.CreditsToEUR(winningAmount),
		Status:         domain.RentalScheduled,
		CreatedAt:      a.now().UTC(),
	}

	err = a.rentals.SaveAuctionOutcome(ctx, port.AuctionOutcome{
		SlotID:      slotID,
		AuctionDate: auctionDate,
		Winner:      winner,
		Losers:      losers,
		Rental:      rental,
	})
	if errors.Is(err, domain.ErrAuctionResolved) {
		return a.skip(ctx, slotID, "Auction already resolved"), nil
	}
	if err != nil {
		return nil, a.fail(ctx, "save auction outcome", err)
	}

	logger.InfoContext(ctx, "auction resolved",
		slog.String("winning_bid_id", winner.ID.String()),
		slog.String("campaign_id", winner.CampaignID.String()),
		slog.Int64("winning_amount", winningAmount),
		slog.Int("total_bids", len(ranked)))

	res := &port.AuctionResult{
		Success:    true,
		WinningBid: &winner,
		Rental:     &rental,
		TotalBids:  len(ranked),
	}
	a.telemetry.AuctionResolved(ctx, slotID, *res)
	return res, nil
}

// RankBids orders bids by descending amount. Equal amounts go to the
// earlier bid, then to the lower id. The input is not modified.
func RankBids(bids []domain.Bid) []domain.Bid {
	ranked := slices.Clone(bids)
	slices.SortStableFunc(ranked, func(a, b domain.Bid) int {
		if c := cmp.Compare(b.BidAmount, a.BidAmount); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return ranked
}

func (a *AuctionResolver) fail(ctx context.Context, op string, err error) error {
	a.telemetry.CaptureError(ctx, "resolve auction: "+op, err)
	return fmt.Errorf("%s: %w", op, err)
}

// skip reports a skipped resolution to telemetry and returns it.
func (a *AuctionResolver) skip(ctx context.Context, slotID uuid.UUID, reason string) *port.AuctionResult {
	res := skipAuction(reason)
	a.telemetry.AuctionResolved(ctx, slotID, *res)
	return res
}

func skipAuction(reason string) *port.AuctionResult {
	return &port.AuctionResult{Skipped: true, Reason: reason}
}

func auctionLockKey(slotID uuid.UUID, auctionDate time.Time) string {
	return fmt.Sprintf("auction:%s:%s", slotID, auctionDate.Format(time.RFC3339))
}
