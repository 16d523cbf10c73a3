package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ad-exchange/internal/core/domain"
)

// BidLedger records bids and debits the campaign ledger for them as one
// unit of work.
type BidLedger struct {
	ledger *CampaignLedger
	now    func() time.Time
}

// NewBidLedger returns a bid ledger debiting through ledger.
func NewBidLedger(ledger *CampaignLedger) *BidLedger {
	return &BidLedger{ledger: ledger, now: time.Now}
}

// PlaceBid builds a pending bid for the scored slot. The bid is persisted
// by Commit together with the debit.
func (b *BidLedger) PlaceBid(campaignID, runID uuid.UUID, s domain.ScoredSlot) domain.Bid {
	return domain.Bid{
		ID:               newID(),
		RunID:            runID,
		CampaignID:       campaignID,
		SlotID:           s.ID,
		BidAmount:        s.RecommendedBid,
		Confidence:       s.Confidence,
		PredictedROI:     s.PredictedROI,
		PredictedTraffic: s.AverageTraffic,
		Reason:           s.Reason,
		Source:           s.Source,
		Status:           domain.BidPending,
		CreatedAt:        b.now().UTC(),
	}
}

// Commit persists bids and debits their total from the campaign. Either
// both happen or neither does. It returns the debited total.
func (b *BidLedger) Commit(ctx context.Context, c *domain.Campaign, runID uuid.UUID, bids []domain.Bid) (int64, error) {
	var total int64
	for _, bid := range bids {
		total += bid.BidAmount
	}
	if err := b.ledger.Debit(ctx, c, runID, total, bids); err != nil {
		return 0, err
	}
	return total, nil
}
