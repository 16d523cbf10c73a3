package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ad-exchange/internal/core/domain"
)

// BiddingUseCase runs the autonomous bidding pipeline for one campaign.
type BiddingUseCase interface {
	// RunBidding checks the campaign's budget, scores eligible slots,
	// selects bids within budget and commits them together with the
	// ledger debit. Expected conditions such as an inactive campaign are
	// reported as a skipped result; an error means the run was aborted and
	// the ledger is unchanged.
	RunBidding(ctx context.Context, campaignID uuid.UUID) (*RunResult, error)
}

// AuctionUseCase resolves slot auctions.
type AuctionUseCase interface {
	// ResolveAuction picks the highest pending bid for the slot, marks the
	// others lost and creates the rental. Resolving the same slot and date
	// again is a skipped no-op.
	ResolveAuction(ctx context.Context, slotID uuid.UUID, auctionDate time.Time) (*AuctionResult, error)
}

// LearningUseCase turns completed rentals into campaign learning.
type LearningUseCase interface {
	// RecordRentalCompletion computes the rental's ROI and updates the
	// campaign history, metrics and insights. A nil result without error
	// means there was nothing to learn (unknown rental, no winning bid or
	// already recorded).
	RecordRentalCompletion(ctx context.Context, rentalID uuid.UUID) (*LearningResult, error)
	// CompleteRental stores measured traffic for the rental and then
	// records its completion.
	CompleteRental(ctx context.Context, rentalID uuid.UUID, m domain.Measurement) (*LearningResult, error)
}

// CampaignUseCase exposes campaign lifecycle operations.
type CampaignUseCase interface {
	PauseCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// ResumeCampaign reactivates a paused campaign. Completed campaigns
	// cannot be resumed.
	ResumeCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	GetCampaignDetail(ctx context.Context, id uuid.UUID) (*CampaignDetail, error)
}

// RunResult is the outcome of one bidding run.
type RunResult struct {
	Skipped          bool         `json:"skipped,omitempty"`
	Reason           string       `json:"reason,omitempty"`
	Success          bool         `json:"success,omitempty"`
	RunID            uuid.UUID    `json:"runId,omitzero"`
	SlotsEvaluated   int          `json:"slotsEvaluated"`
	BidsPlaced       int          `json:"bidsPlaced"`
	CreditsAllocated int64        `json:"creditsAllocated"`
	Bids             []domain.Bid `json:"bids,omitempty"`
}

// AuctionResult is the outcome of resolving one auction.
type AuctionResult struct {
	Skipped    bool           `json:"skipped,omitempty"`
	Reason     string         `json:"reason,omitempty"`
	Success    bool           `json:"success,omitempty"`
	WinningBid *domain.Bid    `json:"winningBid,omitempty"`
	Rental     *domain.Rental `json:"rental,omitempty"`
	TotalBids  int            `json:"totalBids"`
}

// LearningResult is returned after a rental's performance was learned.
type LearningResult struct {
	ActualROI           float64          `json:"actualROI"`
	AverageROI          float64          `json:"averageROI"`
	Insights            []string         `json:"insights"`
	BestPerformingSlots []domain.SlotROI `json:"bestPerformingSlots"`
}

// CampaignDetail bundles a campaign with its latest bids and rentals.
type CampaignDetail struct {
	Campaign *domain.Campaign `json:"campaign"`
	Bids     []domain.Bid     `json:"bids"`
	Rentals  []domain.Rental  `json:"rentals"`
}

// Skip builds a skipped run result.
func Skip(reason string) *RunResult {
	return &RunResult{Skipped: true, Reason: reason}
}
