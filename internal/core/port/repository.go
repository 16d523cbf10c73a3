package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ad-exchange/internal/core/domain"
)

// ErrNotFound is returned by use cases for unknown campaigns, slots or rentals
// when the caller needs to distinguish it from a skipped result.
var ErrNotFound = errors.New("not found")

// CampaignRepository persists campaigns and their credit ledger. It is an
// outbound port; implementations must apply ledger changes atomically.
// Getters return nil, nil when the row does not exist.
type CampaignRepository interface {
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// ListActiveCampaignIDs returns ids of all campaigns in status active.
	ListActiveCampaignIDs(ctx context.Context) ([]uuid.UUID, error)
	// SetStatus changes the lifecycle status of a campaign.
	SetStatus(ctx context.Context, id uuid.UUID, status domain.CampaignStatus) error
	// CommitRun stores the run's bids and applies the debit in a single
	// transaction. The debit is a compare-and-swap against debit.Before;
	// domain.ErrLedgerConflict is returned when the ledger moved.
	CommitRun(ctx context.Context, debit LedgerDebit) error
	// RecordPerformance stamps the rental as learned, stores the bid actuals
	// and lets apply mutate the locked campaign, all in one transaction.
	// domain.ErrAlreadyRecorded is returned for a rental learned before.
	RecordPerformance(ctx context.Context, upd PerformanceUpdate, apply func(*domain.Campaign) error) error
}

// SlotRepository reads the slot catalog.
type SlotRepository interface {
	// FindActiveSlots returns active slots, optionally pre-filtered by
	// minimum average traffic. Order is unspecified.
	FindActiveSlots(ctx context.Context, minTraffic *int64) ([]domain.Slot, error)
	// GetSlot returns a slot by id.
	GetSlot(ctx context.Context, id uuid.UUID) (*domain.Slot, error)
}

// BidRepository reads bids. Bids are written through CampaignRepository.CommitRun
// and RentalRepository.SaveAuctionOutcome.
type BidRepository interface {
	ListPendingBids(ctx context.Context, slotID uuid.UUID) ([]domain.Bid, error)
	GetBid(ctx context.Context, id uuid.UUID) (*domain.Bid, error)
	ListCampaignBids(ctx context.Context, campaignID uuid.UUID, limit int) ([]domain.Bid, error)
}

// RentalRepository persists auction outcomes and rentals.
type RentalRepository interface {
	GetRental(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	ListCampaignRentals(ctx context.Context, campaignID uuid.UUID, limit int) ([]domain.Rental, error)
	// IsAuctionResolved reports whether the (slot, date) auction has a winner.
	IsAuctionResolved(ctx context.Context, slotID uuid.UUID, auctionDate time.Time) (bool, error)
	// SaveAuctionOutcome marks the auction resolved, moves the bids to their
	// terminal states and creates the rental in one transaction.
	// domain.ErrAuctionResolved is returned when the auction was resolved before.
	SaveAuctionOutcome(ctx context.Context, outcome AuctionOutcome) error
	// SaveMeasurement stores measured traffic and marks the rental completed.
	SaveMeasurement(ctx context.Context, rentalID uuid.UUID, m domain.Measurement) error
}

// LedgerState is the credit position of a campaign.
type LedgerState struct {
	CreditsRemaining int64
	CreditsSpent     int64
	Status           domain.CampaignStatus
}

// LedgerDebit describes one bidding run's effect on the ledger.
type LedgerDebit struct {
	RunID      uuid.UUID
	CampaignID uuid.UUID
	Amount     int64
	Before     LedgerState
	After      LedgerState
	Bids       []domain.Bid
}

// AuctionOutcome is the resolved state of a (slot, date) auction.
type AuctionOutcome struct {
	SlotID      uuid.UUID
	AuctionDate time.Time
	Winner      domain.Bid
	Losers      []domain.Bid
	Rental      domain.Rental
}

// PerformanceUpdate carries the actuals learned from a completed rental.
type PerformanceUpdate struct {
	RentalID          uuid.UUID
	BidID             uuid.UUID
	CampaignID        uuid.UUID
	ActualTraffic     int64
	ActualConversions int64
	ActualROI         float64
}
