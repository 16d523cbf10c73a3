package domain

import (
	"time"

	"github.com/google/uuid"
)

// BidStatus is the auction state of a bid. Won and lost are terminal.
type BidStatus string

const (
	BidPending BidStatus = "pending"
	BidWon     BidStatus = "won"
	BidLost    BidStatus = "lost"
)

// ScoreSource records which scoring path produced a bid's score.
type ScoreSource string

const (
	SourceOracle    ScoreSource = "oracle"
	SourceHeuristic ScoreSource = "heuristic" // oracle unavailable for the run
	SourceFallback  ScoreSource = "fallback"  // oracle failed for this slot
)

// Bid is a campaign's offer to pay BidAmount credits for a slot.
type Bid struct {
	ID               uuid.UUID   `json:"id"`
	RunID            uuid.UUID   `json:"runId"`
	CampaignID       uuid.UUID   `json:"campaignId"`
	SlotID           uuid.UUID   `json:"slotId"`
	BidAmount        int64       `json:"bidAmount"`
	Confidence       float64     `json:"confidence"`
	PredictedROI     float64     `json:"predictedROI"`
	PredictedTraffic int64       `json:"predictedTraffic"`
	Reason           string      `json:"reason"`
	Source           ScoreSource `json:"source"`
	Status           BidStatus   `json:"status"`

	CompetingBids int    `json:"competingBids"`
	WinningBid    *int64 `json:"winningBid,omitempty"`

	ActualTraffic     *int64   `json:"actualTraffic,omitempty"`
	ActualConversions *int64   `json:"actualConversions,omitempty"`
	ActualROI         *float64 `json:"actualROI,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
