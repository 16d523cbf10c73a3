package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EURPerCredit is the fixed credit to euro conversion rate.
var EURPerCredit = decimal.New(1, -2)

// RentalStatus tracks whether a rental has been measured yet.
type RentalStatus string

const (
	RentalScheduled RentalStatus = "scheduled"
	RentalCompleted RentalStatus = "completed"
)

// Rental binds the winning campaign to a slot for a time window.
type Rental struct {
	ID             uuid.UUID       `json:"id"`
	SlotID         uuid.UUID       `json:"slotId"`
	CampaignID     uuid.UUID       `json:"campaignId"`
	BidID          uuid.UUID       `json:"bidId"`
	StartTime      time.Time       `json:"startTime"`
	EndTime        time.Time       `json:"endTime"`
	DurationHours  int             `json:"durationHours"`
	CreditsCharged int64           `json:"creditsCharged"`
	PriceEUR       decimal.Decimal `json:"priceEur"`
	Status         RentalStatus    `json:"status"`

	TrafficGenerated int64 `json:"trafficGenerated"`
	Conversions      int64 `json:"conversions"`
	Impressions      int64 `json:"impressions"`
	Clicks           int64 `json:"clicks"`
	KnowledgeGained  int64 `json:"knowledgeGained"`

	PerformanceRecordedAt *time.Time `json:"performanceRecordedAt,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
}

// CreditsToEUR converts credits to euros.
func CreditsToEUR(credits int64) decimal.Decimal {
	return decimal.NewFromInt(credits).Mul(EURPerCredit)
}

// Cost returns the euro cost of the rental, derived from the charged
// credits when no price was recorded.
func (r Rental) Cost() decimal.Decimal {
	if !r.PriceEUR.IsZero() {
		return r.PriceEUR
	}
	return CreditsToEUR(r.CreditsCharged)
}

// ROI returns ((conversions * revenuePerConversion) - cost) / cost * 100,
// or 0 when the rental cost nothing.
func (r Rental) ROI(revenuePerConversion decimal.Decimal) float64 {
	cost := r.Cost()
	if cost.IsZero() {
		return 0
	}
	revenue := decimal.NewFromInt(r.Conversions).Mul(revenuePerConversion)
	roi, _ := revenue.Sub(cost).Div(cost).Mul(decimal.NewFromInt(100)).Float64()
	return roi
}

// Measurement carries post-hoc traffic figures for a rental.
type Measurement struct {
	TrafficGenerated int64 `json:"trafficGenerated"`
	Conversions      int64 `json:"conversions"`
	Impressions      int64 `json:"impressions"`
	Clicks           int64 `json:"clicks"`
	KnowledgeGained  int64 `json:"knowledgeGained"`
}
