package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// Campaign represents an advertiser's budgeted intent to acquire slots.
// Credits are integer units; 1 credit = €0.01. CreditsRemaining +
// CreditsSpent always equals TotalCredits.
type Campaign struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Targeting        Targeting `json:"targeting"`
	Strategy         string    `json:"biddingStrategy"`
	OptimizationGoal string    `json:"optimizationGoal"`

	TotalCredits     int64  `json:"totalCredits"`
	CreditsRemaining int64  `json:"creditsRemaining"`
	CreditsSpent     int64  `json:"creditsSpent"`
	DailyBudget      *int64 `json:"dailyBudget,omitempty"` // optional cap per bidding run
	MaxPricePerSlot  *int64 `json:"maxPricePerSlot,omitempty"`

	Status CampaignStatus `json:"status"`

	History History      `json:"performanceHistory"`
	Model   LearnedModel `json:"mlModel"`

	TotalImpressions     int64   `json:"totalImpressions"`
	TotalClicks          int64   `json:"totalClicks"`
	TotalConversions     int64   `json:"totalConversions"`
	TotalKnowledgeGained int64   `json:"totalKnowledgeGained"`
	AverageCPC           float64 `json:"averageCPC"`
	AverageROI           float64 `json:"roi"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Debit moves amount credits from remaining to spent. The campaign is
// marked completed once nothing remains. A negative amount or one larger
// than the remaining credits is rejected and leaves the campaign untouched.
func (c *Campaign) Debit(amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative debit %d", ErrInvariantViolation, amount)
	}
	if amount > c.CreditsRemaining {
		return fmt.Errorf("%w: debit %d exceeds remaining %d credits",
			ErrInvariantViolation, amount, c.CreditsRemaining)
	}
	c.CreditsRemaining -= amount
	c.CreditsSpent += amount
	if c.CreditsRemaining <= 0 {
		c.Status = CampaignCompleted
	}
	return nil
}

// Exhausted reports whether the campaign has no credits left to bid with.
func (c *Campaign) Exhausted() bool {
	return c.CreditsRemaining <= 0
}

// LearnedModel is the snapshot derived from the performance history after
// each completed rental.
type LearnedModel struct {
	Version             string    `json:"version"`
	TrainedOn           time.Time `json:"trainedOn"`
	DataPoints          int       `json:"dataPoints"`
	AverageROI          float64   `json:"averageROI"`
	BestPerformingSlots []SlotROI `json:"bestPerformingSlots"`
	Insights            []string  `json:"insights"`
}

// SlotROI aggregates actual ROI observed for a slot.
type SlotROI struct {
	SlotID uuid.UUID `json:"slotId"`
	AvgROI float64   `json:"avgROI"`
	Count  int       `json:"count"`
}
