package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
)

const modelVersion = "1.0"

// PerformanceLearner converts completed rentals into ROI and feeds the
// campaign's history, aggregate metrics and insights.
type PerformanceLearner struct {
	campaigns port.CampaignRepository
	bids      port.BidRepository
	rentals   port.RentalRepository
	slots     port.SlotRepository
	telemetry port.Telemetry
	logger    *slog.Logger

	// revenuePerConversion is the fixed euro value of one conversion.
	revenuePerConversion decimal.Decimal
	now                  func() time.Time
}

// NewPerformanceLearner returns a learner valuing each conversion at
// revenuePerConversion euros.
func NewPerformanceLearner(
	campaigns port.CampaignRepository,
	bids port.BidRepository,
	rentals port.RentalRepository,
	slots port.SlotRepository,
	telemetry port.Telemetry,
	logger *slog.Logger,
	revenuePerConversion decimal.Decimal,
) *PerformanceLearner {
	return &PerformanceLearner{
		campaigns:            campaigns,
		bids:                 bids,
		rentals:              rentals,
		slots:                slots,
		telemetry:            telemetry,
		logger:               logger,
		revenuePerConversion: revenuePerConversion,
		now:                  time.Now,
	}
}

// CompleteRental implements port.LearningUseCase.
func (l *PerformanceLearner) CompleteRental(ctx context.Context, rentalID uuid.UUID, m domain.Measurement) (*port.LearningResult, error) {
	rental, err := l.rentals.GetRental(ctx, rentalID)
	if err != nil {
		return nil, l.fail(ctx, "load rental", err)
	}
	if rental == nil {
		return nil, nil
	}
	if rental.PerformanceRecordedAt != nil {
		l.logger.InfoContext(ctx, "rental already learned, measurement ignored",
			slog.String("rental_id", rentalID.String()))
		return nil, nil
	}
	if err = l.rentals.SaveMeasurement(ctx, rentalID, m); err != nil {
		return nil, l.fail(ctx, "save measurement", err)
	}
	return l.RecordRentalCompletion(ctx, rentalID)
}

// RecordRentalCompletion implements port.LearningUseCase.
func (l *PerformanceLearner) RecordRentalCompletion(ctx context.Context, rentalID uuid.UUID) (*port.LearningResult, error) {
	logger := l.logger.With(slog.String("rental_id", rentalID.String()))

	rental, err := l.rentals.GetRental(ctx, rentalID)
	if err != nil {
		return nil, l.fail(ctx, "load rental", err)
	}
	if rental == nil {
		logger.WarnContext(ctx, "rental not found")
		return nil, nil
	}

	bid, err := l.bids.GetBid(ctx, rental.BidID)
	if err != nil {
		return nil, l.fail(ctx, "load winning bid", err)
	}
	if bid == nil || bid.Status != domain.BidWon {
		logger.WarnContext(ctx, "no winning bid for rental")
		return nil, nil
	}

	slot, err := l.slots.GetSlot(ctx, rental.SlotID)
	if err != nil {
		return nil, l.fail(ctx, "load slot", err)
	}
	if slot == nil {
		slot = &domain.Slot{ID: rental.SlotID}
	}

	actualROI := rental.ROI(l.revenuePerConversion)
	now := l.now().UTC()
	record := domain.PerformanceRecord{
		SlotID:       rental.SlotID,
		StoreID:      slot.StoreID,
		DayOfWeek:    slot.DayOfWeek,
		TimeSlot:     slot.TimeSlotLabel(),
		BidAmount:    bid.BidAmount,
		PredictedROI: bid.PredictedROI,
		ActualROI:    actualROI,
		Traffic:      rental.TrafficGenerated,
		Conversions:  rental.Conversions,
		Timestamp:    now,
	}

	var result port.LearningResult
	err = l.campaigns.RecordPerformance(ctx, port.PerformanceUpdate{
		RentalID:          rental.ID,
		BidID:             bid.ID,
		CampaignID:        rental.CampaignID,
		ActualTraffic:     rental.TrafficGenerated,
		ActualConversions: rental.Conversions,
		ActualROI:         actualROI,
	}, func(c *domain.Campaign) error {
		ApplyLearning(c, *rental, record, now)
		result = port.LearningResult{
			ActualROI:           actualROI,
			AverageROI:          c.AverageROI,
			Insights:            c.Model.Insights,
			BestPerformingSlots: c.Model.BestPerformingSlots,
		}
		return nil
	})
	if errors.Is(err, domain.ErrAlreadyRecorded) {
		logger.InfoContext(ctx, "rental performance already recorded")
		return nil, nil
	}
	if err != nil {
		return nil, l.fail(ctx, "record performance", err)
	}

	logger.InfoContext(ctx, "campaign performance updated",
		slog.String("campaign_id", rental.CampaignID.String()),
		slog.Float64("actual_roi", actualROI),
		slog.Float64("average_roi", result.AverageROI))
	l.telemetry.LearningRecorded(ctx, rentalID, result)
	return &result, nil
}

// ApplyLearning appends the record to the campaign history and recomputes
// totals, averages and the learned model.
func ApplyLearning(c *domain.Campaign, r domain.Rental, record domain.PerformanceRecord, now time.Time) {
	c.History.Append(record)

	c.TotalImpressions += r.Impressions
	c.TotalClicks += r.Clicks
	c.TotalConversions += r.Conversions
	c.TotalKnowledgeGained += r.KnowledgeGained

	c.AverageCPC = 0
	if c.TotalClicks > 0 {
		c.AverageCPC = float64(c.CreditsSpent) / float64(c.TotalClicks)
	}

	history := c.History.Records()
	c.AverageROI = MeanROI(history)
	c.Model = domain.LearnedModel{
		Version:             modelVersion,
		TrainedOn:           now,
		DataPoints:          len(history),
		AverageROI:          c.AverageROI,
		BestPerformingSlots: BestPerformingSlots(history, bestSlotLimit),
		Insights:            GenerateInsights(history),
	}
}

func (l *PerformanceLearner) fail(ctx context.Context, op string, err error) error {
	l.telemetry.CaptureError(ctx, "record rental completion: "+op, err)
	return fmt.Errorf("%s: %w", op, err)
}
