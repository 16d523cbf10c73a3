package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
	"ad-exchange/internal/core/port/mocks"
)

type biddingDeps struct {
	campaigns *mocks.MockCampaignRepository
	slots     *mocks.MockSlotRepository
	locker    *mocks.MockLocker
	telemetry *mocks.MockTelemetry
}

func newBiddingDeps(t *testing.T, campaignID uuid.UUID) biddingDeps {
	return biddingDeps{
		campaigns: mocks.NewMockCampaignRepository(t),
		slots:     mocks.NewMockSlotRepository(t),
		locker:    freeLock(t, biddingLockKey(campaignID)),
		telemetry: quietTelemetry(t),
	}
}

func (d biddingDeps) service() *BiddingService {
	return NewBiddingService(d.campaigns, d.slots, nil, d.locker, d.telemetry, discardLogger(), BiddingConfig{})
}

func activeCampaign(remaining int64) *domain.Campaign {
	return &domain.Campaign{
		ID:               uuid.New(),
		Name:             "spring launch",
		Strategy:         "smart",
		TotalCredits:     remaining,
		CreditsRemaining: remaining,
		Status:           domain.CampaignActive,
	}
}

func TestRunBiddingPlacesBids(t *testing.T) {
	c := activeCampaign(1000)
	d := newBiddingDeps(t, c.ID)

	busy := slotFixture("a", 1200, 100)
	medium := slotFixture("b", 600, 80)
	quiet := slotFixture("c", 50, 10)

	d.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	d.slots.EXPECT().FindActiveSlots(mock.Anything, (*int64)(nil)).Return([]domain.Slot{quiet, medium, busy}, nil)

	var debit port.LedgerDebit
	d.campaigns.EXPECT().CommitRun(mock.Anything, mock.Anything).
		Run(func(_ context.Context, ld port.LedgerDebit) { debit = ld }).
		Return(nil)

	res, err := d.service().RunBidding(context.Background(), c.ID)

	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, 3, res.SlotsEvaluated)
	assert.Equal(t, 2, res.BidsPlaced)
	assert.Equal(t, int64(180), res.CreditsAllocated)
	assert.NotEqual(t, uuid.Nil, res.RunID)

	assert.Equal(t, res.RunID, debit.RunID)
	assert.Equal(t, c.ID, debit.CampaignID)
	assert.Equal(t, int64(180), debit.Amount)
	assert.Equal(t, port.LedgerState{CreditsRemaining: 1000, CreditsSpent: 0, Status: domain.CampaignActive}, debit.Before)
	assert.Equal(t, port.LedgerState{CreditsRemaining: 820, CreditsSpent: 180, Status: domain.CampaignActive}, debit.After)

	require.Len(t, debit.Bids, 2)
	assert.Equal(t, busy.ID, debit.Bids[0].SlotID)
	assert.Equal(t, medium.ID, debit.Bids[1].SlotID)
	for _, bid := range debit.Bids {
		assert.Equal(t, domain.BidPending, bid.Status)
		assert.Equal(t, res.RunID, bid.RunID)
		assert.Equal(t, c.ID, bid.CampaignID)
		assert.Equal(t, domain.SourceHeuristic, bid.Source)
	}

	assert.Equal(t, int64(820), c.CreditsRemaining)
	assert.Equal(t, c.TotalCredits, c.CreditsRemaining+c.CreditsSpent)
}

func TestRunBiddingExhaustedCampaign(t *testing.T) {
	c := activeCampaign(0)
	c.TotalCredits, c.CreditsSpent = 500, 500
	d := newBiddingDeps(t, c.ID)

	d.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	d.campaigns.EXPECT().SetStatus(mock.Anything, c.ID, domain.CampaignCompleted).Return(nil)

	res, err := d.service().RunBidding(context.Background(), c.ID)

	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, "No credits remaining", res.Reason)
	d.slots.AssertNotCalled(t, "FindActiveSlots", mock.Anything, mock.Anything)
}

func TestRunBiddingSkips(t *testing.T) {
	t.Run("campaign not found", func(t *testing.T) {
		id := uuid.New()
		d := newBiddingDeps(t, id)
		d.campaigns.EXPECT().GetCampaign(mock.Anything, id).Return(nil, nil)

		res, err := d.service().RunBidding(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, port.Skip("Campaign not found"), res)
	})

	t.Run("paused", func(t *testing.T) {
		c := activeCampaign(100)
		c.Status = domain.CampaignPaused
		d := newBiddingDeps(t, c.ID)
		d.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)

		res, err := d.service().RunBidding(context.Background(), c.ID)

		require.NoError(t, err)
		assert.Equal(t, "Campaign not active", res.Reason)
	})

	t.Run("no slots", func(t *testing.T) {
		c := activeCampaign(100)
		c.Targeting.TargetStores = []string{"elsewhere"}
		d := newBiddingDeps(t, c.ID)
		d.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
		d.slots.EXPECT().FindActiveSlots(mock.Anything, (*int64)(nil)).Return([]domain.Slot{slotFixture("a", 900, 10)}, nil)

		res, err := d.service().RunBidding(context.Background(), c.ID)

		require.NoError(t, err)
		assert.Equal(t, "No available slots", res.Reason)
	})

	t.Run("nothing selected", func(t *testing.T) {
		c := activeCampaign(100)
		d := newBiddingDeps(t, c.ID)
		d.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
		d.slots.EXPECT().FindActiveSlots(mock.Anything, (*int64)(nil)).Return([]domain.Slot{slotFixture("a", 20, 10)}, nil)

		res, err := d.service().RunBidding(context.Background(), c.ID)

		require.NoError(t, err)
		assert.True(t, res.Skipped)
		assert.Equal(t, "No slots meet criteria", res.Reason)
		assert.Equal(t, 1, res.SlotsEvaluated)
		d.campaigns.AssertNotCalled(t, "CommitRun", mock.Anything, mock.Anything)
	})
}

func TestRunBiddingAlreadyRunning(t *testing.T) {
	id := uuid.New()
	locker := mocks.NewMockLocker(t)
	locker.EXPECT().Acquire(mock.Anything, biddingLockKey(id)).Return(nil, port.ErrLocked)

	svc := NewBiddingService(mocks.NewMockCampaignRepository(t), mocks.NewMockSlotRepository(t), nil,
		locker, quietTelemetry(t), discardLogger(), BiddingConfig{})
	res, err := svc.RunBidding(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "Bidding run already in progress", res.Reason)
}

func TestRunBiddingLedgerConflict(t *testing.T) {
	c := activeCampaign(1000)
	d := newBiddingDeps(t, c.ID)
	d.telemetry = mocks.NewMockTelemetry(t)
	d.telemetry.EXPECT().CaptureError(mock.Anything, "run bidding: commit bids", mock.Anything).Return().Once()

	d.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	d.slots.EXPECT().FindActiveSlots(mock.Anything, (*int64)(nil)).Return([]domain.Slot{slotFixture("a", 1200, 100)}, nil)
	d.campaigns.EXPECT().CommitRun(mock.Anything, mock.Anything).Return(domain.ErrLedgerConflict)

	res, err := d.service().RunBidding(context.Background(), c.ID)

	require.ErrorIs(t, err, domain.ErrLedgerConflict)
	assert.Nil(t, res)
	assert.Equal(t, int64(1000), c.CreditsRemaining)
	assert.Zero(t, c.CreditsSpent)
}

func TestRunBiddingHonoursMinTraffic(t *testing.T) {
	c := activeCampaign(1000)
	c.Targeting.MinTraffic = ptr(int64(700))
	d := newBiddingDeps(t, c.ID)
	d.campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	d.slots.EXPECT().FindActiveSlots(mock.Anything, c.Targeting.MinTraffic).Return(nil, nil)

	res, err := d.service().RunBidding(context.Background(), c.ID)

	require.NoError(t, err)
	assert.Equal(t, "No available slots", res.Reason)
}
