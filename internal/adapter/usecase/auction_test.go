package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
	"ad-exchange/internal/core/port/mocks"
)

var auctionDate = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func pendingBid(slotID uuid.UUID, amount int64, createdAt time.Time) domain.Bid {
	return domain.Bid{
		ID:         uuid.New(),
		CampaignID: uuid.New(),
		SlotID:     slotID,
		BidAmount:  amount,
		Status:     domain.BidPending,
		CreatedAt:  createdAt,
	}
}

type auctionDeps struct {
	bids    *mocks.MockBidRepository
	rentals *mocks.MockRentalRepository
	slots   *mocks.MockSlotRepository
	locker  *mocks.MockLocker
}

func newAuctionDeps(t *testing.T, slotID uuid.UUID) auctionDeps {
	return auctionDeps{
		bids:    mocks.NewMockBidRepository(t),
		rentals: mocks.NewMockRentalRepository(t),
		slots:   mocks.NewMockSlotRepository(t),
		locker:  freeLock(t, auctionLockKey(slotID, auctionDate)),
	}
}

func (d auctionDeps) resolver(t *testing.T) *AuctionResolver {
	return NewAuctionResolver(d.bids, d.rentals, d.slots, d.locker, quietTelemetry(t), discardLogger())
}

func TestResolveAuctionHighestBidWins(t *testing.T) {
	slot := slotFixture("a", 800, 100)
	d := newAuctionDeps(t, slot.ID)

	a := pendingBid(slot.ID, 120, auctionDate.Add(-3*time.Hour))
	b := pendingBid(slot.ID, 95, auctionDate.Add(-2*time.Hour))
	c := pendingBid(slot.ID, 150, auctionDate.Add(-1*time.Hour))

	d.rentals.EXPECT().IsAuctionResolved(mock.Anything, slot.ID, auctionDate).Return(false, nil)
	d.bids.EXPECT().ListPendingBids(mock.Anything, slot.ID).Return([]domain.Bid{a, b, c}, nil)
	d.slots.EXPECT().GetSlot(mock.Anything, slot.ID).Return(&slot, nil)

	var saved port.AuctionOutcome
	d.rentals.EXPECT().SaveAuctionOutcome(mock.Anything, mock.Anything).
		Run(func(_ context.Context, outcome port.AuctionOutcome) { saved = outcome }).
		Return(nil)

	res, err := d.resolver(t).ResolveAuction(context.Background(), slot.ID, auctionDate)

	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, 3, res.TotalBids)
	assert.Equal(t, c.ID, res.WinningBid.ID)
	assert.Equal(t, domain.BidWon, res.WinningBid.Status)

	require.Len(t, saved.Losers, 2)
	for _, loser := range saved.Losers {
		assert.Equal(t, domain.BidLost, loser.Status)
		assert.Equal(t, 2, loser.CompetingBids)
		require.NotNil(t, loser.WinningBid)
		assert.Equal(t, int64(150), *loser.WinningBid)
	}
	assert.Equal(t, a.ID, saved.Losers[0].ID)
	assert.Equal(t, b.ID, saved.Losers[1].ID)

	rental := res.Rental
	assert.Equal(t, c.CampaignID, rental.CampaignID)
	assert.Equal(t, c.ID, rental.BidID)
	assert.Equal(t, int64(150), rental.CreditsCharged)
	assert.True(t, rental.PriceEUR.Equal(decimal.RequireFromString("1.50")))
	assert.Equal(t, auctionDate, rental.StartTime)
	assert.Equal(t, auctionDate.Add(3*time.Hour), rental.EndTime)
	assert.Equal(t, domain.RentalScheduled, rental.Status)
	assert.Equal(t, *rental, saved.Rental)
}

func TestResolveAuctionAlreadyResolved(t *testing.T) {
	slotID := uuid.New()
	d := newAuctionDeps(t, slotID)
	d.rentals.EXPECT().IsAuctionResolved(mock.Anything, slotID, auctionDate).Return(true, nil)
	tel := mocks.NewMockTelemetry(t)
	tel.EXPECT().AuctionResolved(mock.Anything, slotID, port.AuctionResult{
		Skipped: true,
		Reason:  "Auction already resolved",
	}).Return().Once()
	resolver := NewAuctionResolver(d.bids, d.rentals, d.slots, d.locker, tel, discardLogger())

	res, err := resolver.ResolveAuction(context.Background(), slotID, auctionDate)

	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, "Auction already resolved", res.Reason)
	d.bids.AssertNotCalled(t, "ListPendingBids", mock.Anything, mock.Anything)
}

func TestResolveAuctionLosesRace(t *testing.T) {
	slot := slotFixture("a", 800, 100)
	d := newAuctionDeps(t, slot.ID)
	d.rentals.EXPECT().IsAuctionResolved(mock.Anything, slot.ID, auctionDate).Return(false, nil)
	d.bids.EXPECT().ListPendingBids(mock.Anything, slot.ID).
		Return([]domain.Bid{pendingBid(slot.ID, 10, auctionDate)}, nil)
	d.slots.EXPECT().GetSlot(mock.Anything, slot.ID).Return(&slot, nil)
	d.rentals.EXPECT().SaveAuctionOutcome(mock.Anything, mock.Anything).Return(domain.ErrAuctionResolved)

	res, err := d.resolver(t).ResolveAuction(context.Background(), slot.ID, auctionDate)

	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Nil(t, res.Rental)
}

func TestResolveAuctionNoBids(t *testing.T) {
	slotID := uuid.New()
	d := newAuctionDeps(t, slotID)
	d.rentals.EXPECT().IsAuctionResolved(mock.Anything, slotID, auctionDate).Return(false, nil)
	d.bids.EXPECT().ListPendingBids(mock.Anything, slotID).Return(nil, nil)

	res, err := d.resolver(t).ResolveAuction(context.Background(), slotID, auctionDate)

	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, "No bids", res.Reason)
}

func TestResolveAuctionLocked(t *testing.T) {
	slotID := uuid.New()
	locker := mocks.NewMockLocker(t)
	locker.EXPECT().Acquire(mock.Anything, mock.Anything).Return(nil, port.ErrLocked)

	r := NewAuctionResolver(mocks.NewMockBidRepository(t), mocks.NewMockRentalRepository(t),
		mocks.NewMockSlotRepository(t), locker, quietTelemetry(t), discardLogger())
	res, err := r.ResolveAuction(context.Background(), slotID, auctionDate)

	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, "Auction resolution in progress", res.Reason)
}

func TestRankBidsTieBreak(t *testing.T) {
	slotID := uuid.New()
	early := pendingBid(slotID, 100, auctionDate.Add(-2*time.Hour))
	late := pendingBid(slotID, 100, auctionDate.Add(-1*time.Hour))
	low := pendingBid(slotID, 50, auctionDate.Add(-3*time.Hour))

	ranked := RankBids([]domain.Bid{low, late, early})

	assert.Equal(t, []uuid.UUID{early.ID, late.ID, low.ID}, []uuid.UUID{ranked[0].ID, ranked[1].ID, ranked[2].ID})
}
