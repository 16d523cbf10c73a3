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

func TestPauseAndResumeCampaign(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	svc := NewCampaignService(campaigns, mocks.NewMockBidRepository(t), mocks.NewMockRentalRepository(t), discardLogger())

	c := activeCampaign(300)
	campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	campaigns.EXPECT().SetStatus(mock.Anything, c.ID, domain.CampaignPaused).Return(nil).Once()
	campaigns.EXPECT().SetStatus(mock.Anything, c.ID, domain.CampaignActive).Return(nil).Once()

	paused, err := svc.PauseCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPaused, paused.Status)

	again, err := svc.PauseCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPaused, again.Status)

	resumed, err := svc.ResumeCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, resumed.Status)
}

func TestResumeCompletedCampaign(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	svc := NewCampaignService(campaigns, mocks.NewMockBidRepository(t), mocks.NewMockRentalRepository(t), discardLogger())

	c := activeCampaign(0)
	c.Status = domain.CampaignPaused
	campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)

	_, err := svc.ResumeCampaign(context.Background(), c.ID)

	require.ErrorIs(t, err, domain.ErrCampaignCompleted)
	campaigns.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetCampaignDetail(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	bids := mocks.NewMockBidRepository(t)
	rentals := mocks.NewMockRentalRepository(t)
	svc := NewCampaignService(campaigns, bids, rentals, discardLogger())

	c := activeCampaign(300)
	campaigns.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	bids.EXPECT().ListCampaignBids(mock.Anything, c.ID, 50).Return([]domain.Bid{{ID: uuid.New()}}, nil)
	rentals.EXPECT().ListCampaignRentals(mock.Anything, c.ID, 50).Return(nil, nil)

	detail, err := svc.GetCampaignDetail(context.Background(), c.ID)

	require.NoError(t, err)
	assert.Same(t, c, detail.Campaign)
	assert.Len(t, detail.Bids, 1)
	assert.Empty(t, detail.Rentals)
}

func TestGetCampaignDetailNotFound(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	svc := NewCampaignService(campaigns, mocks.NewMockBidRepository(t), mocks.NewMockRentalRepository(t), discardLogger())

	id := uuid.New()
	campaigns.EXPECT().GetCampaign(mock.Anything, id).Return(nil, nil)

	_, err := svc.GetCampaignDetail(context.Background(), id)

	require.ErrorIs(t, err, port.ErrNotFound)
}
