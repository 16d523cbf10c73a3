package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
)

// detailLimit caps the bids and rentals returned with a campaign.
const detailLimit = 50

type CampaignService struct {
	campaigns port.CampaignRepository
	bids      port.BidRepository
	rentals   port.RentalRepository
	logger    *slog.Logger
}

func NewCampaignService(
	campaigns port.CampaignRepository,
	bids port.BidRepository,
	rentals port.RentalRepository,
	logger *slog.Logger,
) *CampaignService {
	return &CampaignService{campaigns: campaigns, bids: bids, rentals: rentals, logger: logger}
}

// PauseCampaign implements port.CampaignUseCase. Pausing a paused campaign
// is a no-op; completed campaigns stay completed.
func (s *CampaignService) PauseCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	switch c.Status {
	case domain.CampaignCompleted:
		return nil, domain.ErrCampaignCompleted
	case domain.CampaignPaused:
		return c, nil
	}
	return s.transition(ctx, c, domain.CampaignPaused)
}

// ResumeCampaign implements port.CampaignUseCase.
func (s *CampaignService) ResumeCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	switch {
	case c.Status == domain.CampaignCompleted || c.Exhausted():
		return nil, domain.ErrCampaignCompleted
	case c.Status == domain.CampaignActive:
		return c, nil
	}
	return s.transition(ctx, c, domain.CampaignActive)
}

// GetCampaignDetail implements port.CampaignUseCase.
func (s *CampaignService) GetCampaignDetail(ctx context.Context, id uuid.UUID) (*port.CampaignDetail, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	bids, err := s.bids.ListCampaignBids(ctx, id, detailLimit)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	rentals, err := s.rentals.ListCampaignRentals(ctx, id, detailLimit)
	if err != nil {
		return nil, fmt.Errorf("list rentals: %w", err)
	}
	return &port.CampaignDetail{Campaign: c, Bids: bids, Rentals: rentals}, nil
}

func (s *CampaignService) load(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := s.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load campaign: %w", err)
	}
	if c == nil {
		return nil, port.ErrNotFound
	}
	return c, nil
}

func (s *CampaignService) transition(ctx context.Context, c *domain.Campaign, status domain.CampaignStatus) (*domain.Campaign, error) {
	if err := s.campaigns.SetStatus(ctx, c.ID, status); err != nil {
		return nil, fmt.Errorf("set campaign status: %w", err)
	}
	s.logger.InfoContext(ctx, "campaign status changed",
		slog.String("campaign_id", c.ID.String()),
		slog.String("from", string(c.Status)),
		slog.String("to", string(status)))
	c.Status = status
	return c, nil
}
