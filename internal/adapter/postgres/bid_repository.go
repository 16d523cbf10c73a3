package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-exchange/internal/core/domain"
)

const bidColumns = `
            id,
            run_id,
            campaign_id,
            slot_id,
            bid_amount,
            confidence,
            predicted_roi,
            predicted_traffic,
            reason,
            source,
            status,
            competing_bids,
            winning_bid,
            actual_traffic,
            actual_conversions,
            actual_roi,
            created_at`

// BidRepository implements port.BidRepository using pgxpool.
type BidRepository struct {
	pool *pgxpool.Pool
}

// NewBidRepository returns a new repository instance.
func NewBidRepository(pool *pgxpool.Pool) *BidRepository {
	return &BidRepository{pool: pool}
}

// ListPendingBids returns the open bids for a slot, oldest first.
func (r *BidRepository) ListPendingBids(ctx context.Context, slotID uuid.UUID) ([]domain.Bid, error) {
	return r.list(ctx, `SELECT`+bidColumns+` FROM bids
WHERE slot_id = $1 AND status = 'pending' ORDER BY created_at, id`, slotID)
}

// ListCampaignBids returns the newest bids of a campaign.
func (r *BidRepository) ListCampaignBids(ctx context.Context, campaignID uuid.UUID, limit int) ([]domain.Bid, error) {
	return r.list(ctx, `SELECT`+bidColumns+` FROM bids
WHERE campaign_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`, campaignID, limit)
}

// GetBid returns a bid by id.
func (r *BidRepository) GetBid(ctx context.Context, id uuid.UUID) (*domain.Bid, error) {
	b, err := scanBid(r.pool.QueryRow(ctx, `SELECT`+bidColumns+` FROM bids WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BidRepository) list(ctx context.Context, query string, args ...any) ([]domain.Bid, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Bid, error) {
		return scanBid(row)
	})
}

func scanBid(row pgx.Row) (domain.Bid, error) {
	var b domain.Bid
	err := row.Scan(
		&b.ID,
		&b.RunID,
		&b.CampaignID,
		&b.SlotID,
		&b.BidAmount,
		&b.Confidence,
		&b.PredictedROI,
		&b.PredictedTraffic,
		&b.Reason,
		&b.Source,
		&b.Status,
		&b.CompetingBids,
		&b.WinningBid,
		&b.ActualTraffic,
		&b.ActualConversions,
		&b.ActualROI,
		&b.CreatedAt,
	)
	return b, err
}
