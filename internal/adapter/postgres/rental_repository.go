package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
)

const rentalColumns = `
            id,
            slot_id,
            campaign_id,
            bid_id,
            start_time,
            end_time,
            duration_hours,
            credits_charged,
            price_eur::text,
            status,
            traffic_generated,
            conversions,
            impressions,
            clicks,
            knowledge_gained,
            performance_recorded_at,
            created_at`

// RentalRepository implements port.RentalRepository using pgxpool.
type RentalRepository struct {
	pool *pgxpool.Pool
}

// NewRentalRepository returns a new repository instance.
func NewRentalRepository(pool *pgxpool.Pool) *RentalRepository {
	return &RentalRepository{pool: pool}
}

// GetRental returns a rental by id.
func (r *RentalRepository) GetRental(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	rental, err := scanRental(r.pool.QueryRow(ctx, `SELECT`+rentalColumns+` FROM rentals WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// ListCampaignRentals returns the newest rentals of a campaign.
func (r *RentalRepository) ListCampaignRentals(ctx context.Context, campaignID uuid.UUID, limit int) ([]domain.Rental, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+rentalColumns+` FROM rentals
WHERE campaign_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`, campaignID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Rental, error) {
		return scanRental(row)
	})
}

// IsAuctionResolved reports whether the (slot, date) auction has a winner.
func (r *RentalRepository) IsAuctionResolved(ctx context.Context, slotID uuid.UUID, auctionDate time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM auctions WHERE slot_id = $1 AND auction_date = $2)`,
		slotID, auctionDate).Scan(&exists)
	return exists, err
}

// SaveAuctionOutcome claims the (slot, date) auction, settles its bids and
// creates the rental in one transaction.
func (r *RentalRepository) SaveAuctionOutcome(ctx context.Context, o port.AuctionOutcome) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `INSERT INTO auctions (slot_id, auction_date, winning_bid_id, total_bids)
VALUES ($1,$2,$3,$4) ON CONFLICT (slot_id, auction_date) DO NOTHING`,
			o.SlotID, o.AuctionDate, o.Winner.ID, len(o.Losers)+1)
		if err != nil {
			return fmt.Errorf("claim auction: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrAuctionResolved
		}

		tag, err = tx.Exec(ctx, `UPDATE bids SET status = 'won', competing_bids = $2
WHERE id = $1 AND status = 'pending'`, o.Winner.ID, o.Winner.CompetingBids)
		if err != nil {
			return fmt.Errorf("mark winner: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrAuctionResolved
		}

		batch := &pgx.Batch{}
		for _, b := range o.Losers {
			batch.Queue(`UPDATE bids SET status = 'lost', competing_bids = $2, winning_bid = $3
WHERE id = $1 AND status = 'pending'`, b.ID, b.CompetingBids, b.WinningBid)
		}
		rental := o.Rental
		batch.Queue(`INSERT INTO rentals
(id, slot_id, campaign_id, bid_id, start_time, end_time, duration_hours, credits_charged, price_eur, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9::numeric,$10,$11)`,
			rental.ID, rental.SlotID, rental.CampaignID, rental.BidID, rental.StartTime, rental.EndTime,
			rental.DurationHours, rental.CreditsCharged, rental.PriceEUR.StringFixed(2), rental.Status, rental.CreatedAt)
		if err = tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("settle auction: %w", err)
		}
		return nil
	})
}

// SaveMeasurement stores measured traffic and marks the rental completed.
// Rentals already learned from are left untouched.
func (r *RentalRepository) SaveMeasurement(ctx context.Context, rentalID uuid.UUID, m domain.Measurement) error {
	_, err := r.pool.Exec(ctx, `UPDATE rentals SET
    traffic_generated = $2,
    conversions = $3,
    impressions = $4,
    clicks = $5,
    knowledge_gained = $6,
    status = 'completed'
WHERE id = $1 AND performance_recorded_at IS NULL`,
		rentalID, m.TrafficGenerated, m.Conversions, m.Impressions, m.Clicks, m.KnowledgeGained)
	return err
}

func scanRental(row pgx.Row) (domain.Rental, error) {
	var (
		rental domain.Rental
		price  string
	)
	err := row.Scan(
		&rental.ID,
		&rental.SlotID,
		&rental.CampaignID,
		&rental.BidID,
		&rental.StartTime,
		&rental.EndTime,
		&rental.DurationHours,
		&rental.CreditsCharged,
		&price,
		&rental.Status,
		&rental.TrafficGenerated,
		&rental.Conversions,
		&rental.Impressions,
		&rental.Clicks,
		&rental.KnowledgeGained,
		&rental.PerformanceRecordedAt,
		&rental.CreatedAt,
	)
	if err != nil {
		return rental, err
	}
	if rental.PriceEUR, err = decimal.NewFromString(price); err != nil {
		return rental, fmt.Errorf("decode price of rental %s: %w", rental.ID, err)
	}
	return rental, nil
}
