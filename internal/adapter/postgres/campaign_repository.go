package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
)

const campaignColumns = `
            id,
            name,
            targeting,
            bidding_strategy,
            optimization_goal,
            total_credits,
            credits_remaining,
            credits_spent,
            daily_budget,
            max_price_per_slot,
            status,
            performance_history,
            ml_model,
            total_impressions,
            total_clicks,
            total_conversions,
            total_knowledge_gained,
            average_cpc,
            roi,
            created_at,
            updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT`+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListActiveCampaignIDs returns ids of active campaigns, oldest first.
func (r *CampaignRepository) ListActiveCampaignIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM campaigns WHERE status = 'active' ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

// SetStatus changes the lifecycle status of a campaign.
func (r *CampaignRepository) SetStatus(ctx context.Context, id uuid.UUID, status domain.CampaignStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// CommitRun records the bidding run, debits the campaign and inserts the
// run's bids in one transaction. A run id that was committed before is a
// no-op, and a ledger that moved since it was read fails with
// domain.ErrLedgerConflict.
func (r *CampaignRepository) CommitRun(ctx context.Context, debit port.LedgerDebit) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `INSERT INTO bidding_runs (id, campaign_id, amount, credits_before, credits_after)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT (id) DO NOTHING`,
			debit.RunID, debit.CampaignID, debit.Amount, debit.Before.CreditsRemaining, debit.After.CreditsRemaining)
		if err != nil {
			return fmt.Errorf("insert bidding run: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		tag, err = tx.Exec(ctx, `UPDATE campaigns
SET credits_remaining = $2, credits_spent = $3, status = $4, updated_at = now()
WHERE id = $1 AND credits_remaining = $5 AND credits_spent = $6 AND status = $7`,
			debit.CampaignID,
			debit.After.CreditsRemaining, debit.After.CreditsSpent, debit.After.Status,
			debit.Before.CreditsRemaining, debit.Before.CreditsSpent, debit.Before.Status)
		if err != nil {
			return fmt.Errorf("debit campaign: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrLedgerConflict
		}

		batch := &pgx.Batch{}
		for _, b := range debit.Bids {
			batch.Queue(`INSERT INTO bids
(id, run_id, campaign_id, slot_id, bid_amount, confidence, predicted_roi, predicted_traffic, reason, source, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
				b.ID, b.RunID, b.CampaignID, b.SlotID, b.BidAmount, b.Confidence, b.PredictedROI,
				b.PredictedTraffic, b.Reason, b.Source, b.Status, b.CreatedAt)
		}
		if err = tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert bids: %w", err)
		}
		return nil
	})
}

// RecordPerformance stamps the rental as learned, stores the bid actuals
// and persists the campaign after apply mutated it under a row lock.
func (r *CampaignRepository) RecordPerformance(ctx context.Context, upd port.PerformanceUpdate, apply func(*domain.Campaign) error) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE rentals SET performance_recorded_at = now()
WHERE id = $1 AND performance_recorded_at IS NULL`, upd.RentalID)
		if err != nil {
			return fmt.Errorf("stamp rental: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrAlreadyRecorded
		}

		_, err = tx.Exec(ctx, `UPDATE bids SET actual_traffic = $2, actual_conversions = $3, actual_roi = $4 WHERE id = $1`,
			upd.BidID, upd.ActualTraffic, upd.ActualConversions, upd.ActualROI)
		if err != nil {
			return fmt.Errorf("update bid actuals: %w", err)
		}

		c, err := scanCampaign(tx.QueryRow(ctx, `SELECT`+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, upd.CampaignID))
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("campaign %s: %w", upd.CampaignID, port.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("lock campaign: %w", err)
		}
		if err = apply(c); err != nil {
			return err
		}

		history, err := json.Marshal(c.History)
		if err != nil {
			return err
		}
		model, err := json.Marshal(c.Model)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE campaigns SET
    performance_history = $2,
    ml_model = $3,
    total_impressions = $4,
    total_clicks = $5,
    total_conversions = $6,
    total_knowledge_gained = $7,
    average_cpc = $8,
    roi = $9,
    updated_at = now()
WHERE id = $1`,
			c.ID, history, model, c.TotalImpressions, c.TotalClicks, c.TotalConversions,
			c.TotalKnowledgeGained, c.AverageCPC, c.AverageROI)
		if err != nil {
			return fmt.Errorf("update campaign metrics: %w", err)
		}
		return nil
	})
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c                         domain.Campaign
		targeting, history, model []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&targeting,
		&c.Strategy,
		&c.OptimizationGoal,
		&c.TotalCredits,
		&c.CreditsRemaining,
		&c.CreditsSpent,
		&c.DailyBudget,
		&c.MaxPricePerSlot,
		&c.Status,
		&history,
		&model,
		&c.TotalImpressions,
		&c.TotalClicks,
		&c.TotalConversions,
		&c.TotalKnowledgeGained,
		&c.AverageCPC,
		&c.AverageROI,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(targeting, &c.Targeting); err != nil {
		return nil, fmt.Errorf("decode targeting of campaign %s: %w", c.ID, err)
	}
	if err = json.Unmarshal(history, &c.History); err != nil {
		return nil, fmt.Errorf("decode history of campaign %s: %w", c.ID, err)
	}
	if err = json.Unmarshal(model, &c.Model); err != nil {
		return nil, fmt.Errorf("decode model of campaign %s: %w", c.ID, err)
	}
	return &c, nil
}
