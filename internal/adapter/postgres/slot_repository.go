package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-exchange/internal/core/domain"
)

const slotQuery = `
        SELECT
            s.id,
            s.store_id,
            st.name,
            st.category,
            s.day_of_week,
            s.start_time,
            s.end_time,
            s.duration_hours,
            s.credits_per_hour,
            s.average_traffic,
            s.is_prime_time,
            s.is_active
        FROM slots s
        JOIN stores st ON st.id = s.store_id`

// SlotRepository implements port.SlotRepository using pgxpool.
type SlotRepository struct {
	pool *pgxpool.Pool
}

// NewSlotRepository returns a new repository instance.
func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

// FindActiveSlots returns active slots with at least minTraffic average
// traffic when minTraffic is set.
func (r *SlotRepository) FindActiveSlots(ctx context.Context, minTraffic *int64) ([]domain.Slot, error) {
	rows, err := r.pool.Query(ctx, slotQuery+`
        WHERE s.is_active AND ($1::bigint IS NULL OR s.average_traffic >= $1)`, minTraffic)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Slot, error) {
		return scanSlot(row)
	})
}

// GetSlot returns a slot by id.
func (r *SlotRepository) GetSlot(ctx context.Context, id uuid.UUID) (*domain.Slot, error) {
	s, err := scanSlot(r.pool.QueryRow(ctx, slotQuery+` WHERE s.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanSlot(row pgx.Row) (domain.Slot, error) {
	var s domain.Slot
	err := row.Scan(
		&s.ID,
		&s.StoreID,
		&s.StoreName,
		&s.Category,
		&s.DayOfWeek,
		&s.StartTime,
		&s.EndTime,
		&s.DurationHours,
		&s.CreditsPerHour,
		&s.AverageTraffic,
		&s.IsPrimeTime,
		&s.IsActive,
	)
	return s, err
}
