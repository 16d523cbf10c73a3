package usecase

import (
	"context"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
)

// SlotCatalog resolves the eligible inventory for a campaign's targeting.
type SlotCatalog struct {
	slots port.SlotRepository
}

// NewSlotCatalog returns a catalog reader over the slot repository.
func NewSlotCatalog(slots port.SlotRepository) *SlotCatalog {
	return &SlotCatalog{slots: slots}
}

// FindEligible returns active slots matching the targeting rules. The
// result has no guaranteed order.
func (c *SlotCatalog) FindEligible(ctx context.Context, t domain.Targeting) ([]domain.Slot, error) {
	slots, err := c.slots.FindActiveSlots(ctx, t.MinTraffic)
	if err != nil {
		return nil, err
	}
	eligible := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		if t.Matches(s) {
			eligible = append(eligible, s)
		}
	}
	return eligible, nil
}
