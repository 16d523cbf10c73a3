package telemetry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-exchange/internal/core/port"
)

// counterValue sums the counter samples of a family matching labels.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metrics:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue metrics
				}
			}
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()
	id := uuid.New()

	r.BiddingRun(ctx, id, port.RunResult{Success: true, BidsPlaced: 3, CreditsAllocated: 420})
	r.BiddingRun(ctx, id, *port.Skip("No available slots"))
	r.AuctionResolved(ctx, id, port.AuctionResult{Success: true, TotalBids: 2})
	r.AuctionResolved(ctx, id, port.AuctionResult{Skipped: true, Reason: "No bids"})
	r.LearningRecorded(ctx, id, port.LearningResult{ActualROI: 12})
	r.CaptureError(ctx, "run bidding: commit bids", errors.New("boom"))

	assert.Equal(t, 1.0, counterValue(t, reg, "adexchange_bidding_runs_total", map[string]string{"outcome": "success"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "adexchange_bidding_runs_total", map[string]string{"outcome": "skipped"}))
	assert.Equal(t, 3.0, counterValue(t, reg, "adexchange_bids_placed_total", nil))
	assert.Equal(t, 420.0, counterValue(t, reg, "adexchange_credits_allocated_total", nil))
	assert.Equal(t, 1.0, counterValue(t, reg, "adexchange_auctions_total", map[string]string{"outcome": "resolved"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "adexchange_auctions_total", map[string]string{"outcome": "skipped"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "adexchange_rentals_learned_total", nil))
	assert.Equal(t, 1.0, counterValue(t, reg, "adexchange_errors_total", map[string]string{"op": "run bidding: commit bids"}))
}
