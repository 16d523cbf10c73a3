package telemetry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ad-exchange/internal/core/port"
)

const namespace = "adexchange"

// Recorder implements port.Telemetry with Prometheus counters and slog.
type Recorder struct {
	runs             *prometheus.CounterVec
	bidsPlaced       prometheus.Counter
	creditsAllocated prometheus.Counter
	auctions         *prometheus.CounterVec
	learned          prometheus.Counter
	errors           *prometheus.CounterVec
	logger           *slog.Logger
}

// NewRecorder registers the engine metrics with reg.
func NewRecorder(reg prometheus.Registerer, logger *slog.Logger) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bidding_runs_total",
			Help:      "Bidding runs by outcome.",
		}, []string{"outcome"}),
		bidsPlaced: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bids_placed_total",
			Help:      "Bids committed by bidding runs.",
		}),
		creditsAllocated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credits_allocated_total",
			Help:      "Credits debited from campaigns for bids.",
		}),
		auctions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auctions_total",
			Help:      "Auction resolutions by outcome.",
		}, []string{"outcome"}),
		learned: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rentals_learned_total",
			Help:      "Completed rentals fed into campaign learning.",
		}),
		errors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Unexpected errors by operation.",
		}, []string{"op"}),
		logger: logger,
	}
}

// BiddingRun implements port.Telemetry.
func (r *Recorder) BiddingRun(_ context.Context, _ uuid.UUID, res port.RunResult) {
	if res.Skipped {
		r.runs.WithLabelValues("skipped").Inc()
		return
	}
	r.runs.WithLabelValues("success").Inc()
	r.bidsPlaced.Add(float64(res.BidsPlaced))
	r.creditsAllocated.Add(float64(res.CreditsAllocated))
}

// AuctionResolved implements port.Telemetry.
func (r *Recorder) AuctionResolved(_ context.Context, _ uuid.UUID, res port.AuctionResult) {
	outcome := "resolved"
	if res.Skipped {
		outcome = "skipped"
	}
	r.auctions.WithLabelValues(outcome).Inc()
}

// LearningRecorded implements port.Telemetry.
func (r *Recorder) LearningRecorded(context.Context, uuid.UUID, port.LearningResult) {
	r.learned.Inc()
}

// CaptureError implements port.Telemetry.
func (r *Recorder) CaptureError(ctx context.Context, op string, err error) {
	r.errors.WithLabelValues(op).Inc()
	r.logger.ErrorContext(ctx, "operation failed", slog.String("op", op), slog.Any("error", err))
}
