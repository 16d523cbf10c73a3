package port

import (
	"context"

	"github.com/google/uuid"
)

// Telemetry receives run summaries and unexpected errors. Calls are fire
// and forget; implementations must never block or fail the caller.
type Telemetry interface {
	BiddingRun(ctx context.Context, campaignID uuid.UUID, res RunResult)
	AuctionResolved(ctx context.Context, slotID uuid.UUID, res AuctionResult)
	LearningRecorded(ctx context.Context, rentalID uuid.UUID, res LearningResult)
	CaptureError(ctx context.Context, op string, err error)
}
