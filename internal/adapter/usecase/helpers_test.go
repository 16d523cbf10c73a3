package usecase

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// quietTelemetry accepts any telemetry call without asserting on it.
func quietTelemetry(t *testing.T) *mocks.MockTelemetry {
	tel := mocks.NewMockTelemetry(t)
	tel.EXPECT().BiddingRun(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	tel.EXPECT().AuctionResolved(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	tel.EXPECT().LearningRecorded(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	tel.EXPECT().CaptureError(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	return tel
}

func freeLock(t *testing.T, key string) *mocks.MockLocker {
	locker := mocks.NewMockLocker(t)
	locker.EXPECT().Acquire(mock.Anything, key).Return(func() {}, nil)
	return locker
}

func slotFixture(store string, traffic, price int64) domain.Slot {
	return domain.Slot{
		ID:             uuid.New(),
		StoreID:        store,
		StoreName:      "Store " + store,
		DayOfWeek:      1,
		StartTime:      "09:00",
		EndTime:        "12:00",
		DurationHours:  3,
		CreditsPerHour: price,
		AverageTraffic: traffic,
		IsActive:       true,
	}
}

func ptr[T any](v T) *T {
	return &v
}
