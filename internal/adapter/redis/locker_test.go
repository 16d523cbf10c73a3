package redis

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-exchange/internal/core/port"
)

// newTestClient connects to the Redis at REDIS_TEST_ADDRESS or skips.
func newTestClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_TEST_ADDRESS")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDRESS not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(context.Background()).Err())
	return rdb
}

func TestLockerExclusive(t *testing.T) {
	rdb := newTestClient(t)
	l := NewLocker(rdb, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	key := "campaign:" + uuid.NewString() + ":bidding"
	ctx := context.Background()

	release, err := l.Acquire(ctx, key)
	require.NoError(t, err)

	_, err = l.Acquire(ctx, key)
	require.ErrorIs(t, err, port.ErrLocked)

	release()
	release()

	again, err := l.Acquire(ctx, key)
	require.NoError(t, err)
	again()
}

func TestLockerDoesNotReleaseForeignLock(t *testing.T) {
	rdb := newTestClient(t)
	l := NewLocker(rdb, 50*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	key := "auction:" + uuid.NewString()
	ctx := context.Background()

	stale, err := l.Acquire(ctx, key)
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	fresh, err := l.Acquire(ctx, key)
	require.NoError(t, err)
	stale()

	_, err = l.Acquire(ctx, key)
	assert.ErrorIs(t, err, port.ErrLocked)
	fresh()
}
