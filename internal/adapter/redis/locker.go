package redis

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"ad-exchange/internal/core/port"
)

const releaseTimeout = 2 * time.Second

// releaseScript deletes the lock only while it still carries our token, so
// a lock that expired and was taken by another worker is never released.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0`)

// Locker implements port.Locker with Redis SET NX PX. Locks expire after
// ttl so a crashed worker cannot block a campaign or auction forever.
type Locker struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewLocker returns a distributed locker.
func NewLocker(rdb redis.Cmdable, ttl time.Duration, logger *slog.Logger) *Locker {
	return &Locker{rdb: rdb, ttl: ttl, logger: logger}
}

// Acquire implements port.Locker.
func (l *Locker) Acquire(ctx context.Context, key string) (func(), error) {
	key = "lock:" + key
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, port.ErrLocked
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
			defer cancel()
			if err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Err(); err != nil {
				l.logger.WarnContext(ctx, "failed to release lock",
					slog.String("key", key), slog.Any("error", err))
			}
		})
	}, nil
}
