package port

import (
	"context"
	"errors"
)

// ErrLocked is returned by Locker.Acquire when another worker holds the key.
var ErrLocked = errors.New("lock held by another worker")

// Locker provides keyed mutual exclusion. Acquire does not wait: it either
// takes the lock or fails with ErrLocked. The returned release function is
// safe to call once.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
