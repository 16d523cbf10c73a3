package configs

import "time"

// Redis configures the optional Redis connection used for distributed
// run locks. An empty Address keeps locking in-process, which is only safe
// with a single engine replica.
type Redis struct {
	Address  string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// LockTTL bounds how long a crashed worker can hold a run lock.
	LockTTL time.Duration `env:"LOCK_TTL" envDefault:"5m"`
}

// Enabled reports whether a Redis address was configured.
func (c Redis) Enabled() bool {
	return c.Address != ""
}
