// Package lock serializes work on a shared key, such as the reservation set of a single bike.
package lock

import (
	"context"
	"time"
)

type Locker interface {
	// Lock blocks until the key is held or ctx is done. The returned func releases the key.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

type Config struct {
	TTL        time.Duration `envconfig:"LOCK_TTL" default:"10s"`
	RetryDelay time.Duration `envconfig:"LOCK_RETRY_DELAY" default:"25ms"`
}
