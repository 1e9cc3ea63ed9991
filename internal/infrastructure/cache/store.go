// Package cache provides the byte-value stores backing the short-link
// resolver and generated asset caches. Two implementations exist: Redis
// for distributed deployments and an in-memory map for single-instance
// deployments and testing.
package cache

import (
	"context"
	"time"
)

// Store is a TTL-bounded key/value byte store. A miss is reported via
// the ok flag, not an error; errors are reserved for backend failures.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
