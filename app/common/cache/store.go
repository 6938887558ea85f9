package cache

import (
	"context"
	"time"
)

// Store is the key/value cache the read and write paths share.
type Store interface {
	// Get reports ok=false on a miss.
	Get(ctx context.Context, key string) (val string, ok bool, err error)
	// Set stores value; ttl <= 0 keeps it until it is evicted.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	// DelPattern evicts every key matching a glob pattern and returns how many
	// were removed.
	DelPattern(ctx context.Context, pattern string) (int, error)
}
