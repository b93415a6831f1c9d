package ports

import (
	"context"
	"time"
)

// Cache is a read-through JSON blob cache with TTL-based expiry. Get reports
// a miss as (false, nil); backend errors are also surfaced as misses by
// implementations so callers degrade instead of failing.
type Cache interface {
	// Get unmarshals the cached value for key into dest and reports whether
	// the key was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// DeletePattern removes every key matching a glob pattern, e.g. "courses:*".
	DeletePattern(ctx context.Context, pattern string) error
}
