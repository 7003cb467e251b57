// Package cache stores raw provider response bodies for a short revalidation
// window so repeated feed requests do not hit upstream providers every time.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented TTL store. Implementations must be safe for
// concurrent use. A miss or backend failure is reported as ok=false; callers
// then fetch from the provider.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Ping(ctx context.Context) error
	Close() error
}
