package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when a key is absent. Callers treat a miss
// the same as any other cache failure: fall through to the database.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the minimal contract repositories need. Implementations must
// be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
}
