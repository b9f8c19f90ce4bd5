package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface abstracts the key-value cache. Get reports an
// absent key as pkg/errors.ErrCacheMiss; any other error is real cache trouble,
// which callers log and then treat as a miss. The cache is never allowed to
// take a feature down with it.
type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key ...string) error
	DelByPattern(ctx context.Context, pattern string) error
	Incr(ctx context.Context, key string) (int64, error)
}
