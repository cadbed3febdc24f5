package usecase

import (
	"context"
	"time"
)

// SearchCache sits in front of the store's Search. Implementations
// must degrade to misses when the backing cache is unavailable.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
