package usecase

import (
	"context"
	"time"
)

const jobsListCacheKey = "jobs:list"

// ListCache is satisfied by the redis client in
// internal/infrastructure/cache; a nil cache disables caching.
type ListCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
