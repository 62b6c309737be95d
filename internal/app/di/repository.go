package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"dashboard_backend/internal/platform/cache"
	"dashboard_backend/internal/platform/dataset"
)

// NewDatasetRepository creates a dataset.Repository implementation.
// If Redis is available, it returns one whose filter queries are cached.
// Otherwise, the in-memory store serves directly.
func NewDatasetRepository(rdb *redis.Client, store *dataset.Store, ttl time.Duration) dataset.Repository {
	if rdb != nil {
		return cache.NewCachingDatasetRepository(rdb, ttl, store, "dataset")
	}
	return store
}
