// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"dashboard_backend/internal/feature/dataset/domain/entity"
	"dashboard_backend/internal/platform/dataset"
)

// CachingDatasetRepository decorates a dataset.Repository with Redis caching
// of filter results. The dashboard renders several views against the same
// filter state, so identical Filtered calls arrive in bursts; the cache lets
// all but the first skip re-scanning the snapshot.
//
// The dataset is immutable after startup, so entries never need invalidation
// and expire by TTL alone.
type CachingDatasetRepository struct {
	inner     dataset.Repository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ dataset.Repository = (*CachingDatasetRepository)(nil)

// NewCachingDatasetRepository decorates a dataset.Repository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "dataset".
func NewCachingDatasetRepository(rdb *redis.Client, ttl time.Duration, inner dataset.Repository, namespace string) *CachingDatasetRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "dataset"
	}
	return &CachingDatasetRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Records returns the full dataset without touching the cache. The snapshot
// is already memory-resident, so there is nothing to win by caching it.
func (c *CachingDatasetRepository) Records(ctx context.Context) ([]entity.Record, error) {
	return c.inner.Records(ctx)
}

// Filtered retrieves filter results, checking the cache first and falling
// back to the underlying repository.
func (c *CachingDatasetRepository) Filtered(ctx context.Context, filter entity.Filter) ([]entity.Record, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Filtered(ctx, filter)
	}

	key := c.cacheKey(filter)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Record
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the snapshot
	out, err := c.inner.Filtered(ctx, filter)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a deterministic key for a filter. Selections are sorted
// so that the same filter always maps to the same key regardless of the
// order the client sent its values in.
func (c *CachingDatasetRepository) cacheKey(filter entity.Filter) string {
	return fmt.Sprintf("%s:%s:%s:%d:%d",
		c.namespace,
		joinSorted(filter.Countries),
		joinSorted(filter.Sectors),
		filter.YearFrom,
		filter.YearTo,
	)
}

func joinSorted(values []string) string {
	escaped := make([]string, 0, len(values))
	for _, v := range values {
		escaped = append(escaped, safe(v))
	}
	sort.Strings(escaped)
	return strings.Join(escaped, ",")
}

// safe escapes characters that are problematic for Redis keys or that would
// collide with the separators used by cacheKey.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, ",", "_")
	return s
}
