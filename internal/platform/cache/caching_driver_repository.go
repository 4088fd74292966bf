// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"ride_backend/internal/feature/driver/domain/entity"
	"ride_backend/internal/feature/driver/usecase"
)

// CachingDriverRepository decorates a DriverRepository with Redis caching of
// the listing query, the hot path behind the public GET /api/drivers/
// endpoint. It implements the decorator pattern, transparently adding caching
// without modifying the underlying repository.
type CachingDriverRepository struct {
	inner     usecase.DriverRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.DriverRepository = (*CachingDriverRepository)(nil)

// NewCachingDriverRepository decorates a DriverRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "drivers".
func NewCachingDriverRepository(rdb *redis.Client, ttl time.Duration, inner usecase.DriverRepository, namespace string) *CachingDriverRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "drivers"
	}
	return &CachingDriverRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a driver offer and invalidates the listing cache.
func (c *CachingDriverRepository) Create(ctx context.Context, d *entity.Driver) error {
	if err := c.inner.Create(ctx, d); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// FindByID bypasses the cache; single-row reads hit the database directly.
func (c *CachingDriverRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	return c.inner.FindByID(ctx, id)
}

// UpdateStatus applies the conditional status update and invalidates the listing cache.
func (c *CachingDriverRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.DriverStatus) error {
	if err := c.inner.UpdateStatus(ctx, id, from, to); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// List retrieves driver offers, checking cache first then falling back to the database.
func (c *CachingDriverRepository) List(ctx context.Context, f usecase.ListFilter) ([]entity.Driver, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx, f)
	}

	key := c.cacheKey(f)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Driver
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx, f)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// invalidate drops every cached listing page, best effort.
func (c *CachingDriverRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// cacheKey generates a cache key for a specific filter combination.
func (c *CachingDriverRepository) cacheKey(f usecase.ListFilter) string {
	return fmt.Sprintf("%s:%s:%d:%s:%d:%d",
		c.namespace,
		safe(f.VehicleType),
		f.MinSeats,
		safe(strings.ToLower(f.Route)),
		f.Limit,
		f.Offset,
	)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingDriverRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
