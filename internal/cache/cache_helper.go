package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheNotAvailable = errors.New("cache not available")
	ErrCacheNotFound     = errors.New("cache entry not found")
)

// CacheHelper provides common caching operations on top of Redis. A nil
// client degrades every operation to a miss, so callers never branch on
// whether caching is configured.
type CacheHelper struct {
	client *redis.Client
	prefix string
}

func NewCacheHelper(client *redis.Client, prefix string) *CacheHelper {
	return &CacheHelper{client: client, prefix: prefix}
}

// CacheConfig defines TTL and key prefix for one class of cached data.
type CacheConfig struct {
	TTL    time.Duration
	Prefix string
}

// DashboardCacheConfig is short-lived: dashboards tolerate a minute of
// staleness but must not survive a member's own writes for long.
var DashboardCacheConfig = CacheConfig{
	TTL:    time.Minute,
	Prefix: "dashboard:",
}

func (c *CacheHelper) key(key string) string {
	return fmt.Sprintf("%s%s", c.prefix, key)
}

// Get retrieves and unmarshals a cached value into dest.
func (c *CacheHelper) Get(ctx context.Context, key string, dest interface{}) error {
	if c == nil || c.client == nil {
		return ErrCacheNotAvailable
	}
	data, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheNotFound
		}
		return fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("cache unmarshal: %w", err)
	}
	return nil
}

// Set marshals and stores a value with the given TTL.
func (c *CacheHelper) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return ErrCacheNotAvailable
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, c.key(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes keys from the cache.
func (c *CacheHelper) Delete(ctx context.Context, keys ...string) error {
	if c == nil || c.client == nil {
		return ErrCacheNotAvailable
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = c.key(k)
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// SafeDelete deletes keys and logs instead of returning failures. Cache
// invalidation must never fail the write that triggered it.
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if helper == nil {
		return
	}
	if err := helper.Delete(ctx, keys...); err != nil && !errors.Is(err, ErrCacheNotAvailable) {
		slog.ErrorContext(ctx, "failed to delete cache keys", "error", err, "keys", keys)
	}
}
