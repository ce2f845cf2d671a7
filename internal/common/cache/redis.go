// internal/common/cache/redis.go
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/config"

	"github.com/redis/go-redis/v9"
)

// Cache wraps the Redis client used to memoize upstream responses.
// A nil *Cache is valid and behaves as a miss-everything cache, so callers
// never need to branch on whether Redis is configured.
type Cache struct {
	Client *redis.Client
}

// New creates a new response cache. Returns (nil, nil) when caching is disabled.
func New(cfg config.RedisConfig) (*Cache, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	return &Cache{Client: rdb}, nil
}

// Ping tests the Redis connection
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *Cache) Close() error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Close()
}

// Get retrieves a cached payload. A nil cache or any Redis error reads as a miss.
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	val, err := c.Client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores a payload with expiration. Errors are swallowed: the cache is
// an optimization, never a dependency.
func (c *Cache) Set(ctx context.Context, key string, value string, expiration time.Duration) {
	if c == nil {
		return
	}
	_ = c.Client.Set(ctx, key, value, expiration).Err()
}

// Del deletes one or more keys
func (c *Cache) Del(ctx context.Context, keys ...string) error {
	if c == nil {
		return nil
	}
	return c.Client.Del(ctx, keys...).Err()
}
