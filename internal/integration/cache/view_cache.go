// Package cache implements the view cache on Redis. Financial views are
// recomputed on demand; Redis only shaves repeated reads within a short TTL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bakehouse/backend/internal/application/adapter"
)

// redisViewCache implements the adapter.ViewCache interface on Redis.
type redisViewCache struct {
	client *redis.Client
}

// NewRedisViewCache creates a new Redis-backed view cache.
func NewRedisViewCache(client *redis.Client) adapter.ViewCache {
	return &redisViewCache{
		client: client,
	}
}

// Get unmarshals the cached value for key into dest. Returns false on a miss.
func (c *redisViewCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("failed to decode cache key %s: %w", key, err)
	}
	return true, nil
}

// Set stores value under key for the given TTL.
func (c *redisViewCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache key %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}
