// Package cache implements the view cache on Redis.
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type cachedView struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redisViewCache) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, &redisViewCache{client: client}
}

func TestRedisViewCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get roundtrip", func(t *testing.T) {
		_, viewCache := newTestCache(t)

		stored := cachedView{Income: 150.75, Expense: 50.25}
		if err := viewCache.Set(ctx, "finance:summary:2024-03", stored, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var loaded cachedView
		hit, err := viewCache.Get(ctx, "finance:summary:2024-03", &loaded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !hit {
			t.Fatal("expected a cache hit")
		}
		if loaded != stored {
			t.Errorf("expected %+v, got %+v", stored, loaded)
		}
	})

	t.Run("missing key is a miss, not an error", func(t *testing.T) {
		_, viewCache := newTestCache(t)

		var loaded cachedView
		hit, err := viewCache.Get(ctx, "finance:summary:2024-03", &loaded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hit {
			t.Error("expected a cache miss")
		}
	})

	t.Run("entries expire after their TTL", func(t *testing.T) {
		server, viewCache := newTestCache(t)

		if err := viewCache.Set(ctx, "finance:trends:6", cachedView{Income: 10}, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		server.FastForward(2 * time.Minute)

		var loaded cachedView
		hit, err := viewCache.Get(ctx, "finance:trends:6", &loaded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hit {
			t.Error("expected the entry to have expired")
		}
	})

	t.Run("corrupt payload surfaces an error", func(t *testing.T) {
		server, viewCache := newTestCache(t)

		server.Set("finance:summary:2024-03", "{not json")

		var loaded cachedView
		if _, err := viewCache.Get(ctx, "finance:summary:2024-03", &loaded); err == nil {
			t.Error("expected a decode error")
		}
	})
}
