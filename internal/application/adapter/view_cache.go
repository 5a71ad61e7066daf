// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// ViewCache is a read-through cache for computed financial views. Entries
// carry a short TTL instead of explicit invalidation; a stale view is at
// most TTL old. Implementations must be safe for concurrent use.
type ViewCache interface {
	// Get unmarshals the cached value for key into dest. The boolean is
	// false on a miss.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key for the given TTL.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
