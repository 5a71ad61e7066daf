// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/bakehouse/backend/internal/domain/entity"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status *entity.OrderStatus
}

// OrderRepository defines the interface for order persistence operations.
type OrderRepository interface {
	// Create persists a new order with its items. Returns
	// ErrAllocationConflict if the order number is already taken.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindAll retrieves orders matching the filter, with nested items.
	FindAll(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// Update replaces an order's fields and, when items are given, its items.
	Update(ctx context.Context, order *entity.Order, replaceItems bool) error

	// UpdateStatus changes only the status of an order.
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error

	// Delete removes an order and its items.
	Delete(ctx context.Context, id int64) error

	// MaxSequenceForPrefix returns the highest numeric suffix among order
	// numbers starting with prefix, or 0 when none exist. Seeds the
	// per-day allocation counters.
	MaxSequenceForPrefix(ctx context.Context, prefix string) (int, error)
}
