// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/bakehouse/backend/internal/domain/entity"
	"github.com/bakehouse/backend/internal/domain/valueobject"
)

// ExpenseFilter narrows expense listings.
type ExpenseFilter struct {
	Period   *valueobject.Period
	Category string
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create persists a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Expense, error)

	// FindAll retrieves expenses matching the filter, newest first.
	FindAll(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// DistinctCategories retrieves the categories recorded on expenses, sorted.
	DistinctCategories(ctx context.Context) ([]string, error)

	// Update replaces an expense's fields.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense.
	Delete(ctx context.Context, id int64) error
}
