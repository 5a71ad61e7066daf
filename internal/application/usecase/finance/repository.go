// Package finance contains the financial reporting use cases: monthly
// summaries, trend series, composition breakdowns and the merged ledger.
package finance

import (
	"context"

	"github.com/bakehouse/backend/internal/domain/entity"
	"github.com/bakehouse/backend/internal/domain/valueobject"
)

// Repository defines the read-only record store the finance views fold over.
type Repository interface {
	// CompletedOrders returns completed orders whose order date falls
	// inside the period, with nested items. Orders in any other status
	// never contribute to financial views.
	CompletedOrders(ctx context.Context, period valueobject.Period) ([]*entity.Order, error)

	// Expenses returns expenses whose expense date falls inside the period.
	Expenses(ctx context.Context, period valueobject.Period) ([]*entity.Expense, error)
}
