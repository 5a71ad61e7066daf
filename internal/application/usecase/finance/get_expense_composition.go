// Package finance contains the financial reporting use cases.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/bakehouse/backend/internal/domain/valueobject"
)

// GetExpenseCompositionUseCase breaks period expenses down by category.
type GetExpenseCompositionUseCase struct {
	repo Repository
	now  func() time.Time
}

// NewGetExpenseCompositionUseCase creates a new GetExpenseCompositionUseCase instance.
func NewGetExpenseCompositionUseCase(repo Repository) *GetExpenseCompositionUseCase {
	return &GetExpenseCompositionUseCase{
		repo: repo,
		now:  time.Now,
	}
}

// Execute groups expenses by their own category field, which is already a
// display label, and computes each category's share of the period total.
func (uc *GetExpenseCompositionUseCase) Execute(ctx context.Context, input GetCompositionInput) ([]CompositionEntry, error) {
	period, err := valueobject.ParsePeriod(input.StartDate, input.EndDate, uc.now())
	if err != nil {
		return nil, err
	}

	expenses, err := uc.repo.Expenses(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	acc := newCompositionAccumulator()
	for _, expense := range expenses {
		acc.add(expense.Category, expense.Amount)
	}

	return acc.entries(NoExpenseLabel), nil
}
