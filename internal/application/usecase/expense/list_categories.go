// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/domain/entity"
)

// ListCategoriesUseCase reports the expense categories available for entry.
type ListCategoriesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(expenseRepo adapter.ExpenseRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{expenseRepo: expenseRepo}
}

// Execute lists the distinct categories recorded so far. A store with no
// expenses yet falls back to the recommended set.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]string, error) {
	categories, err := uc.expenseRepo.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}
	if len(categories) == 0 {
		return entity.RecommendedExpenseCategories, nil
	}
	return categories, nil
}
