// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/domain/entity"
	"github.com/bakehouse/backend/internal/domain/valueobject"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	StartDate string // optional
	EndDate   string // optional
	Category  string // optional
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles listing expenses.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	now         func() time.Time
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
}

// Execute lists expenses, optionally scoped to a period and category.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	filter := adapter.ExpenseFilter{Category: input.Category}

	if input.StartDate != "" || input.EndDate != "" {
		period, err := valueobject.ParsePeriod(input.StartDate, input.EndDate, uc.now())
		if err != nil {
			return nil, err
		}
		filter.Period = &period
	}

	expenses, err := uc.expenseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}
