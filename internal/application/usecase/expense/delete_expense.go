// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/bakehouse/backend/internal/application/adapter"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
)

// DeleteExpenseUseCase handles expense deletion.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute removes the expense.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, id int64) error {
	if err := uc.expenseRepo.Delete(ctx, id); err != nil {
		var expenseErr *domainerror.ExpenseError
		if errors.As(err, &expenseErr) {
			return err
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
