// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/domain/entity"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
)

// UpdateExpenseInput carries the mutable expense fields; nil pointers leave
// the stored value untouched.
type UpdateExpenseInput struct {
	ID          int64
	ExpenseDate *time.Time
	Category    *string
	Amount      *decimal.Decimal
	Note        *string
}

// UpdateExpenseOutput represents the output of an expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense updates.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute applies the provided fields to the stored expense.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}
	if input.Category != nil {
		if *input.Category == "" {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeMissingExpenseCategory,
				"expense category is required",
				domainerror.ErrMissingExpenseCategory,
			)
		}
		expense.Category = *input.Category
	}
	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeNegativeExpenseAmount,
				"expense amount must not be negative",
				domainerror.ErrNegativeExpenseAmount,
			)
		}
		expense.Amount = *input.Amount
	}
	if input.Note != nil {
		expense.Note = *input.Note
	}

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: expense}, nil
}
