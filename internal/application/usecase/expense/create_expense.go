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

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	ExpenseDate *time.Time // defaults to now
	Category    string
	Amount      decimal.Decimal
	Note        string
	CreatedBy   string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	now         func() time.Time
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
}

// Execute validates and persists a new expense record.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if input.Category == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseCategory,
			"expense category is required",
			domainerror.ErrMissingExpenseCategory,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNegativeExpenseAmount,
			"expense amount must not be negative",
			domainerror.ErrNegativeExpenseAmount,
		)
	}

	expenseDate := uc.now().UTC()
	if input.ExpenseDate != nil {
		expenseDate = *input.ExpenseDate
	}

	expense := entity.NewExpense(expenseDate, input.Category, input.Amount, input.Note, input.CreatedBy)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}
