// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecommendedExpenseCategories is the suggested set of expense categories.
// The category field itself is free-form; these are offered to the UI.
var RecommendedExpenseCategories = []string{
	"Ingredient purchases",
	"Labor",
	"Utilities",
	"Equipment maintenance",
	"Rent",
	"Other",
}

// Expense represents a recorded business expense. Expenses have no status
// concept and always contribute to financial views.
type Expense struct {
	ID          int64
	ExpenseDate time.Time
	Category    string
	Amount      decimal.Decimal
	Note        string
	CreatedBy   string
	CreatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(expenseDate time.Time, category string, amount decimal.Decimal, note, createdBy string) *Expense {
	return &Expense{
		ExpenseDate: expenseDate,
		Category:    category,
		Amount:      amount,
		Note:        note,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
	}
}
