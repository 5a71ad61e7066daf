// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/bakehouse/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Date     string  `json:"date"`
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Note     string  `json:"note"`
}

// UpdateExpenseRequest represents the request body for an expense update.
// Absent fields leave the stored value untouched.
type UpdateExpenseRequest struct {
	Date     *string  `json:"date"`
	Category *string  `json:"category"`
	Amount   *float64 `json:"amount"`
	Note     *string  `json:"note"`
}

// ExpenseResponse represents an expense in a response body.
type ExpenseResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Note      string  `json:"note"`
	CreatedBy string  `json:"createdBy"`
}

// ToExpenseResponse converts a domain Expense to its DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        expense.ID,
		Date:      expense.ExpenseDate.Format("2006-01-02"),
		Category:  expense.Category,
		Amount:    expense.Amount.InexactFloat64(),
		Note:      expense.Note,
		CreatedBy: expense.CreatedBy,
	}
}

// ToExpensesResponse converts a list of domain Expenses to their DTO form.
func ToExpensesResponse(expenses []*entity.Expense) []ExpenseResponse {
	result := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		result[i] = ToExpenseResponse(expense)
	}
	return result
}

// ExpenseCategoriesResponse lists the recommended expense categories.
type ExpenseCategoriesResponse struct {
	Categories []string `json:"categories"`
}
