// Package error defines domain-specific errors for the bakery back-office.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrNegativeExpenseAmount is returned when an expense amount is negative.
	ErrNegativeExpenseAmount = errors.New("expense amount must not be negative")

	// ErrMissingExpenseCategory is returned when an expense has no category.
	ErrMissingExpenseCategory = errors.New("expense category is required")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	ErrCodeExpenseNotFound        ExpenseErrorCode = "EXP-010001"
	ErrCodeNegativeExpenseAmount  ExpenseErrorCode = "EXP-010002"
	ErrCodeMissingExpenseCategory ExpenseErrorCode = "EXP-010003"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
