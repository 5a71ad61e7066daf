// Package error defines domain-specific errors for the bakery back-office.
package error

import "errors"

// Finance domain errors.
var (
	// ErrInvalidDateFormat is returned when a supplied date string cannot be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidPeriod is returned when a period's end precedes its start.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidMonth is returned when a month parameter is outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrStoreUnavailable is returned when the record store fails to answer.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// FinanceErrorCode defines error codes for finance errors.
// Format: FIN-XXYYYY where XX is category and YYYY is specific error.
type FinanceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateFormat FinanceErrorCode = "FIN-010001"
	ErrCodeInvalidPeriod     FinanceErrorCode = "FIN-010002"
	ErrCodeInvalidMonth      FinanceErrorCode = "FIN-010003"

	// Internal errors (99XXXX)
	ErrCodeStoreUnavailable FinanceErrorCode = "FIN-990001"
)

// FinanceError represents a finance error with code and message.
type FinanceError struct {
	Code    FinanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FinanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FinanceError) Unwrap() error {
	return e.Err
}

// NewFinanceError creates a new FinanceError with the given code and message.
func NewFinanceError(code FinanceErrorCode, message string, err error) *FinanceError {
	return &FinanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
