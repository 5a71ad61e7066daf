// Package error defines domain-specific errors for the bakery back-office.
package error

import "errors"

// Order domain errors.
var (
	// ErrOrderNotFound is returned when an order is not found in the system.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidOrderStatus is returned when a status transition targets an unknown state.
	ErrInvalidOrderStatus = errors.New("invalid order status")

	// ErrOrderHasNoItems is returned when an order is created without items.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")

	// ErrNegativeOrderAmount is returned when a monetary field is negative.
	ErrNegativeOrderAmount = errors.New("order amounts must not be negative")

	// ErrAllocationExhausted is returned when a day's sequence counter would
	// overflow the identifier's designed width contract.
	ErrAllocationExhausted = errors.New("daily order sequence exhausted")

	// ErrAllocationConflict is returned when two allocations collide on the
	// same order number. Transient; retried once by the caller.
	ErrAllocationConflict = errors.New("order number allocation conflict")
)

// OrderErrorCode defines error codes for order errors.
// Format: ORD-XXYYYY where XX is category and YYYY is specific error.
type OrderErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeOrderNotFound       OrderErrorCode = "ORD-010001"
	ErrCodeInvalidOrderStatus  OrderErrorCode = "ORD-010002"
	ErrCodeOrderHasNoItems     OrderErrorCode = "ORD-010003"
	ErrCodeNegativeOrderAmount OrderErrorCode = "ORD-010004"

	// Allocation errors (02XXXX)
	ErrCodeAllocationExhausted OrderErrorCode = "ORD-020001"
	ErrCodeAllocationConflict  OrderErrorCode = "ORD-020002"
)

// OrderError represents an order error with code and message.
type OrderError struct {
	Code    OrderErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OrderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OrderError) Unwrap() error {
	return e.Err
}

// NewOrderError creates a new OrderError with the given code and message.
func NewOrderError(code OrderErrorCode, message string, err error) *OrderError {
	return &OrderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
