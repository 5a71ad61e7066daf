// Package error defines domain-specific errors for the bakery back-office.
package error

import "errors"

// Catalog domain errors.
var (
	// ErrBreadNotFound is returned when a bread is not found in the catalog.
	ErrBreadNotFound = errors.New("bread not found")

	// ErrCategoryNotFound is returned when a bread category is not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryExists is returned when a category with the given ID already exists.
	ErrCategoryExists = errors.New("category already exists")

	// ErrNegativePrice is returned when a bread price is negative.
	ErrNegativePrice = errors.New("price must not be negative")

	// ErrNegativeStock is returned when a stock count is negative.
	ErrNegativeStock = errors.New("stock must not be negative")
)

// CatalogErrorCode defines error codes for catalog errors.
// Format: CTL-XXYYYY where XX is category and YYYY is specific error.
type CatalogErrorCode string

const (
	ErrCodeBreadNotFound    CatalogErrorCode = "CTL-010001"
	ErrCodeCategoryNotFound CatalogErrorCode = "CTL-010002"
	ErrCodeCategoryExists   CatalogErrorCode = "CTL-010003"
	ErrCodeNegativePrice    CatalogErrorCode = "CTL-010004"
	ErrCodeNegativeStock    CatalogErrorCode = "CTL-010005"
)

// CatalogError represents a catalog error with code and message.
type CatalogError struct {
	Code    CatalogErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a new CatalogError with the given code and message.
func NewCatalogError(code CatalogErrorCode, message string, err error) *CatalogError {
	return &CatalogError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
