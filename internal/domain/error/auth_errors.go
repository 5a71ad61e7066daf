// Package error defines domain-specific errors for the bakery back-office.
package error

import "errors"

// Auth domain errors.
var (
	// ErrUserNotFound is returned when a user account does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameExists is returned when registering an already-taken username.
	ErrUsernameExists = errors.New("username already exists")

	// ErrEmailExists is returned when registering an already-taken email.
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when username or password is wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountDisabled is returned when a disabled account attempts to log in.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrMissingToken is returned when no bearer token accompanies a request.
	ErrMissingToken = errors.New("authorization token is required")

	// ErrInvalidToken is returned when a bearer token fails validation.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrRateLimited is returned when login attempts exceed the allowed rate.
	ErrRateLimited = errors.New("too many attempts")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeUserNotFound       AuthErrorCode = "AUT-010001"
	ErrCodeUsernameExists     AuthErrorCode = "AUT-010002"
	ErrCodeEmailExists        AuthErrorCode = "AUT-010003"
	ErrCodeInvalidCredentials AuthErrorCode = "AUT-010004"
	ErrCodeAccountDisabled    AuthErrorCode = "AUT-010005"
	ErrCodeMissingToken       AuthErrorCode = "AUT-020001"
	ErrCodeInvalidToken       AuthErrorCode = "AUT-020002"
	ErrCodeRateLimited        AuthErrorCode = "AUT-030001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
