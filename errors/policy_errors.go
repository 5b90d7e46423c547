// errors/policy_errors.go
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrPolicyConfigNotFound = errors.New("policy config not found")
	ErrDatabaseOperation    = errors.New("database operation failed")
	ErrInvalidPolicyData    = errors.New("invalid policy data")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidPagination    = errors.New("invalid pagination parameters")
)

// ValidationError names the input field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewPolicyValidationError returns a ValidationError that matches ErrInvalidPolicyData.
func NewPolicyValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Err: ErrInvalidPolicyData}
}
