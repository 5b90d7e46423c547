// errors/bypass_errors.go
package errors

import "errors"

var (
	ErrBypassRequestNotFound = errors.New("bypass request not found")
	ErrInvalidBypassData     = errors.New("invalid bypass data")
	ErrBypassRequestDecided  = errors.New("bypass request already decided")
)

// NewBypassValidationError returns a ValidationError that matches ErrInvalidBypassData.
func NewBypassValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Err: ErrInvalidBypassData}
}
