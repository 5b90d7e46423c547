// errors/access_errors.go
package errors

import (
	"errors"
	"fmt"
)

var ErrAccessDenied = errors.New("access denied by policy")

// PolicyDeniedError carries the deny reason of the predicate that failed.
type PolicyDeniedError struct {
	Reason string
}

func (e *PolicyDeniedError) Error() string {
	return fmt.Sprintf("access denied: %s", e.Reason)
}

func (e *PolicyDeniedError) Unwrap() error {
	return ErrAccessDenied
}
