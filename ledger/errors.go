package ledger

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Store implementations and the Service.
var (
	// ErrNotFound means the referenced row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied means the row exists but belongs to another owner.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrConflict means the row would collide with an existing one, such
	// as a second bank with the same name under the same owner.
	ErrConflict = errors.New("already exists")
)

// ValidationError reports a rejected input field before any store call is
// made; a mutation that fails validation has no effect on any balance.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErrorf(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
