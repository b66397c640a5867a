package inventory

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a mutation or lookup targets an id that is not
// in the store. Deleting or updating a missing item is an error, not a no-op,
// so callers can tell the user instead of silently succeeding.
var ErrNotFound = errors.New("shirt not found")

// ValidationError reports a field that failed validation before reaching the
// store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
