package ruling

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationErrors is a map of keys to their validation errors.
// It is an alias for [validation.Errors] from ozzo-validation and implements
// the error interface with a JSON-friendly string representation.
type ValidationErrors = validation.Errors

// Err returns nil for a valid Result, otherwise a [ValidationErrors] with the
// messages of each key joined by "; ".
func (r *Result) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make(ValidationErrors, len(r.keys))
	for _, key := range r.keys {
		errs[key] = errors.New(strings.Join(r.messages[key], "; "))
	}
	return errs
}
