package ruling

import "errors"

var (
	// ErrNilObject is returned by Validate when the object under validation is nil.
	ErrNilObject = errors.New("object is nil")

	// ErrNoBound is returned when a Compare or Length rule is built without any bound.
	ErrNoBound = errors.New("no bound provided")

	// ErrBoundType is returned when a Compare or EqualTo bound cannot be compared
	// with the selected value: a fixed value of another type, or a computed
	// bound that reads another object type or returns another value type.
	ErrBoundType = errors.New("bound type does not match value")

	// ErrNegativeLength is returned when a Length rule is built with a negative bound.
	ErrNegativeLength = errors.New("length bound must not be negative")

	// ErrInvalidPattern is returned when a Format pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnknownMessage is returned when a message code is not in the message table.
	ErrUnknownMessage = errors.New("unknown message code")
)
