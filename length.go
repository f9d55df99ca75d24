package ruling

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LengthBounds configures a [Length] rule. Nil bounds are not checked; at
// least one must be set. Use [Int] to fill them.
type LengthBounds struct {
	Exact *int
	Min   *int
	Max   *int
}

// Int returns a pointer to n.
func Int(n int) *int {
	return &n
}

type lengthOp int

const (
	lengthExact lengthOp = iota
	lengthMin
	lengthMax
)

type lengthCheck struct {
	op        lengthOp
	n         int
	stringErr validation.Error
	itemsErr  validation.Error
}

func (c lengthCheck) holds(n int) bool {
	switch c.op {
	case lengthExact:
		return n == c.n
	case lengthMin:
		return n >= c.n
	default:
		return n <= c.n
	}
}

type lengthRule[T, V any] struct {
	field
	get    func(T) V
	checks []lengthCheck
}

// Length returns a rule that checks the length of the selected string (in
// characters) or slice, map or array (in items), in the order exact, min, max.
// The first bound that does not hold is the only one reported. A nil value, or
// one that has no length, fails the first bound.
func Length[T, V any](sel Selector[T, V], bounds LengthBounds, opts ...Option) (Rule[T], error) {
	var checks []lengthCheck
	if bounds.Exact != nil {
		checks = append(checks, lengthCheck{lengthExact, *bounds.Exact, ErrExactLengthString, ErrExactLengthItems})
	}
	if bounds.Min != nil {
		checks = append(checks, lengthCheck{lengthMin, *bounds.Min, ErrMinLengthString, ErrMinLengthItems})
	}
	if bounds.Max != nil {
		checks = append(checks, lengthCheck{lengthMax, *bounds.Max, ErrMaxLengthString, ErrMaxLengthItems})
	}
	if len(checks) == 0 {
		return nil, fmt.Errorf("length %q: %w", sel.Name, ErrNoBound)
	}
	for _, c := range checks {
		if c.n < 0 {
			return nil, fmt.Errorf("length %q: %w: %d", sel.Name, ErrNegativeLength, c.n)
		}
	}
	return &lengthRule[T, V]{
		field:  newField("Length", sel, opts),
		get:    sel.Get,
		checks: checks,
	}, nil
}

// MustLength is like Length but panics on an invalid configuration.
func MustLength[T, V any](sel Selector[T, V], bounds LengthBounds, opts ...Option) Rule[T] {
	r, err := Length(sel, bounds, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *lengthRule[T, V]) Evaluate(obj T) []Outcome {
	n, isString, ok := lengthOf(r.get(obj))
	if !ok {
		isString = isStringType(r.typ)
	}
	for _, c := range r.checks {
		if !ok || !c.holds(n) {
			err := c.itemsErr
			if isString {
				err = c.stringErr
			}
			return []Outcome{r.fail(err, map[string]any{"length": c.n})}
		}
	}
	return []Outcome{r.pass()}
}

// lengthOf counts the characters of a string or the items of a slice, map or
// array. ok is false for nil and for values without a length.
func lengthOf(v any) (n int, isString, ok bool) {
	v, isNil := validation.Indirect(v)
	if isNil {
		return 0, false, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return utf8.RuneCountInString(rv.String()), true, true
	}
	n, err := validation.LengthOfValue(v)
	if err != nil {
		return 0, false, false
	}
	return n, false, true
}

func isStringType(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.String
}

func (r *lengthRule[T, V]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	for _, c := range r.checks {
		describeLength(ref, c.op, c.n)
	}
	return nil
}

func describeLength(ref *openapi3.SchemaRef, op lengthOp, n int) {
	u := uint64(n)
	switch {
	case isStringSchema(ref):
		if op != lengthMax {
			ref.Value.MinLength = u
		}
		if op != lengthMin {
			ref.Value.MaxLength = &u
		}
	case isArraySchema(ref):
		if op != lengthMax {
			ref.Value.MinItems = u
		}
		if op != lengthMin {
			ref.Value.MaxItems = &u
		}
	case isObjectSchema(ref):
		if op != lengthMax {
			ref.Value.MinProps = u
		}
		if op != lengthMin {
			ref.Value.MaxProps = &u
		}
	}
}
