package ruling

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Bounds configures a [Compare] rule. Absent (nil) bounds are not checked;
// at least one must be set.
type Bounds struct {
	GreaterThan          Bound
	GreaterThanOrEqualTo Bound
	LessThan             Bound
	LessThanOrEqualTo    Bound
}

type comparisonOp int

const (
	opGreaterThan comparisonOp = iota
	opGreaterThanOrEqualTo
	opLessThan
	opLessThanOrEqualTo
)

func (op comparisonOp) holds(c int) bool {
	switch op {
	case opGreaterThan:
		return c > 0
	case opGreaterThanOrEqualTo:
		return c >= 0
	case opLessThan:
		return c < 0
	default:
		return c <= 0
	}
}

type comparison struct {
	op    comparisonOp
	bound Bound
	err   validation.Error
}

// comparisons lists the set bounds in evaluation order, with the message each
// reports.
func (b Bounds) comparisons() []comparison {
	all := []comparison{
		{opGreaterThan, b.GreaterThan, ErrGreaterThan},
		{opGreaterThanOrEqualTo, b.GreaterThanOrEqualTo, ErrGreaterThanOrEqualTo},
		{opLessThan, b.LessThan, ErrLessThan},
		{opLessThanOrEqualTo, b.LessThanOrEqualTo, ErrLessThanOrEqualTo},
	}
	set := make([]comparison, 0, len(all))
	for _, c := range all {
		if c.bound != nil {
			set = append(set, c)
		}
	}
	return set
}

type compareRule[T, V any] struct {
	field
	get         func(T) V
	comparisons []comparison
}

// Compare returns a rule that orders the selected value against up to four
// bounds, checked in the order greater than, greater than or equal to, less
// than, less than or equal to. The first bound that does not hold is the only
// one reported. A nil value or a nil bound never holds.
//
// Integers, unsigned integers and floats compare within their own kind, as
// decided by the bound; strings compare lexically; values with a
// Compare(other) int method (time.Time) use it. A bound of another type
// returns [ErrBoundType].
func Compare[T, V any](sel Selector[T, V], bounds Bounds, opts ...Option) (Rule[T], error) {
	comparisons := bounds.comparisons()
	if len(comparisons) == 0 {
		return nil, fmt.Errorf("compare %q: %w", sel.Name, ErrNoBound)
	}
	for _, c := range comparisons {
		if err := checkBound[T, V](c.bound); err != nil {
			return nil, fmt.Errorf("compare %q: %w", sel.Name, err)
		}
	}
	return &compareRule[T, V]{
		field:       newField("Compare", sel, opts),
		get:         sel.Get,
		comparisons: comparisons,
	}, nil
}

// MustCompare is like Compare but panics when the bounds are unusable.
func MustCompare[T, V any](sel Selector[T, V], bounds Bounds, opts ...Option) Rule[T] {
	r, err := Compare(sel, bounds, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// GreaterThan returns a rule that checks the selected value is greater than
// other. A nil other always fails.
func GreaterThan[T, V any](sel Selector[T, V], other Bound, opts ...Option) Rule[T] {
	return MustCompare(sel, Bounds{GreaterThan: orNull(other)}, opts...)
}

// GreaterThanOrEqualTo returns a rule that checks the selected value is
// greater than or equal to other. A nil other always fails.
func GreaterThanOrEqualTo[T, V any](sel Selector[T, V], other Bound, opts ...Option) Rule[T] {
	return MustCompare(sel, Bounds{GreaterThanOrEqualTo: orNull(other)}, opts...)
}

// LessThan returns a rule that checks the selected value is less than other.
// A nil other always fails.
func LessThan[T, V any](sel Selector[T, V], other Bound, opts ...Option) Rule[T] {
	return MustCompare(sel, Bounds{LessThan: orNull(other)}, opts...)
}

// LessThanOrEqualTo returns a rule that checks the selected value is less than
// or equal to other. A nil other always fails.
func LessThanOrEqualTo[T, V any](sel Selector[T, V], other Bound, opts ...Option) Rule[T] {
	return MustCompare(sel, Bounds{LessThanOrEqualTo: orNull(other)}, opts...)
}

func (r *compareRule[T, V]) Evaluate(obj T) []Outcome {
	value := r.get(obj)
	for _, c := range r.comparisons {
		other := c.bound.resolve(obj)
		if n, ok := compareValues(value, other); !ok || !c.op.holds(n) {
			return []Outcome{r.fail(c.err, map[string]any{"bound": display(other)})}
		}
	}
	return []Outcome{r.pass()}
}

// Describe documents fixed numeric bounds as minimum/maximum and other fixed
// bounds in the description.
func (r *compareRule[T, V]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	for _, c := range r.comparisons {
		v, ok := fixedValue(c.bound)
		if !ok {
			continue
		}
		f, err := getFloat(v)
		if err != nil {
			appendDescription(ref, render(c.err, map[string]any{"bound": display(v)}))
			continue
		}
		switch c.op {
		case opGreaterThan:
			ref.Value.Min = &f
			ref.Value.ExclusiveMin = true
		case opGreaterThanOrEqualTo:
			ref.Value.Min = &f
		case opLessThan:
			ref.Value.Max = &f
			ref.Value.ExclusiveMax = true
		case opLessThanOrEqualTo:
			ref.Value.Max = &f
		}
	}
	return nil
}
