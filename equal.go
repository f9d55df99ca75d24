package ruling

import (
	"fmt"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type equalRule[T, V any] struct {
	field
	get   func(T) V
	other Bound
	equal bool
	err   validation.Error
}

// EqualTo returns a rule that checks the selected value equals other. A nil
// value or a nil other always fails. It panics with [ErrBoundType] when other
// has another type than the selected value.
func EqualTo[T, V any](sel Selector[T, V], other Bound, opts ...Option) Rule[T] {
	return newEqualRule("EqualTo", sel, other, true, ErrEqualTo, opts)
}

// NotEqualTo returns a rule that checks the selected value differs from
// other. A nil value or a nil other always fails. It panics like [EqualTo].
func NotEqualTo[T, V any](sel Selector[T, V], other Bound, opts ...Option) Rule[T] {
	return newEqualRule("NotEqualTo", sel, other, false, ErrNotEqualTo, opts)
}

func newEqualRule[T, V any](kind string, sel Selector[T, V], other Bound, equal bool, e validation.Error, opts []Option) *equalRule[T, V] {
	other = orNull(other)
	if err := checkBound[T, V](other); err != nil {
		panic(fmt.Errorf("%s %q: %w", kind, sel.Name, err))
	}
	return &equalRule[T, V]{
		field: newField(kind, sel, opts),
		get:   sel.Get,
		other: other,
		equal: equal,
		err:   e,
	}
}

func (r *equalRule[T, V]) Evaluate(obj T) []Outcome {
	other := r.other.resolve(obj)
	a, aNil := validation.Indirect(r.get(obj))
	b, bNil := validation.Indirect(other)
	if aNil || bNil || reflect.DeepEqual(a, b) != r.equal {
		return []Outcome{r.fail(r.err, map[string]any{"other": display(other)})}
	}
	return []Outcome{r.pass()}
}

// Describe documents a fixed EqualTo as a single-value enum.
func (r *equalRule[T, V]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	v, ok := fixedValue(r.other)
	if !ok {
		return nil
	}
	if r.equal {
		ref.Value.Enum = []any{v}
		return nil
	}
	appendDescription(ref, render(r.err, map[string]any{"other": display(v)}))
	return nil
}
