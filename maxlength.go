package ruling

import (
	"reflect"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type maxLengthRule[T, V any] struct {
	field
	get func(T) V
	max int
	err validation.Error
}

// MaxLength returns a rule that checks the selected string has at most max
// characters. A nil value or a value that is not a string fails.
func MaxLength[T, V any](sel Selector[T, V], max int, opts ...Option) Rule[T] {
	return &maxLengthRule[T, V]{
		field: newField("MaxLength", sel, opts),
		get:   sel.Get,
		max:   max,
		err:   ErrMaxLength,
	}
}

func (r *maxLengthRule[T, V]) Evaluate(obj T) []Outcome {
	v, isNil := validation.Indirect(r.get(obj))
	if !isNil {
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.String && utf8.RuneCountInString(rv.String()) <= r.max {
			return []Outcome{r.pass()}
		}
	}
	return []Outcome{r.fail(r.err, map[string]any{"length": r.max})}
}

func (r *maxLengthRule[T, V]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.max >= 0 && isStringSchema(ref) {
		describeLength(ref, lengthMax, r.max)
	}
	return nil
}
