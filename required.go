package ruling

import (
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type requiredRule[T, V any] struct {
	field
	get func(T) V
	err validation.Error
}

// Required returns a rule that fails when the selected value is nil, a blank
// string, or an empty slice, map or array. Other values, including numeric
// zero and false, are valid.
func Required[T, V any](sel Selector[T, V], opts ...Option) Rule[T] {
	return &requiredRule[T, V]{
		field: newField("Required", sel, opts),
		get:   sel.Get,
		err:   ErrRequired,
	}
}

func (r *requiredRule[T, V]) Evaluate(obj T) []Outcome {
	if isBlank(r.get(obj)) {
		return []Outcome{r.fail(r.err, nil)}
	}
	return []Outcome{r.pass()}
}

func (r *requiredRule[T, V]) Describe(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	markRequired(schema, name)
	return nil
}

func isBlank(v any) bool {
	v, isNil := validation.Indirect(v)
	if isNil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	}
	return false
}
