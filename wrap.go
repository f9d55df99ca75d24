package ruling

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type wrapRule[T, V any] struct {
	field
	get  func(T) V
	rule validation.Rule
}

// Wrap runs an ozzo-validation rule on the selected value and reports its
// error text as the message:
//
//	Wrap(status, validation.In("draft", "published"))
//
// ozzo rules skip empty values; pair them with [Required] when a value must be
// present.
func Wrap[T, V any](sel Selector[T, V], rule validation.Rule, opts ...Option) Rule[T] {
	return &wrapRule[T, V]{
		field: newField("Wrap", sel, opts),
		get:   sel.Get,
		rule:  rule,
	}
}

func (r *wrapRule[T, V]) Evaluate(obj T) []Outcome {
	if err := r.rule.Validate(r.get(obj)); err != nil {
		return []Outcome{r.failText(err.Error())}
	}
	return []Outcome{r.pass()}
}

// Describe delegates to the wrapped rule when it documents itself.
func (r *wrapRule[T, V]) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if d, ok := r.rule.(Describer); ok {
		return d.Describe(name, schema, ref)
	}
	return nil
}
