package ruling

import (
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type dateRule[T any] struct {
	field
	get    func(T) string
	layout string
	err    validation.Error
}

// Date returns a rule that checks the selected string parses with layout, as
// by [time.Parse]. The empty string is valid; pair with [Required] when the
// date must be present.
func Date[T any](sel Selector[T, string], layout string, opts ...Option) Rule[T] {
	return &dateRule[T]{
		field:  newField("Date", sel, opts),
		get:    sel.Get,
		layout: layout,
		err:    ErrDate,
	}
}

func (r *dateRule[T]) Evaluate(obj T) []Outcome {
	v := r.get(obj)
	if v == "" {
		return []Outcome{r.pass()}
	}
	if _, err := time.Parse(r.layout, v); err != nil {
		return []Outcome{r.fail(r.err, map[string]any{"layout": r.layout})}
	}
	return []Outcome{r.pass()}
}

// Describe uses the OpenAPI date formats for their layouts and the layout
// itself otherwise.
func (r *dateRule[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	switch r.layout {
	case time.DateOnly:
		ref.Value.Format = "date"
	case time.RFC3339, time.RFC3339Nano:
		ref.Value.Format = "date-time"
	default:
		ref.Value.Format = r.layout
	}
	return nil
}
