package ruling

import (
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type inRule[T any, V comparable] struct {
	field
	get    func(T) V
	values []V
	err    validation.Error
}

// In returns a rule that checks the selected value is one of values.
func In[T any, V comparable](sel Selector[T, V], values []V, opts ...Option) Rule[T] {
	return &inRule[T, V]{
		field:  newField("In", sel, opts),
		get:    sel.Get,
		values: slices.Clone(values),
		err:    ErrIn,
	}
}

func (r *inRule[T, V]) Evaluate(obj T) []Outcome {
	if slices.Contains(r.values, r.get(obj)) {
		return []Outcome{r.pass()}
	}
	return []Outcome{r.fail(r.err, map[string]any{"values": r.list()})}
}

func (r *inRule[T, V]) list() string {
	want := make([]string, len(r.values))
	for i := range r.values {
		want[i] = fmt.Sprintf("'%v'", r.values[i])
	}
	return strings.Join(want, ", ")
}

func (r *inRule[T, V]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Enum = make([]any, len(r.values))
	for i, v := range r.values {
		ref.Value.Enum[i] = v
	}
	return nil
}
