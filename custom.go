package ruling

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type checkRule[T, V any] struct {
	field
	get  func(T) V
	pred func(V) bool
	err  validation.Error
}

// Check returns a rule that uses pred for validation and err as its default
// message and documentation. A nil err reports [ErrInvalid].
func Check[T, V any](sel Selector[T, V], pred func(V) bool, err validation.Error, opts ...Option) Rule[T] {
	if pred == nil {
		panic("ruling: check rule on " + sel.Name + " has no predicate")
	}
	if err == nil {
		err = ErrInvalid
	}
	return &checkRule[T, V]{
		field: newField(err.Code(), sel, opts),
		get:   sel.Get,
		pred:  pred,
		err:   err,
	}
}

func (r *checkRule[T, V]) Evaluate(obj T) []Outcome {
	if r.pred(r.get(obj)) {
		return []Outcome{r.pass()}
	}
	return []Outcome{r.fail(r.err, r.err.Params())}
}

func (r *checkRule[T, V]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, render(r.err, r.err.Params()))
	return nil
}
