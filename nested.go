package ruling

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type nestedRule[T, S any] struct {
	field
	get   func(T) S
	inner Ruling[S]
	rules []Rule[S]
	err   validation.Error
}

// Nested returns a rule that validates an embedded object with inner and
// reports its failures under "key.innerKey". A nil embedded object is a single
// failure under key, and inner does not run.
func Nested[T, S any](sel Selector[T, S], inner Ruling[S], opts ...Option) Rule[T] {
	if inner == nil {
		panic(fmt.Sprintf("ruling: nested rule on %q has no inner ruling", sel.Name))
	}
	return &nestedRule[T, S]{
		field: newField("Nested", sel, opts),
		get:   sel.Get,
		inner: inner,
		err:   ErrInvalid,
	}
}

// NestedRules is like Nested with the inner rules evaluated as by
// [CreateRuling]. Unlike an opaque Ruling, the rules also document the nested
// object in [Schema].
func NestedRules[T, S any](sel Selector[T, S], rules []Rule[S], opts ...Option) Rule[T] {
	r := Nested(sel, CreateRuling(rules...), opts...).(*nestedRule[T, S])
	r.rules = rules
	return r
}

func (r *nestedRule[T, S]) Evaluate(obj T) []Outcome {
	sub := r.get(obj)
	if isNil(sub) {
		return []Outcome{r.fail(r.err, nil)}
	}
	res := r.inner(sub)
	if res.Valid() {
		return []Outcome{r.pass()}
	}
	outcomes := make([]Outcome, 0, len(res.keys))
	for _, key := range res.keys {
		for _, msg := range res.messages[key] {
			outcomes = append(outcomes, Fail(r.key+"."+key, msg))
		}
	}
	return outcomes
}

// Describe marks the nested object as required, since a nil one fails.
func (r *nestedRule[T, S]) Describe(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	markRequired(schema, name)
	return nil
}

func (r *nestedRule[T, S]) propertySchema() (*openapi3.SchemaRef, error) {
	if r.rules == nil {
		return typeSchema(r.typ)
	}
	return Schema(r.rules...)
}
