package ruling

import (
	"fmt"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
)

type eachRule[T, E any] struct {
	field
	get   func(T) []E
	inner Ruling[E]
	rules []Rule[E]
}

// Each returns a rule that validates every element of the selected slice with
// inner. Failures are reported under "key[i]" when the inner key is empty, as
// with rules on the element itself, and "key[i].innerKey" otherwise. A nil
// element reports the null-input message under "key[i]".
func Each[T, E any](sel Selector[T, []E], inner Ruling[E], opts ...Option) Rule[T] {
	if inner == nil {
		panic(fmt.Sprintf("ruling: each rule on %q has no inner ruling", sel.Name))
	}
	return &eachRule[T, E]{
		field: newField("Each", sel, opts),
		get:   sel.Get,
		inner: inner,
	}
}

// EachRules is like Each with the inner rules evaluated as by [CreateRuling].
// Rules selecting the element itself should use the empty name:
//
//	tag := ruling.Select("", func(s string) string { return s })
//	ruling.EachRules(tags, []ruling.Rule[string]{ruling.Required(tag)})
func EachRules[T, E any](sel Selector[T, []E], rules []Rule[E], opts ...Option) Rule[T] {
	r := Each(sel, CreateRuling(rules...), opts...).(*eachRule[T, E])
	r.rules = rules
	return r
}

func (r *eachRule[T, E]) Evaluate(obj T) []Outcome {
	var outcomes []Outcome
	for i, e := range r.get(obj) {
		res := r.inner(e)
		prefix := r.key + "[" + strconv.Itoa(i) + "]"
		for _, key := range res.keys {
			k := prefix
			if key != "" {
				k += "." + key
			}
			for _, msg := range res.messages[key] {
				outcomes = append(outcomes, Fail(k, msg))
			}
		}
	}
	if len(outcomes) == 0 {
		return []Outcome{r.pass()}
	}
	return outcomes
}

func (r *eachRule[T, E]) Describe(string, *openapi3.Schema, *openapi3.SchemaRef) error {
	return nil
}

// propertySchema documents the items with the inner rules. Rules on the
// element itself (empty key) constrain the item schema directly.
func (r *eachRule[T, E]) propertySchema() (*openapi3.SchemaRef, error) {
	ref, err := typeSchema(r.typ)
	if err != nil || r.rules == nil {
		return ref, err
	}
	items, err := Schema(r.rules...)
	if err != nil {
		return nil, err
	}
	if self, ok := items.Value.Properties[""]; ok {
		ref.Value.Items = self
	} else if len(items.Value.Properties) > 0 {
		ref.Value.Items = items
	}
	return ref, nil
}
