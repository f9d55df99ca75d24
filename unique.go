package ruling

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type uniqueRule[T, E any, K comparable] struct {
	field
	get func(T) []E
	key func(E) K
	err validation.Error
}

// Unique returns a rule that checks the selected slice holds no element twice.
func Unique[T any, E comparable](sel Selector[T, []E], opts ...Option) Rule[T] {
	return UniqueBy(sel, func(e E) E { return e }, opts...)
}

// UniqueBy is like Unique with elements told apart by key.
func UniqueBy[T, E any, K comparable](sel Selector[T, []E], key func(E) K, opts ...Option) Rule[T] {
	return &uniqueRule[T, E, K]{
		field: newField("Unique", sel, opts),
		get:   sel.Get,
		key:   key,
		err:   ErrUnique,
	}
}

func (r *uniqueRule[T, E, K]) Evaluate(obj T) []Outcome {
	elems := r.get(obj)
	seen := make(map[K]struct{}, len(elems))
	for _, e := range elems {
		k := r.key(e)
		if _, ok := seen[k]; ok {
			return []Outcome{r.fail(r.err, nil)}
		}
		seen[k] = struct{}{}
	}
	return []Outcome{r.pass()}
}

func (r *uniqueRule[T, E, K]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.UniqueItems = true
	return nil
}
