package ruling

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// docRule never fails; it only changes the schema of its key.
type docRule[T any] struct {
	field
	describe func(ref *openapi3.SchemaRef)
}

func newDocRule[T, V any](kind string, sel Selector[T, V], describe func(*openapi3.SchemaRef)) Rule[T] {
	return &docRule[T]{field: newField(kind, sel, nil), describe: describe}
}

func (r *docRule[T]) Evaluate(T) []Outcome {
	return []Outcome{r.pass()}
}

func (r *docRule[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	r.describe(ref)
	return nil
}

// Default documents the value used when the selected field is omitted.
func Default[T, V any](sel Selector[T, V], value V) Rule[T] {
	return newDocRule("Default", sel, func(ref *openapi3.SchemaRef) {
		ref.Value.Default = value
	})
}

// Example documents an example value of the selected field.
func Example[T, V any](sel Selector[T, V], value V) Rule[T] {
	return newDocRule("Example", sel, func(ref *openapi3.SchemaRef) {
		ref.Value.Example = value
	})
}

// Deprecated documents the selected field as deprecated.
func Deprecated[T, V any](sel Selector[T, V]) Rule[T] {
	return newDocRule("Deprecated", sel, func(ref *openapi3.SchemaRef) {
		ref.Value.Deprecated = true
	})
}
