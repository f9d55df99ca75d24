package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// ValueSchema generates the schema of a Go value, for bodies that carry no
// rules such as responses.
func ValueSchema(value any) (*openapi3.SchemaRef, error) {
	return openapi3gen.NewSchemaRefForValue(value, nil)
}

// MustValueSchema is like [ValueSchema] but panics on error.
func MustValueSchema(value any) *openapi3.SchemaRef {
	ref, err := ValueSchema(value)
	if err != nil {
		panic(err)
	}
	return ref
}
