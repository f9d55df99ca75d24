package ruling

import (
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// documented is implemented by the built-in rules: they know the key they
// report under and the type of the value they select.
type documented interface {
	Describer
	ruleKey() string
	valueType() reflect.Type
}

// propertySchemer is implemented by rules that build their own property
// schema, such as [NestedRules].
type propertySchemer interface {
	propertySchema() (*openapi3.SchemaRef, error)
}

// Schema documents rules as an OpenAPI object schema: one property per key,
// typed after the selected value and constrained by each rule's Describe.
// Rules that cannot document themselves (plain functions, rulings) are
// skipped.
func Schema[T any](rules ...Rule[T]) (*openapi3.SchemaRef, error) {
	schema := openapi3.NewObjectSchema()
	for _, rule := range rules {
		d, ok := rule.(documented)
		if !ok {
			continue
		}
		key := d.ruleKey()
		ref, ok := schema.Properties[key]
		if !ok {
			var err error
			if ps, isSchemer := rule.(propertySchemer); isSchemer {
				ref, err = ps.propertySchema()
			} else {
				ref, err = typeSchema(d.valueType())
			}
			if err != nil {
				return nil, err
			}
			schema.Properties[key] = ref
		}
		if err := d.Describe(key, schema, ref); err != nil {
			return nil, err
		}
	}
	return openapi3.NewSchemaRef("", schema), nil
}

// MustSchema is like Schema but panics on error.
func MustSchema[T any](rules ...Rule[T]) *openapi3.SchemaRef {
	ref, err := Schema(rules...)
	if err != nil {
		panic(err)
	}
	return ref
}

// typeSchema generates the schema of t. Interface types get an empty schema.
func typeSchema(t reflect.Type) (*openapi3.SchemaRef, error) {
	if t == nil || t.Kind() == reflect.Interface {
		return openapi3.NewSchemaRef("", openapi3.NewSchema()), nil
	}
	return openapi3gen.NewSchemaRefForValue(reflect.Zero(t).Interface(), nil)
}

// ResultSchema documents the JSON encoding of a [Result].
func ResultSchema() *openapi3.SchemaRef {
	messages := openapi3.NewArraySchema()
	messages.Items = openapi3.NewSchemaRef("", openapi3.NewStringSchema())

	errs := openapi3.NewObjectSchema()
	errs.Description = "failure messages by key, in the order the keys failed"
	errs.AdditionalProperties = openapi3.AdditionalProperties{
		Schema: openapi3.NewSchemaRef("", messages),
	}

	schema := openapi3.NewObjectSchema()
	schema.Properties["valid"] = openapi3.NewSchemaRef("", openapi3.NewBoolSchema())
	schema.Properties["errors"] = openapi3.NewSchemaRef("", errs)
	schema.Required = []string{"valid", "errors"}
	return openapi3.NewSchemaRef("", schema)
}
