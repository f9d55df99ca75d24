package ruling

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// appendDescription adds desc as a new sentence of the description of ref.
func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if desc == "" {
		return
	}
	d := ref.Value.Description
	if d != "" {
		d = strings.TrimRight(d, " ")
		if !strings.HasSuffix(d, ".") {
			d += "."
		}
		d += " "
	}
	ref.Value.Description = d + desc
}

// markRequired lists name in the required properties of schema once.
func markRequired(schema *openapi3.Schema, name string) {
	for _, r := range schema.Required {
		if r == name {
			return
		}
	}
	schema.Required = append(schema.Required, name)
}

var floatType = reflect.TypeOf(float64(0))

func getFloat(unk any) (float64, error) {
	v := reflect.Indirect(reflect.ValueOf(unk))
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return v.Convert(floatType).Float(), nil
	}
	return 0, fmt.Errorf("cannot convert %T to float64", unk)
}

// isStringSchema and isArraySchema tell which length keywords apply to ref.
func isStringSchema(ref *openapi3.SchemaRef) bool {
	return ref.Value.Type != nil && ref.Value.Type.Is(openapi3.TypeString)
}

func isArraySchema(ref *openapi3.SchemaRef) bool {
	return ref.Value.Type != nil && ref.Value.Type.Is(openapi3.TypeArray)
}

func isObjectSchema(ref *openapi3.SchemaRef) bool {
	return ref.Value.Type != nil && ref.Value.Type.Is(openapi3.TypeObject)
}
