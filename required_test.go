package ruling_test

import (
	"testing"

	v "github.com/Gobd/ruling"
	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name  string
		rule  v.Rule[*fixture]
		obj   *fixture
		valid bool
	}{
		{"string", v.Required(stringValue), &fixture{StringValue: "foo"}, true},
		{"empty string", v.Required(stringValue), &fixture{}, false},
		{"blank string", v.Required(stringValue), &fixture{StringValue: "   "}, false},
		{"nil string pointer", v.Required(stringPtr), &fixture{}, false},
		{"pointer to empty string", v.Required(stringPtr), &fixture{StringPtr: ptr("")}, false},
		{"pointer to string", v.Required(stringPtr), &fixture{StringPtr: ptr("x")}, true},
		{"zero int", v.Required(intValue), &fixture{}, true},
		{"nil int pointer", v.Required(otherValue), &fixture{}, false},
		{"pointer to zero", v.Required(otherValue), &fixture{OtherValue: ptr(0)}, true},
		{"nil slice", v.Required(items), &fixture{}, false},
		{"empty slice", v.Required(items), &fixture{Items: []string{}}, false},
		{"slice", v.Required(items), &fixture{Items: []string{""}}, true},
		{"empty map", v.Required(tags), &fixture{Tags: map[string]string{}}, false},
		{"map", v.Required(tags), &fixture{Tags: map[string]string{"a": ""}}, true},
		{"nil struct pointer", v.Required(nestedValue), &fixture{}, false},
		{"struct pointer", v.Required(nestedValue), &fixture{NestedValue: &inner{}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.MustValidate(tt.obj, tt.rule)
			assert.Equal(t, tt.valid, res.Valid())
			if !tt.valid {
				assert.Len(t, res.Keys(), 1)
				assert.Equal(t, []string{"is required"}, res.Messages(res.Keys()[0]))
			}
		})
	}
}
