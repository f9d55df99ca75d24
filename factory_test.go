package ruling_test

import (
	"testing"

	v "github.com/Gobd/ruling"
	"github.com/stretchr/testify/assert"
)

func failing(key, msg string) v.Rule[*fixture] {
	return v.RuleFunc[*fixture](func(*fixture) v.Outcome { return v.Fail(key, msg) })
}

func TestCreateRuling(t *testing.T) {
	r := v.CreateRuling(failing("A", "a failed"), failing("B", "b failed"))
	res := r(&fixture{})
	assert.Equal(t, []string{"A", "B"}, res.Keys())
	assert.Equal(t, []string{"a failed"}, res.Messages("A"))
	assert.Equal(t, []string{"b failed"}, res.Messages("B"))
}

func TestCreateRulingFailFast(t *testing.T) {
	var calls int
	r := v.CreateRulingFailFast(failing("A", "a failed"), failing("B", "b failed"), counting(&calls))
	res := r(&fixture{})
	assert.Equal(t, []string{"A"}, res.Keys())
	assert.Equal(t, []string{"a failed"}, res.Messages("A"))
	assert.Zero(t, calls)
}

func TestCreateRulingFailFastKeepsStructuralFailures(t *testing.T) {
	r := v.CreateRulingFailFast(
		v.NestedRules(nestedValue, []v.Rule[*inner]{
			v.Required(innerString),
			v.GreaterThan(innerNumber, v.Value(0)),
		}),
		v.Required(stringValue),
	)
	res := r(&fixture{NestedValue: &inner{}})
	assert.Equal(t, []string{"NestedValue.StringValue", "NestedValue.Number"}, res.Keys())
}

func TestCreateRulingFailFastPassingRulesRun(t *testing.T) {
	var calls int
	r := v.CreateRulingFailFast(counting(&calls), failing("A", "a failed"), counting(&calls))
	r(&fixture{})
	assert.Equal(t, 1, calls)
}

func TestRulingsNilObject(t *testing.T) {
	var calls int
	sub := v.CreateRuling(counting(&calls))
	rulings := map[string]v.Ruling[*fixture]{
		"create":           v.CreateRuling(counting(&calls)),
		"create fail fast": v.CreateRulingFailFast(counting(&calls)),
		"combine":          v.CombineRulings(sub),
		"combine fast":     v.CombineRulingsFailFast(sub),
	}
	for name, r := range rulings {
		t.Run(name, func(t *testing.T) {
			res := r(nil)
			assert.False(t, res.Valid())
			assert.True(t, res.IsNullInput())
			assert.Equal(t, []string{""}, res.Keys())
			assert.Equal(t, []string{"input is null"}, res.Messages(""))
		})
	}
	assert.Zero(t, calls)
}

func TestCombineRulings(t *testing.T) {
	a := v.CreateRuling(failing("A", "first"), failing("B", "b failed"))
	b := v.CreateRuling(failing("A", "second"), failing("C", "c failed"))

	res := v.CombineRulings(a, b)(&fixture{})
	assert.Equal(t, []string{"A", "B", "C"}, res.Keys())
	assert.Equal(t, []string{"first", "second"}, res.Messages("A"))

	res = v.CombineRulingsFailFast(a, b)(&fixture{})
	assert.Equal(t, []string{"A", "B"}, res.Keys())
	assert.Equal(t, []string{"first"}, res.Messages("A"))
}

func TestCombineRulingsFailFastSkipsAfterInvalid(t *testing.T) {
	var calls int
	valid := v.CreateRuling(counting(&calls))
	invalid := v.CreateRuling(failing("A", "a failed"))

	res := v.CombineRulingsFailFast(valid, invalid, valid)(&fixture{})
	assert.Equal(t, []string{"A"}, res.Keys())
	assert.Equal(t, 1, calls)
}

func TestRulingAsRule(t *testing.T) {
	sub := v.CreateRuling(failing("A", "one"), failing("A", "two"))
	res := v.CreateRuling[*fixture](sub, v.Required(stringValue))(&fixture{})
	assert.Equal(t, []string{"A", "StringValue"}, res.Keys())
	assert.Equal(t, []string{"one", "two"}, res.Messages("A"))
}

func TestEmptyRuling(t *testing.T) {
	res := v.CreateRuling[*fixture]()(&fixture{})
	assert.True(t, res.Valid())
	assert.Empty(t, res.Errors())
}
