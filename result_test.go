package ruling_test

import (
	"encoding/json"
	"testing"

	v "github.com/Gobd/ruling"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultAddError(t *testing.T) {
	r := v.NewResult()
	assert.True(t, r.Valid())

	r.AddError("b", "one")
	r.AddError("a", "two")
	r.AddError("b", "three")
	r.AddErrors("c", nil)

	assert.False(t, r.Valid())
	assert.Equal(t, []string{"b", "a"}, r.Keys())
	assert.Equal(t, []string{"one", "three"}, r.Messages("b"))
	assert.Nil(t, r.Messages("c"))
}

func TestResultZeroValue(t *testing.T) {
	var r v.Result
	assert.True(t, r.Valid())
	r.AddError("a", "b")
	assert.Equal(t, []string{"b"}, r.Messages("a"))
}

func TestResultCombine(t *testing.T) {
	a := v.NewResult()
	a.AddErrors("x", []string{"a1", "a2"})
	a.AddError("y", "a3")

	b := v.NewResult()
	b.AddError("z", "b1")
	b.AddErrors("x", []string{"b2", "b3"})

	assert.Same(t, a, a.Combine(b))
	assert.Equal(t, []string{"x", "y", "z"}, a.Keys())
	assert.Equal(t, []string{"a1", "a2", "b2", "b3"}, a.Messages("x"))
	assert.Equal(t, []string{"a3"}, a.Messages("y"))
	assert.Equal(t, []string{"b1"}, a.Messages("z"))

	assert.Equal(t, []string{"b1"}, b.Messages("z"), "other is unchanged")
	assert.Same(t, a, a.Combine(nil))
}

func TestResultErrorsIsSnapshot(t *testing.T) {
	r := v.NewResult()
	r.AddError("a", "one")

	errs := r.Errors()
	errs[0].Messages[0] = "changed"
	msgs := r.Messages("a")
	msgs[0] = "changed too"

	assert.Equal(t, []string{"one"}, r.Messages("a"))
	assert.Equal(t, []string{"changed"}, errs.Get("a"))
	assert.Equal(t, []string{"a"}, errs.Keys())
	assert.Equal(t, map[string][]string{"a": {"changed"}}, errs.Map())
	assert.Nil(t, errs.Get("missing"))
}

func TestNullResult(t *testing.T) {
	r := v.NullResult()
	assert.False(t, r.Valid())
	assert.True(t, r.IsNullInput())
	assert.Equal(t, []string{"input is null"}, r.Messages(""))

	r.AddError("x", "y")
	assert.False(t, r.IsNullInput())
	assert.False(t, v.NewResult().IsNullInput())
}

func TestResultJSON(t *testing.T) {
	r := v.NewResult()
	r.AddError("zeta", "z failed")
	r.AddError("alpha", "a failed")
	r.AddError("zeta", "z again")

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"valid":false,"errors":{"zeta":["z failed","z again"],"alpha":["a failed"]}}`, string(b))

	b, err = json.Marshal(v.NewResult())
	require.NoError(t, err)
	assert.Equal(t, `{"valid":true,"errors":{}}`, string(b))
}

func TestResultErr(t *testing.T) {
	assert.NoError(t, v.NewResult().Err())

	r := v.NewResult()
	r.AddErrors("name", []string{"is required", "should be at least 2 character(s)"})
	r.AddError("age", "must be greater than 0")

	err := r.Err()
	require.Error(t, err)
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "is required; should be at least 2 character(s)", errs["name"].Error())
	assert.Equal(t, "age: must be greater than 0; name: is required; should be at least 2 character(s).", err.Error())
}
