package ruling_test

import (
	"testing"
	"time"

	v "github.com/Gobd/ruling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareNoBound(t *testing.T) {
	_, err := v.Compare(intValue, v.Bounds{})
	assert.ErrorIs(t, err, v.ErrNoBound)

	_, err = v.Compare(intValue, v.Bounds{GreaterThan: v.Value(nil)})
	assert.ErrorIs(t, err, v.ErrNoBound)

	_, err = v.Compare(intValue, v.Bounds{GreaterThan: v.From[*fixture, int](nil)})
	assert.ErrorIs(t, err, v.ErrNoBound)

	assert.Panics(t, func() { v.MustCompare(intValue, v.Bounds{}) })
}

func TestCompareGreaterThan(t *testing.T) {
	r := v.MustCompare(otherValue, v.Bounds{GreaterThan: v.Value(3)})

	assert.True(t, v.MustValidate(&fixture{OtherValue: ptr(10)}, r).Valid())

	res := v.MustValidate(&fixture{OtherValue: ptr(2)}, r)
	assert.Equal(t, []string{"must be greater than 3"}, res.Messages("OtherValue"))

	res = v.MustValidate(&fixture{OtherValue: ptr(3)}, r)
	assert.False(t, res.Valid())

	res = v.MustValidate(&fixture{}, r)
	assert.Equal(t, []string{"OtherValue"}, res.Keys())
	assert.Equal(t, []string{"must be greater than 3"}, res.Messages("OtherValue"))
}

func TestCompareComputedBound(t *testing.T) {
	r := v.MustCompare(intValue, v.Bounds{GreaterThan: v.From(func(f *fixture) *int { return f.OtherValue })})

	assert.True(t, v.MustValidate(&fixture{IntValue: 10, OtherValue: ptr(2)}, r).Valid())

	res := v.MustValidate(&fixture{IntValue: -2, OtherValue: ptr(3)}, r)
	assert.Equal(t, []string{"must be greater than 3"}, res.Messages("IntValue"))

	res = v.MustValidate(&fixture{IntValue: 7}, r)
	assert.Equal(t, []string{"IntValue"}, res.Keys())
	assert.Equal(t, []string{"must be greater than null"}, res.Messages("IntValue"))
}

func TestCompareOrder(t *testing.T) {
	r := v.MustCompare(intValue, v.Bounds{
		GreaterThan:          v.Value(0),
		GreaterThanOrEqualTo: v.Value(5),
		LessThan:             v.Value(100),
		LessThanOrEqualTo:    v.Value(10),
	})

	tests := []struct {
		value   int
		message string
	}{
		{-1, "must be greater than 0"},
		{3, "must be greater than or equal to 5"},
		{5, ""},
		{10, ""},
		{11, "must be less than or equal to 10"},
		{100, "must be less than 100"},
	}
	for _, tt := range tests {
		res := v.MustValidate(&fixture{IntValue: tt.value}, r)
		if tt.message == "" {
			assert.True(t, res.Valid(), "value %d", tt.value)
			continue
		}
		assert.Equal(t, []string{tt.message}, res.Messages("IntValue"), "value %d", tt.value)
	}
}

func TestCompareSingleBound(t *testing.T) {
	tests := []struct {
		name    string
		rule    v.Rule[*fixture]
		valid   []int
		invalid []int
		message string
	}{
		{"greater than", v.GreaterThan(intValue, v.Value(8)), []int{9}, []int{8, 7}, "must be greater than 8"},
		{"greater than or equal", v.GreaterThanOrEqualTo(intValue, v.Value(8)), []int{8, 9}, []int{7}, "must be greater than or equal to 8"},
		{"less than", v.LessThan(intValue, v.Value(8)), []int{7}, []int{8, 9}, "must be less than 8"},
		{"less than or equal", v.LessThanOrEqualTo(intValue, v.Value(8)), []int{7, 8}, []int{9}, "must be less than or equal to 8"},
		{"nil bound", v.GreaterThan(intValue, nil), nil, []int{0, 100}, "must be greater than null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, n := range tt.valid {
				assert.True(t, v.MustValidate(&fixture{IntValue: n}, tt.rule).Valid(), "value %d", n)
			}
			for _, n := range tt.invalid {
				res := v.MustValidate(&fixture{IntValue: n}, tt.rule)
				assert.Equal(t, []string{tt.message}, res.Messages("IntValue"), "value %d", n)
			}
		})
	}
}

func TestCompareKinds(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, v.MustValidate(&fixture{UintValue: 4}, v.GreaterThan(uintValue, v.Value(uint(3)))).Valid())
	assert.True(t, v.MustValidate(&fixture{FloatValue: 0.5}, v.LessThan(floatValue, v.Value(0.75))).Valid())
	assert.True(t, v.MustValidate(&fixture{StringValue: "b"}, v.GreaterThan(stringValue, v.Value("a"))).Valid())
	assert.True(t, v.MustValidate(&fixture{Created: now}, v.LessThan(created, v.Value(now.Add(time.Hour)))).Valid())
	assert.False(t, v.MustValidate(&fixture{Created: now}, v.GreaterThan(created, v.Value(now))).Valid())

}

func TestCompareBoundType(t *testing.T) {
	tests := []struct {
		name   string
		bounds v.Bounds
	}{
		{"float bound on int", v.Bounds{GreaterThan: v.Value(2.5)}},
		{"string bound on int", v.Bounds{GreaterThan: v.Value("2")}},
		{"second bound checked", v.Bounds{GreaterThan: v.Value(0), LessThan: v.Value(int64(9))}},
		{"computed bound value", v.Bounds{LessThan: v.From(func(f *fixture) float64 { return f.FloatValue })}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Compare(intValue, tt.bounds)
			assert.ErrorIs(t, err, v.ErrBoundType)
		})
	}

	_, err := v.Compare(floatValue, v.Bounds{GreaterThan: v.Value(0)})
	assert.ErrorIs(t, err, v.ErrBoundType)
	assert.Panics(t, func() { v.GreaterThan(uintValue, v.Value(0)) })
	assert.Panics(t, func() { v.LessThanOrEqualTo(floatValue, v.Value(1)) })

	// Pointers are looked through on both sides.
	_, err = v.Compare(otherValue, v.Bounds{GreaterThan: v.Value(1), LessThan: v.Value(ptr(9))})
	assert.NoError(t, err)
}

func TestCompareOptions(t *testing.T) {
	r := v.GreaterThan(intValue, v.Value(3), v.WithKey("Foooo"), v.WithMessage("Custom message"))
	res := v.MustValidate(&fixture{}, r)
	assert.Equal(t, []string{"Foooo"}, res.Keys())
	assert.Equal(t, []string{"Custom message"}, res.Messages("Foooo"))

	res = v.MustValidate(&fixture{}, v.GreaterThan(intValue, nil, v.WithMessage("Custom message")))
	assert.Equal(t, []string{"Custom message"}, res.Messages("IntValue"))
}

func TestCompareBoundOfOtherObjectType(t *testing.T) {
	_, err := v.Compare(intValue, v.Bounds{LessThan: v.From(func(i *inner) int { return i.Number })})
	require.ErrorIs(t, err, v.ErrBoundType)
	assert.Contains(t, err.Error(), `compare "IntValue"`)

	r, err := v.Compare(intValue, v.Bounds{LessThan: v.From(func(f any) int { return 5 })})
	require.NoError(t, err)
	assert.True(t, v.MustValidate(&fixture{IntValue: 4}, r).Valid())
}
