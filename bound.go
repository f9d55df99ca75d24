package ruling

import (
	"cmp"
	"fmt"
	"math"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Bound is the other side of a comparison: a fixed value ([Value]) or a value
// computed from the object under validation ([From]). A nil Bound is absent.
//
// A bound must have the selected value's type, looking through pointers on
// both sides, or the rule refuses to build with [ErrBoundType]. Write
// Value(uint(0)) for a uint value, not Value(0).
type Bound interface {
	resolve(obj any) any
	check(obj, value reflect.Type) error
}

type fixedBound struct {
	value any
}

func (b fixedBound) resolve(any) any { return b.value }

func (b fixedBound) check(_, value reflect.Type) error {
	if b.value == nil {
		return nil
	}
	return matchValue(reflect.TypeOf(b.value), value)
}

type computedBound[T, V any] struct {
	fn func(T) V
}

func (b computedBound[T, V]) resolve(obj any) any {
	o, ok := obj.(T)
	if !ok {
		return nil
	}
	return b.fn(o)
}

func (b computedBound[T, V]) check(obj, value reflect.Type) error {
	if want := reflect.TypeFor[T](); !obj.AssignableTo(want) {
		return fmt.Errorf("%w: bound reads %s, rule validates %s", ErrBoundType, want, obj)
	}
	return matchValue(reflect.TypeFor[V](), value)
}

// checkBound reports whether b can be compared with the V values a rule
// selects from T.
func checkBound[T, V any](b Bound) error {
	return b.check(reflect.TypeFor[T](), reflect.TypeFor[V]())
}

// matchValue accepts a bound of the value's type. Interface types are only
// known at evaluation and pass.
func matchValue(bound, value reflect.Type) error {
	b, v := elem(bound), elem(value)
	if b == v || b.Kind() == reflect.Interface || v.Kind() == reflect.Interface {
		return nil
	}
	return fmt.Errorf("%w: bound is %s, value is %s", ErrBoundType, b, v)
}

func elem(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// Value returns a fixed bound. A nil value (or nil pointer) is no bound at all.
func Value(v any) Bound {
	if isNil(v) {
		return nil
	}
	return fixedBound{v}
}

// From returns a bound computed from the object on every evaluation. When fn
// returns nil the comparison fails and messages show "null".
func From[T, V any](fn func(T) V) Bound {
	if fn == nil {
		return nil
	}
	return computedBound[T, V]{fn}
}

// orNull turns an absent bound into one that is always null, for rules that
// take exactly one bound and must fail rather than refuse to build.
func orNull(b Bound) Bound {
	if b == nil {
		return fixedBound{}
	}
	return b
}

// fixedValue returns the value of a fixed bound, for documentation.
func fixedValue(b Bound) (any, bool) {
	fb, ok := b.(fixedBound)
	if !ok || fb.value == nil {
		return nil, false
	}
	return fb.value, true
}

// compareValues orders a against b. ok is false when either side is nil or the
// two cannot be ordered: the bound's kind decides how the subject is read and
// values are never converted across kinds.
func compareValues(a, b any) (c int, ok bool) {
	a, aNil := validation.Indirect(a)
	b, bNil := validation.Indirect(b)
	if aNil || bNil {
		return 0, false
	}

	if c, ok := compareMethod(a, b); ok {
		return c, true
	}

	switch reflect.ValueOf(b).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bi, _ := validation.ToInt(b)
		ai, err := validation.ToInt(a)
		if err != nil {
			return 0, false
		}
		return cmp.Compare(ai, bi), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		bu, _ := validation.ToUint(b)
		au, err := validation.ToUint(a)
		if err != nil {
			return 0, false
		}
		return cmp.Compare(au, bu), true
	case reflect.Float32, reflect.Float64:
		bf, _ := validation.ToFloat(b)
		af, err := validation.ToFloat(a)
		if err != nil || math.IsNaN(af) || math.IsNaN(bf) {
			return 0, false
		}
		return cmp.Compare(af, bf), true
	case reflect.String:
		av := reflect.ValueOf(a)
		if av.Kind() != reflect.String {
			return 0, false
		}
		return cmp.Compare(av.String(), reflect.ValueOf(b).String()), true
	}
	return 0, false
}

// compareMethod orders values that have a Compare(other) int method, such as
// time.Time.
func compareMethod(a, b any) (int, bool) {
	m := reflect.ValueOf(a).MethodByName("Compare")
	if !m.IsValid() {
		return 0, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Int {
		return 0, false
	}
	if !reflect.TypeOf(b).AssignableTo(mt.In(0)) {
		return 0, false
	}
	return int(m.Call([]reflect.Value{reflect.ValueOf(b)})[0].Int()), true
}
