package transform

import (
	"strings"

	"github.com/Gobd/ruling"
)

// TrimSpace returns a selector reading the value of sel without leading and
// trailing white space.
func TrimSpace[T any](sel ruling.Selector[T, string]) ruling.Selector[T, string] {
	return Map(sel, strings.TrimSpace)
}

// ToLower returns a selector reading the value of sel in lower case.
func ToLower[T any](sel ruling.Selector[T, string]) ruling.Selector[T, string] {
	return Map(sel, strings.ToLower)
}

// ToUpper returns a selector reading the value of sel in upper case.
func ToUpper[T any](sel ruling.Selector[T, string]) ruling.Selector[T, string] {
	return Map(sel, strings.ToUpper)
}

// Map returns a selector reading f applied to the value of sel. The name is
// kept, so rules report under the same key. Several functions run in order.
func Map[T any](sel ruling.Selector[T, string], fns ...func(string) string) ruling.Selector[T, string] {
	get := sel.Get
	return ruling.Selector[T, string]{
		Name: sel.Name,
		Get: func(obj T) string {
			v := get(obj)
			for _, f := range fns {
				v = f(v)
			}
			return v
		},
	}
}
