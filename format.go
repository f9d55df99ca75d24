package ruling

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RegexFlags changes how a [Format] pattern matches.
type RegexFlags uint8

const (
	// IgnoreCase matches letters case-insensitively.
	IgnoreCase RegexFlags = 1 << iota
	// Multiline lets ^ and $ match at line boundaries.
	Multiline
	// DotAll lets . match newlines.
	DotAll
	// Ungreedy swaps the meaning of x* and x*?.
	Ungreedy
)

func (f RegexFlags) prefix() string {
	var flags string
	if f&IgnoreCase != 0 {
		flags += "i"
	}
	if f&Multiline != 0 {
		flags += "m"
	}
	if f&DotAll != 0 {
		flags += "s"
	}
	if f&Ungreedy != 0 {
		flags += "U"
	}
	if flags == "" {
		return ""
	}
	return "(?" + flags + ")"
}

type formatRule[T, V any] struct {
	field
	get func(T) V
	re  *regexp.Regexp
	err validation.Error
}

// Format returns a rule that checks the selected string matches pattern. The
// pattern is compiled here; one that does not compile is an error. A nil
// value or a value that is not a string fails.
func Format[T, V any](sel Selector[T, V], pattern string, flags RegexFlags, opts ...Option) (Rule[T], error) {
	re, err := regexp.Compile(flags.prefix() + pattern)
	if err != nil {
		return nil, fmt.Errorf("format %q: %w: %w", sel.Name, ErrInvalidPattern, err)
	}
	return FormatRegexp(sel, re, opts...), nil
}

// MustFormat is like Format but panics when the pattern does not compile.
func MustFormat[T, V any](sel Selector[T, V], pattern string, flags RegexFlags, opts ...Option) Rule[T] {
	r, err := Format(sel, pattern, flags, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// FormatRegexp is like Format with an already compiled expression. A nil re
// fails every value.
func FormatRegexp[T, V any](sel Selector[T, V], re *regexp.Regexp, opts ...Option) Rule[T] {
	return &formatRule[T, V]{
		field: newField("Format", sel, opts),
		get:   sel.Get,
		re:    re,
		err:   ErrFormat,
	}
}

func (r *formatRule[T, V]) Evaluate(obj T) []Outcome {
	v, isNil := validation.Indirect(r.get(obj))
	if !isNil && r.re != nil {
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.String && r.re.MatchString(rv.String()) {
			return []Outcome{r.pass()}
		}
	}
	return []Outcome{r.fail(r.err, nil)}
}

func (r *formatRule[T, V]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.re != nil {
		ref.Value.Pattern = r.re.String()
	}
	return nil
}
