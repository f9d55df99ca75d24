package ruling

import (
	"fmt"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Selector reads the value under test from an object. Name is the key rules
// report under unless [WithKey] overrides it.
type Selector[T, V any] struct {
	Name string
	Get  func(T) V
}

// Select pairs an accessor with the name it is reported under.
//
//	email := Select("Email", func(u *User) string { return u.Email })
func Select[T, V any](name string, get func(T) V) Selector[T, V] {
	return Selector[T, V]{Name: name, Get: get}
}

// Option overrides the key or the message of a rule.
type Option func(*options)

type options struct {
	key        string
	hasKey     bool
	message    string
	hasMessage bool
}

// WithKey reports the rule under key instead of the selector name.
func WithKey(key string) Option {
	return func(o *options) {
		o.key = key
		o.hasKey = true
	}
}

// WithMessage replaces the default message of the rule.
func WithMessage(message string) Option {
	return func(o *options) {
		o.message = message
		o.hasMessage = true
	}
}

// field holds what every built-in rule resolves at construction: the
// effective key, the message override and the selected value type.
type field struct {
	kind       string
	key        string
	message    string
	hasMessage bool
	typ        reflect.Type
}

func newField[T, V any](kind string, sel Selector[T, V], opts []Option) field {
	if sel.Get == nil {
		panic(fmt.Sprintf("ruling: %s rule on %q has a selector without Get", kind, sel.Name))
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	key := sel.Name
	if o.hasKey {
		key = o.key
	}
	return field{
		kind:       kind,
		key:        key,
		message:    o.message,
		hasMessage: o.hasMessage,
		typ:        reflect.TypeFor[V](),
	}
}

func (f field) pass() Outcome {
	return Outcome{Valid: true, Key: f.key, Message: f.kind}
}

func (f field) fail(def validation.Error, params map[string]any) Outcome {
	if f.hasMessage {
		return Fail(f.key, f.message)
	}
	return Fail(f.key, render(def, params))
}

func (f field) failText(message string) Outcome {
	if f.hasMessage {
		return Fail(f.key, f.message)
	}
	return Fail(f.key, message)
}

// ruleKey and valueType feed Schema.
func (f field) ruleKey() string { return f.key }

func (f field) valueType() reflect.Type { return f.typ }

func render(def validation.Error, params map[string]any) string {
	if len(params) == 0 {
		return def.Message()
	}
	return def.SetParams(params).Error()
}

// display formats a subject or bound for a message; nil renders as "null".
func display(v any) string {
	v, isNil := validation.Indirect(v)
	if isNil {
		return "null"
	}
	return fmt.Sprint(v)
}

func isNil(v any) bool {
	_, isNil := validation.Indirect(v)
	return isNil
}
