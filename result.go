package ruling

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Result is the report of a validation: every failure message, grouped by key
// in the order the keys first failed. A Result is valid when it holds no
// failure. It is not safe for concurrent mutation.
type Result struct {
	keys     []string
	messages map[string][]string
}

// NewResult returns an empty, valid Result.
func NewResult() *Result {
	return &Result{messages: map[string][]string{}}
}

// NullResult returns the Result rulings produce for a nil object: a single
// failure under the empty key with the [ErrNullInput] message.
func NullResult() *Result {
	r := NewResult()
	r.AddError("", ErrNullInput.Message())
	return r
}

// AddError records message under key, after any message already recorded there.
func (r *Result) AddError(key, message string) {
	r.AddErrors(key, []string{message})
}

// AddErrors records messages under key in the given order.
func (r *Result) AddErrors(key string, messages []string) {
	if len(messages) == 0 {
		return
	}
	if r.messages == nil {
		r.messages = map[string][]string{}
	}
	if _, ok := r.messages[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.messages[key] = append(r.messages[key], messages...)
}

// Combine appends the failures of other to r, key by key, and returns r.
func (r *Result) Combine(other *Result) *Result {
	if other == nil {
		return r
	}
	for _, key := range other.keys {
		r.AddErrors(key, other.messages[key])
	}
	return r
}

// Valid reports whether no failure was recorded.
func (r *Result) Valid() bool {
	return len(r.keys) == 0
}

// IsNullInput reports whether r is the sentinel returned for a nil object.
func (r *Result) IsNullInput() bool {
	return len(r.keys) == 1 && r.keys[0] == ""
}

// Keys returns the failed keys in the order they first failed.
func (r *Result) Keys() []string {
	return slices.Clone(r.keys)
}

// Messages returns the messages recorded under key.
func (r *Result) Messages(key string) []string {
	return slices.Clone(r.messages[key])
}

// Errors returns a snapshot of the failures. Changing it does not change r.
func (r *Result) Errors() Errors {
	errs := make(Errors, len(r.keys))
	for i, key := range r.keys {
		errs[i] = FieldErrors{Key: key, Messages: slices.Clone(r.messages[key])}
	}
	return errs
}

// MarshalJSON encodes r as {"valid": bool, "errors": {key: [messages]}} with
// keys in failure order.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Valid  bool   `json:"valid"`
		Errors Errors `json:"errors"`
	}{r.Valid(), r.Errors()})
}

// FieldErrors holds the messages recorded under one key.
type FieldErrors struct {
	Key      string
	Messages []string
}

// Errors is an ordered snapshot of a [Result].
type Errors []FieldErrors

// Get returns the messages recorded under key, or nil.
func (e Errors) Get(key string) []string {
	for _, fe := range e {
		if fe.Key == key {
			return fe.Messages
		}
	}
	return nil
}

// Keys returns the keys in order.
func (e Errors) Keys() []string {
	keys := make([]string, len(e))
	for i, fe := range e {
		keys[i] = fe.Key
	}
	return keys
}

// Map returns the errors as a plain map.
func (e Errors) Map() map[string][]string {
	m := make(map[string][]string, len(e))
	for _, fe := range e {
		m[fe.Key] = fe.Messages
	}
	return m
}

// MarshalJSON encodes e as a JSON object, keeping key order.
func (e Errors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fe := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fe.Key)
		if err != nil {
			return nil, err
		}
		messages := fe.Messages
		if messages == nil {
			messages = []string{}
		}
		value, err := json.Marshal(messages)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
