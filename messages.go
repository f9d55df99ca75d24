package ruling

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"text/template"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Default messages, one per rule kind and bound. Rules copy the entries they
// use when they are built, so replace them (directly, with [SetMessage] or
// with [LoadMessages]) before building rules.
var (
	ErrRequired             = validation.NewError("ruling_required", "is required")
	ErrEqualTo              = validation.NewError("ruling_equal_to", "must be equal to {{.other}}")
	ErrNotEqualTo           = validation.NewError("ruling_not_equal_to", "must not be equal to {{.other}}")
	ErrGreaterThan          = validation.NewError("ruling_greater_than", "must be greater than {{.bound}}")
	ErrGreaterThanOrEqualTo = validation.NewError("ruling_greater_than_or_equal_to", "must be greater than or equal to {{.bound}}")
	ErrLessThan             = validation.NewError("ruling_less_than", "must be less than {{.bound}}")
	ErrLessThanOrEqualTo    = validation.NewError("ruling_less_than_or_equal_to", "must be less than or equal to {{.bound}}")
	ErrExactLengthString    = validation.NewError("ruling_length_exact_string", "should be {{.length}} character(s)")
	ErrMinLengthString      = validation.NewError("ruling_length_min_string", "should be at least {{.length}} character(s)")
	ErrMaxLengthString      = validation.NewError("ruling_length_max_string", "should be at most {{.length}} character(s)")
	ErrExactLengthItems     = validation.NewError("ruling_length_exact_items", "should have {{.length}} item(s)")
	ErrMinLengthItems       = validation.NewError("ruling_length_min_items", "should have at least {{.length}} item(s)")
	ErrMaxLengthItems       = validation.NewError("ruling_length_max_items", "should have at most {{.length}} item(s)")
	ErrMaxLength            = validation.NewError("ruling_max_length", "length must be at most {{.length}}")
	ErrFormat               = validation.NewError("ruling_format", "has invalid format")
	ErrInvalid              = validation.NewError("ruling_invalid", "is invalid")
	ErrIn                   = validation.NewError("ruling_in", "must be one of {{.values}}")
	ErrUnique               = validation.NewError("ruling_unique", "must not contain duplicates")
	ErrDate                 = validation.NewError("ruling_date", "must be a valid date")
	ErrNullInput            = validation.NewError("ruling_null_input", "input is null")
)

func messageTable() map[string]*validation.Error {
	entries := []*validation.Error{
		&ErrRequired,
		&ErrEqualTo,
		&ErrNotEqualTo,
		&ErrGreaterThan,
		&ErrGreaterThanOrEqualTo,
		&ErrLessThan,
		&ErrLessThanOrEqualTo,
		&ErrExactLengthString,
		&ErrMinLengthString,
		&ErrMaxLengthString,
		&ErrExactLengthItems,
		&ErrMinLengthItems,
		&ErrMaxLengthItems,
		&ErrMaxLength,
		&ErrFormat,
		&ErrInvalid,
		&ErrIn,
		&ErrUnique,
		&ErrDate,
		&ErrNullInput,
	}
	table := make(map[string]*validation.Error, len(entries))
	for _, e := range entries {
		table[(*e).Code()] = e
	}
	return table
}

// SetMessage replaces the template of the default message with the given code.
// Templates use text/template syntax with the parameters shown in the defaults.
func SetMessage(code, message string) error {
	return setMessages(map[string]string{code: message})
}

// LoadMessages reads a YAML mapping of message code to template and replaces
// the matching defaults. Either every entry is applied or none is.
//
//	ruling_required: est obligatoire
//	ruling_greater_than: doit être supérieur à {{.bound}}
func LoadMessages(r io.Reader) error {
	var messages map[string]string
	if err := yaml.NewDecoder(r).Decode(&messages); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode messages: %w", err)
	}
	return setMessages(messages)
}

func setMessages(messages map[string]string) error {
	table := messageTable()

	codes := make([]string, 0, len(messages))
	for code := range messages {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	for _, code := range codes {
		if _, ok := table[code]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownMessage, code)
		}
		if _, err := template.New(code).Parse(messages[code]); err != nil {
			return fmt.Errorf("message %q: %w", code, err)
		}
	}
	for _, code := range codes {
		e := table[code]
		*e = (*e).SetMessage(messages[code])
	}
	return nil
}
