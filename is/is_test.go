package is_test

import (
	"testing"

	"github.com/Gobd/ruling"
	"github.com/Gobd/ruling/is"
	"github.com/stretchr/testify/assert"
)

type contact struct {
	Value string
}

var value = ruling.Select("Value", func(c *contact) string { return c.Value })

func TestFormats(t *testing.T) {
	tests := []struct {
		name    string
		rule    ruling.Rule[*contact]
		valid   []string
		invalid []string
		message string
	}{
		{"email", is.Email(value), []string{"", "john@example.com"}, []string{"john", "john@"}, "must be a valid email address"},
		{"url", is.URL(value), []string{"", "https://example.com/a?b=c"}, []string{"not a url"}, "must be a valid URL"},
		{"uuid", is.UUID(value), []string{"", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"}, []string{"6ba7b810"}, "must be a valid UUID"},
		{"alpha", is.Alpha(value), []string{"", "abc"}, []string{"abc1"}, "must contain English letters only"},
		{"alphanumeric", is.Alphanumeric(value), []string{"", "abc1"}, []string{"abc-1"}, "must contain English letters and digits only"},
		{"numeric", is.Numeric(value), []string{"", "0123"}, []string{"12a"}, "must contain digits only"},
		{"ip", is.IP(value), []string{"", "10.0.0.1", "::1"}, []string{"10.0.0.256"}, "must be a valid IP address"},
		{"hexadecimal", is.Hexadecimal(value), []string{"", "ff00"}, []string{"fg"}, "must be a valid hexadecimal number"},
		{"json", is.JSON(value), []string{"", `{"a":1}`}, []string{"{a:1}"}, "must be in valid JSON format"},
		{"semver", is.Semver(value), []string{"", "v1.2.3"}, []string{"1.2"}, "must be a valid semantic version"},
		{"e164", is.E164(value), []string{"", "+14155552671"}, []string{"4155552671x"}, "must be a valid E164 number"},
		{"country code", is.CountryCode2(value), []string{"", "US"}, []string{"XX"}, "must be a valid two-letter country code"},
		{"has letter", is.HasLetter(value), []string{"", "   ", "a1"}, []string{"123"}, "must contain at least one alphabetic character"},
		{"not credit card", is.NotCreditCard(value), []string{"", "1234", "card 4111111111111111"}, []string{"4111 1111 1111 1111", "4111-1111-1111-1111"}, "must not be a credit card number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ruling.CreateRuling(tt.rule)
			for _, v := range tt.valid {
				assert.True(t, r(&contact{v}).Valid(), "value %q", v)
			}
			for _, v := range tt.invalid {
				res := r(&contact{v})
				assert.False(t, res.Valid(), "value %q", v)
				assert.Equal(t, []string{tt.message}, res.Messages("Value"), "value %q", v)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	r := ruling.CreateRuling(is.Email(value, ruling.WithKey("email"), ruling.WithMessage("bad email")))
	res := r(&contact{"nope"})
	assert.Equal(t, []string{"email"}, res.Keys())
	assert.Equal(t, []string{"bad email"}, res.Messages("email"))
}

func TestSchemaDescription(t *testing.T) {
	ref, err := ruling.Schema(is.Email(value), is.HasLetter(value))
	assert.NoError(t, err)
	assert.Equal(t, "must be a valid email address. must contain at least one alphabetic character",
		ref.Value.Properties["Value"].Value.Description)
}
