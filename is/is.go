package is

import (
	"regexp"
	"strings"

	"github.com/Gobd/ruling"
	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Errors reported by the rules in this package, one per check. Override one
// with [ruling.WithMessage] on the rule.
var (
	ErrEmail         = validation.NewError("ruling_is_email", "must be a valid email address")
	ErrURL           = validation.NewError("ruling_is_url", "must be a valid URL")
	ErrUUID          = validation.NewError("ruling_is_uuid", "must be a valid UUID")
	ErrAlpha         = validation.NewError("ruling_is_alpha", "must contain English letters only")
	ErrAlphanumeric  = validation.NewError("ruling_is_alphanumeric", "must contain English letters and digits only")
	ErrNumeric       = validation.NewError("ruling_is_numeric", "must contain digits only")
	ErrIP            = validation.NewError("ruling_is_ip", "must be a valid IP address")
	ErrHost          = validation.NewError("ruling_is_host", "must be a valid IP address or DNS name")
	ErrHexadecimal   = validation.NewError("ruling_is_hexadecimal", "must be a valid hexadecimal number")
	ErrJSON          = validation.NewError("ruling_is_json", "must be in valid JSON format")
	ErrSemver        = validation.NewError("ruling_is_semver", "must be a valid semantic version")
	ErrE164          = validation.NewError("ruling_is_e164", "must be a valid E164 number")
	ErrCountryCode2  = validation.NewError("ruling_is_country_code_2_letter", "must be a valid two-letter country code")
	ErrHasLetter     = validation.NewError("ruling_is_has_letter", "must contain at least one alphabetic character")
	ErrNotCreditCard = validation.NewError("ruling_is_not_credit_card", "must not be a credit card number")
)

// Email checks that the value is an email address.
func Email[T any](sel ruling.Selector[T, string], opts ...ruling.Option) ruling.Rule[T] {
	return format(sel, govalidator.IsEmail, ErrEmail, opts)
}

// URL checks that the value is a URL.
func URL[T any](sel ruling.Selector[T, string], opts ...ruling.Option) ruling.Rule[T] {
	return format(sel, govalidator.IsURL, ErrURL, opts)
}

// UUID checks that the value is a UUID of any version.
func UUID[T any](sel ruling.Selector[T, string], opts ...ruling.Option) ruling.Rule[T] {
	return format(sel, govalidator.IsUUID, ErrUUID, opts)
}

// Alpha checks that the value contains English letters only.
func Alpha[T any](sel ruling.Selector[T, string], opts ...ruling.Option) ruling.Rule[T] {
	return format(sel, govalidator.IsAlpha, ErrAlpha, opts)
}

// Alphanumeric checks that the value contains English letters and digits only.
func Alphanumeric[T any](sel ruling.Selector[T, string], opts ...ruling.Option) ruling.Rule[T] {
	return format(sel, govalidator.IsAlphanumeric, ErrAlphanumeric, opts)
}

// Numeric checks that the value contains digits only.
func Numeric[T any](sel ruling.Selector[T, string], opts ...ruling.Option) ruling.Rule[T] {
	return format(sel, govalidator.IsNumeric, ErrNumeric, opts)
}

// IP checks that the value is an IPv4 or IPv6 address.
func IP[T any](sel ruling.Selector[T, string], opts ...ruling.Option) ruling.Rule[T] {
	return format(sel, govalidator.IsIP, ErrIP, opts)
}

// Host checks that the value is an IP address or a DNS name.
func Host[T any](sel ruling.Selector[T, string], opts ...ruling.Option) ruling.Rule[T] {
	return format(sel, govalidator.IsHost, ErrHost, opts)
}

// Hexadecimal checks that the value is a hexadecimal number.
func Hexadecimal[T any](sel ruling.Selector[T, string], opts ...ruling.Option) ruling.Rule[T] {
	return format(sel, govalidator.IsHexadecimal, ErrHexadecimal, opts)
}

// JSON checks that the value is valid JSON.
func JSON[T any](sel ruling.Selector[T, string], opts ...ruling.Option) ruling.Rule[T] {
	return format(sel, govalidator.IsJSON, ErrJSON, opts)
}

// Semver checks that the value is a semantic version such as "v1.2.3".
func Semver[T any](sel ruling.Selector[T, string], opts ...ruling.Option) ruling.Rule[T] {
	return format(sel, govalidator.IsSemver, ErrSemver, opts)
}

// E164 checks that the value is a phone number in E.164 form.
func E164[T any](sel ruling.Selector[T, string], opts ...ruling.Option) ruling.Rule[T] {
	return format(sel, govalidator.IsE164, ErrE164, opts)
}

// CountryCode2 checks that the value is an ISO 3166-1 alpha-2 country code.
func CountryCode2[T any](sel ruling.Selector[T, string], opts ...ruling.Option) ruling.Rule[T] {
	return format(sel, govalidator.IsISO3166Alpha2, ErrCountryCode2, opts)
}

var letterRegexp = regexp.MustCompile(`[[:alpha:]]`)

// HasLetter checks that the value contains at least one alphabetic character.
// Whitespace-only values count as empty.
func HasLetter[T any](sel ruling.Selector[T, string], opts ...ruling.Option) ruling.Rule[T] {
	return ruling.Check(sel, func(v string) bool {
		v = strings.TrimSpace(v)
		return v == "" || letterRegexp.MatchString(v)
	}, ErrHasLetter, opts...)
}

// NotCreditCard rejects values without letters that pass the card number
// checksum, such as "4111 1111 1111 1111".
func NotCreditCard[T any](sel ruling.Selector[T, string], opts ...ruling.Option) ruling.Rule[T] {
	return ruling.Check(sel, func(v string) bool {
		v = strings.TrimSpace(v)
		if v == "" || letterRegexp.MatchString(v) {
			return true
		}
		return !govalidator.IsCreditCard(v)
	}, ErrNotCreditCard, opts...)
}

func format[T any](sel ruling.Selector[T, string], valid func(string) bool, err validation.Error, opts []ruling.Option) ruling.Rule[T] {
	return ruling.Check(sel, func(v string) bool {
		return v == "" || valid(v)
	}, err, opts...)
}
