// Package is provides rules for common string formats, built on
// [github.com/asaskevich/govalidator].
//
// Every rule lets the empty string through, so a field that must also be
// present needs [ruling.Required] as well:
//
//	email := ruling.Select("Email", func(u *User) string { return u.Email })
//	r := ruling.CreateRuling(ruling.Required(email), is.Email(email))
package is
