// Package transform decorates string selectors so rules see a normalized
// value. The object under validation is never modified:
//
//	name := transform.TrimSpace(ruling.Select("Name", func(u *User) string { return u.Name }))
//	r := ruling.CreateRuling(ruling.Required(name), ruling.MaxLength(name, 50))
package transform
