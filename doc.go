// Package ruling validates objects with small, composable rules and collects
// every violation into a keyed [Result].
//
// A rule reads one value from the object through a [Selector] and reports a
// key and a message when the value does not hold:
//
//	email := ruling.Select("Email", func(u *User) string { return u.Email })
//	age := ruling.Select("Age", func(u *User) int { return u.Age })
//
//	userOK := ruling.CreateRuling(
//	    ruling.Required(email),
//	    ruling.MustCompare(age, ruling.Bounds{GreaterThanOrEqualTo: ruling.Value(18)}),
//	)
//
//	res := userOK(&user)
//	if !res.Valid() {
//	    _ = json.NewEncoder(w).Encode(res)
//	}
//
// Rulings built with [CreateRuling] evaluate every rule; [CreateRulingFailFast]
// stops after the first failing rule. Rulings compose with [CombineRulings] and
// nest with [Nested], which prefixes inner keys with the outer key
// ("Address.Street"). [Each] does the same for slice elements ("Tags[2]") and
// [When] applies rules only when a condition on the object holds. [Validate]
// is the direct entry point for a flat rule list.
//
// Rules document themselves: [Schema] turns a rule list into an OpenAPI
// object schema.
//
// Default messages live in a table of [validation.Error] values (see
// [ErrRequired] and friends) that can be replaced at startup, for example from
// YAML with [LoadMessages].
//
// Sub-packages:
//   - is: common string format rules
//   - transform: selector decorators that normalize selected strings
//   - openapi: OpenAPI document helpers for rulings and the Result body
package ruling
