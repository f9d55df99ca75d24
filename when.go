package ruling

// WhenRule applies one set of rules when a condition on the object holds and
// an optional other set (via [WhenRule.Else]) when it does not. Use [When] to
// create one.
type WhenRule[T any] struct {
	cond      func(T) bool
	whenRules []Rule[T]
	elseRules []Rule[T]
}

// When returns a rule that evaluates rules only when cond(obj) is true. Every
// rule runs and every failure is reported.
//
//	When(func(o *Order) bool { return o.Shipping }, Required(address))
func When[T any](cond func(T) bool, rules ...Rule[T]) *WhenRule[T] {
	if cond == nil {
		panic("ruling: when rule has no condition")
	}
	return &WhenRule[T]{cond: cond, whenRules: rules}
}

// Else specifies the rules to apply when the [When] condition is false.
func (r *WhenRule[T]) Else(rules ...Rule[T]) *WhenRule[T] {
	r.elseRules = rules
	return r
}

// Evaluate implements [Rule].
func (r *WhenRule[T]) Evaluate(obj T) []Outcome {
	rules := r.elseRules
	if r.cond(obj) {
		rules = r.whenRules
	}
	var outcomes []Outcome
	for _, rule := range rules {
		outcomes = append(outcomes, rule.Evaluate(obj)...)
	}
	return outcomes
}
