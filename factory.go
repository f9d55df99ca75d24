package ruling

// Ruling validates a whole object and returns its [Result]. Rulings are built
// once and reused; they are safe for concurrent use as long as their rules are.
type Ruling[T any] func(obj T) *Result

// Evaluate lets a Ruling be used wherever a [Rule] is expected. Each failure of
// the ruling becomes one failed outcome.
func (r Ruling[T]) Evaluate(obj T) []Outcome {
	res := r(obj)
	var outcomes []Outcome
	for _, key := range res.keys {
		for _, msg := range res.messages[key] {
			outcomes = append(outcomes, Fail(key, msg))
		}
	}
	return outcomes
}

// CreateRuling builds a Ruling that evaluates every rule in order and records
// every failure. A nil object yields [NullResult] without running any rule.
func CreateRuling[T any](rules ...Rule[T]) Ruling[T] {
	return func(obj T) *Result {
		if isNil(obj) {
			return NullResult()
		}
		return evaluateRules(obj, false, rules)
	}
}

// CreateRulingFailFast is like CreateRuling but stops after the first rule
// that fails. That rule still contributes all of its failures.
func CreateRulingFailFast[T any](rules ...Rule[T]) Ruling[T] {
	return func(obj T) *Result {
		if isNil(obj) {
			return NullResult()
		}
		return evaluateRules(obj, true, rules)
	}
}

// CombineRulings builds a Ruling that runs every sub-ruling and combines their
// results, keeping each key's full message list.
func CombineRulings[T any](rulings ...Ruling[T]) Ruling[T] {
	return func(obj T) *Result {
		if isNil(obj) {
			return NullResult()
		}
		return evaluateRulings(obj, false, rulings)
	}
}

// CombineRulingsFailFast is like CombineRulings but stops after the first
// sub-ruling whose result is invalid.
func CombineRulingsFailFast[T any](rulings ...Ruling[T]) Ruling[T] {
	return func(obj T) *Result {
		if isNil(obj) {
			return NullResult()
		}
		return evaluateRulings(obj, true, rulings)
	}
}

func evaluateRules[T any](obj T, failFast bool, rules []Rule[T]) *Result {
	res := NewResult()
	for _, rule := range rules {
		if failFast && !res.Valid() {
			break
		}
		fold(res, rule.Evaluate(obj))
	}
	return res
}

func evaluateRulings[T any](obj T, failFast bool, rulings []Ruling[T]) *Result {
	res := NewResult()
	for _, ruling := range rulings {
		if failFast && !res.Valid() {
			break
		}
		res.Combine(ruling(obj))
	}
	return res
}

func fold(res *Result, outcomes []Outcome) {
	for _, o := range outcomes {
		if !o.Valid {
			res.AddError(o.Key, o.Message)
		}
	}
}
