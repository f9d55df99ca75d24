package ruling

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Outcome is the verdict of a rule for one key. Message is only meaningful
	// when Valid is false.
	Outcome struct {
		Valid   bool
		Key     string
		Message string
	}

	// Rule is the interface all rules implement. Most rules report a single
	// outcome; structural rules such as [Nested] report one per inner check.
	Rule[T any] interface {
		Evaluate(obj T) []Outcome
	}

	// RuleFunc adapts a single-outcome function into a [Rule].
	RuleFunc[T any] func(obj T) Outcome

	// MultiRuleFunc adapts a function reporting several outcomes into a [Rule].
	MultiRuleFunc[T any] func(obj T) []Outcome

	// Describer is implemented by rules that can document themselves on an
	// OpenAPI schema. name is the property key the rule reports under.
	Describer interface {
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}
)

// Evaluate implements [Rule].
func (f RuleFunc[T]) Evaluate(obj T) []Outcome {
	return []Outcome{f(obj)}
}

// Evaluate implements [Rule].
func (f MultiRuleFunc[T]) Evaluate(obj T) []Outcome {
	return f(obj)
}

// Pass returns a successful outcome for key.
func Pass(key string) Outcome {
	return Outcome{Valid: true, Key: key}
}

// Fail returns a failed outcome for key.
func Fail(key, message string) Outcome {
	return Outcome{Key: key, Message: message}
}
