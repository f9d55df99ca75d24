package ruling

import "fmt"

// Validate evaluates every rule against obj and folds the failures into a
// Result. Unlike a [Ruling], it refuses a nil object: it returns
// [ErrNilObject] and runs no rule.
func Validate[T any](obj T, rules ...Rule[T]) (*Result, error) {
	if isNil(obj) {
		return nil, fmt.Errorf("validate %T: %w", obj, ErrNilObject)
	}
	res := NewResult()
	for _, rule := range rules {
		fold(res, rule.Evaluate(obj))
	}
	return res, nil
}

// MustValidate is like Validate but panics on a nil object.
func MustValidate[T any](obj T, rules ...Rule[T]) *Result {
	res, err := Validate(obj, rules...)
	if err != nil {
		panic(err)
	}
	return res
}
