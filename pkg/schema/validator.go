package schema

// Result is the outcome of running a Validator.
// Value always holds the transformed value, even when OK is false, so that a
// non-fatal error policy can still store what the transform produced.
type Result struct {
	Value any
	OK    bool
}

// Valid returns a successful Result carrying v.
func Valid(v any) Result { return Result{Value: v, OK: true} }

// Invalid returns a failed Result carrying the partially transformed value v.
func Invalid(v any) Result { return Result{Value: v} }

// Validator checks a raw value and coerces it into its target type.
// A nil raw value means the variable is absent; validators must not panic
// on it and the built-in ones always reject it.
type Validator func(raw any) Result

func (Validator) isLeaf() {}

// Transform composes a validator from a transform and a predicate.
// The transform is skipped for absent (nil) values; it should return its
// input unchanged for shapes it does not recognize so the predicate can
// reject them.
func Transform(fn func(any) any, pred func(any) bool) Validator {
	return func(raw any) Result {
		val := raw
		if val != nil && fn != nil {
			val = fn(val)
		}
		return Result{Value: val, OK: pred(val)}
	}
}

// Ensure builds a validator that only applies pred, without transforming.
func Ensure(pred func(any) bool) Validator {
	return Transform(nil, pred)
}

// Is returns a predicate accepting values of type T.
func Is[T any]() func(any) bool {
	return func(v any) bool {
		_, ok := v.(T)
		return ok
	}
}
