package validator

// Validator reports whether a canonical value is acceptable. Implementations
// must be pure, total over string input, and safe for concurrent use.
type Validator interface {
	Test(value string) bool
}

// Func adapts a plain predicate to the Validator interface.
type Func func(value string) bool

// Test implements Validator.
func (f Func) Test(value string) bool { return f(value) }

// Any returns the always-valid validator, the default no-op policy.
func Any() Validator {
	return Func(func(string) bool { return true })
}
