package normaliser

import (
	"fmt"
	"strings"
)

// Func is a single normalisation step: a pure transform over a string.
type Func func(string) string

// Chain composes transforms into a single Func, applied left to right.
func Chain(transforms ...Func) Func {
	return func(s string) string {
		for _, transform := range transforms {
			s = transform(s)
		}
		return s
	}
}

// Normaliser converts raw input to canonical form and canonical form to
// display form. The zero value passes strings through with only absent-value
// coercion; use New and the format-specific constructors for anything else.
type Normaliser struct {
	transform Func
	format    Func
}

// Option configures a Normaliser under construction.
type Option func(*Normaliser)

// WithTransform replaces the canonicalisation step applied by Input.
func WithTransform(fn Func) Option {
	return func(n *Normaliser) {
		n.transform = fn
	}
}

// WithFormat sets the display formatting step applied by Output after the
// value has been canonicalised.
func WithFormat(fn Func) Option {
	return func(n *Normaliser) {
		n.format = fn
	}
}

// New builds a Normaliser. Without options the transform defaults to
// trimming surrounding whitespace and the format step is a no-op.
func New(opts ...Option) Normaliser {
	n := Normaliser{transform: strings.TrimSpace}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// Input normalises raw user input into the canonical storage form. Absent
// values (nil, nil *string) are treated as the empty string.
func (n Normaliser) Input(raw any) string {
	s := Coerce(raw)
	if n.transform != nil {
		s = n.transform(s)
	}
	return s
}

// Output formats a stored value for display. The value is first passed
// through Input, so Output accepts both canonical and raw input; if the
// canonical form does not fit the expected shape the format step leaves it
// unchanged.
func (n Normaliser) Output(stored any) string {
	s := n.Input(stored)
	if n.format != nil {
		s = n.format(s)
	}
	return s
}

// Coerce converts an arbitrary value into the string the normalisation
// pipeline operates on. Absent values become the empty string; everything
// else is rendered with fmt.
func Coerce(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *string:
		if t == nil {
			return ""
		}
		return *t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
