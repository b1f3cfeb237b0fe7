package cleaner

import (
	"errors"

	"github.com/oditorium/cleanse/pkg/normaliser"
	"github.com/oditorium/cleanse/pkg/validator"
)

// ErrValidation is the default error kind carried by a ValidationError.
var ErrValidation = errors.New("validation error")

// defaultMessage is used when no message is configured.
const defaultMessage = "validation error"

// ValidationError is the only error Execute returns deliberately. It carries
// the cleaner's configured message, suitable for direct display to the user,
// and unwraps to the configured error kind so callers can branch with
// errors.Is.
type ValidationError struct {
	Message string
	kind    error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.kind }

// Normaliser is the slice of the normalisation pipeline a cleaner needs.
// normaliser.Normaliser satisfies it.
type Normaliser interface {
	Input(raw any) string
	Output(stored any) string
}

// Validator is the predicate a cleaner consults. validator.Validator values
// satisfy it.
type Validator interface {
	Test(value string) bool
}

// Cleaner owns exactly one normaliser and one validator. Construct once,
// typically at process initialisation, and reuse; it holds no per-call
// state.
type Cleaner struct {
	validator  Validator
	normaliser Normaliser
	message    string
	kind       error
}

// Option configures a Cleaner under construction.
type Option func(*Cleaner)

// WithMessage sets the user-facing message carried by validation failures.
func WithMessage(msg string) Option {
	return func(c *Cleaner) {
		c.message = msg
	}
}

// WithKind sets the error kind validation failures unwrap to, replacing
// ErrValidation.
func WithKind(kind error) Option {
	return func(c *Cleaner) {
		c.kind = kind
	}
}

// New builds a Cleaner. A nil validator defaults to the always-valid policy
// and a nil normaliser to whitespace stripping, mirroring the zero-effort
// configuration of a plain text field.
func New(v Validator, n Normaliser, opts ...Option) *Cleaner {
	c := &Cleaner{
		validator:  v,
		normaliser: n,
		message:    defaultMessage,
		kind:       ErrValidation,
	}
	if c.validator == nil {
		c.validator = validator.Any()
	}
	if c.normaliser == nil {
		c.normaliser = normaliser.Strip()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute normalises text to canonical form and validates it. On success the
// canonical string is returned; on failure a *ValidationError with the
// configured message and kind. No other error escapes.
func (c *Cleaner) Execute(text any) (string, error) {
	canonical := c.normaliser.Input(text)
	if c.validator.Test(canonical) {
		return canonical, nil
	}
	return "", &ValidationError{Message: c.message, kind: c.kind}
}

// Func returns Execute as a standalone function, convenient for plugging the
// cleaner into form-field hooks that accept a plain callable.
func (c *Cleaner) Func() func(any) (string, error) {
	return c.Execute
}

// Format returns the display form of a stored value via the normaliser's
// output direction. It is not a validation gate and never returns an error:
// values that do not fit the expected shape come back canonicalised but
// unformatted.
func (c *Cleaner) Format(text any) string {
	return c.normaliser.Output(text)
}
