// Package cleaner composes a normaliser and a validator into a single
// cleaning unit with a defined failure mode, the integration point a form
// layer plugs into its field hooks.
//
// Execute normalises raw input to canonical form, tests it, and either
// returns the canonical value or a *ValidationError carrying a configurable
// message and error kind:
//
//	clean := cleaner.New(validator.Passport(), normaliser.Passport(),
//	    cleaner.WithMessage("not a valid passport number"))
//
//	canonical, err := clean.Execute("  aa123456  ") // "AA123456", nil
//	_, err = clean.Execute("A12345")               // nil canonical, validation error
//	errors.Is(err, cleaner.ErrValidation)          // true
//
// Format produces the display form of an already-cleaned value and is
// independent of validation; it never returns an error.
//
// The package also provides a Registry, an explicit table mapping
// document-type keys to cleaners, built at start-up instead of discovered by
// reflection.
//
// Cleaners are stateless after construction and safe for concurrent use.
package cleaner
