// Package normaliser provides bidirectional string normalisation for form
// tokens: an input direction that turns raw user text into the canonical
// storage form, and an output direction that turns a stored canonical value
// back into a human-friendly display form.
//
// A Normaliser is a fixed two-stage pipeline. The universal pre-step coerces
// absent values (nil, nil pointers) to the empty string; the pluggable
// transform step performs the format-specific canonicalisation. The output
// direction re-runs the input pipeline and then applies an optional format
// step, so display formatting always starts from the canonical form:
//
//	n := normaliser.CPF()
//	n.Input(" 697.200.105-68 ") // "69720010568"
//	n.Output("69720010568")     // "697.200.105-68"
//	n.Output(nil)               // ""
//
// Format steps are best-effort: a value whose canonical form does not have
// the expected length is returned canonicalised but unformatted rather than
// mangled or rejected. Validation is a separate concern, see the validator
// and cleaner packages.
//
// Custom pipelines are composed from plain string functions:
//
//	n := normaliser.New(
//	    normaliser.WithTransform(normaliser.Chain(normaliser.ExtractDigits, myTransform)),
//	    normaliser.WithFormat(myFormat),
//	)
//
// All normalisers are stateless values; they are safe for concurrent use and
// are meant to be constructed once and reused for the lifetime of the
// process.
package normaliser
