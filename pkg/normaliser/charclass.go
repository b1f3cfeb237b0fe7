package normaliser

import "strings"

// ExtractDigits removes every character outside 0-9, preserving order.
// It is idempotent.
func ExtractDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// ExtractAlpha removes every character outside a-z and A-Z.
func ExtractAlpha(s string) string {
	return nonAlphaRegex.ReplaceAllString(s, "")
}

// ExtractAlnum removes every character outside a-z, A-Z and 0-9.
func ExtractAlnum(s string) string {
	return nonAlnumRegex.ReplaceAllString(s, "")
}

// Numeric keeps digits only on input; output is the canonical digit string
// unchanged.
func Numeric() Normaliser {
	return New(WithTransform(ExtractDigits))
}

// Alpha keeps ASCII letters only on input.
func Alpha() Normaliser {
	return New(WithTransform(ExtractAlpha))
}

// Alnum keeps ASCII letters and digits only on input.
func Alnum() Normaliser {
	return New(WithTransform(ExtractAlnum))
}

// Upper keeps ASCII letters and digits and upper-cases them.
func Upper() Normaliser {
	return New(WithTransform(Chain(ExtractAlnum, strings.ToUpper)))
}
