package normaliser

import (
	"strings"
	"unicode"
)

// Strip returns the default normaliser: surrounding whitespace is removed on
// input, output is the canonical value unchanged.
func Strip() Normaliser {
	return New()
}

// StripLeft trims leading whitespace only.
func StripLeft() Normaliser {
	return New(WithTransform(func(s string) string {
		return strings.TrimLeftFunc(s, unicode.IsSpace)
	}))
}

// StripRight trims trailing whitespace only.
func StripRight() Normaliser {
	return New(WithTransform(func(s string) string {
		return strings.TrimRightFunc(s, unicode.IsSpace)
	}))
}

// Removing strips every occurrence of the given characters and then trims
// surrounding whitespace. Removing("-.") turns "020-1234.5678 " into
// "02012345678".
func Removing(chars string) Normaliser {
	return New(WithTransform(func(s string) string {
		for _, r := range chars {
			s = strings.ReplaceAll(s, string(r), "")
		}
		return strings.TrimSpace(s)
	}))
}
