package normaliser

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldDiacritics strips combining marks from the input, mapping "José" to
// "Jose" and "Müller" to "Muller". On transform failure the input is
// returned unchanged.
func FoldDiacritics(s string) string {
	// NFD splits base characters from their combining marks so the marks
	// can be removed, NFC recomposes what remains.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// CollapseWhitespace replaces runs of whitespace with a single space and
// trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// Name normalises a person or company name for storage: diacritics are
// folded to their ASCII base letters and internal whitespace is collapsed.
// Output is the canonical form unchanged.
func Name() Normaliser {
	return New(WithTransform(Chain(FoldDiacritics, CollapseWhitespace)))
}
