package normaliser

import "regexp"

// Pre-compiled regular expressions for the character-class transforms.
var (
	nonDigitRegex = regexp.MustCompile(`[^0-9]`)
	nonAlphaRegex = regexp.MustCompile(`[^a-zA-Z]`)
	nonAlnumRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)

	whitespaceRegex = regexp.MustCompile(`\s+`)
)
