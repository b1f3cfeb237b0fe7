package validator

import "regexp"

// Pre-compiled anchored patterns for the structural validators. The empty
// string is accepted by the open-ended character-class patterns (numeric,
// alpha, alnum) and rejected by the fixed-length document patterns.
var (
	numericRegex  = regexp.MustCompile(`^[0-9]*$`)
	alphaRegex    = regexp.MustCompile(`^[a-zA-Z]*$`)
	alnumRegex    = regexp.MustCompile(`^[a-zA-Z0-9]*$`)
	phoneRegex    = regexp.MustCompile(`^[0-9]{10,11}$`)
	passportRegex = regexp.MustCompile(`^[A-Z]{2}[0-9]{6}$`)
	idCardRegex   = regexp.MustCompile(`^[0-9]{9}$`)
	postCodeRegex = regexp.MustCompile(`^[0-9]{8}$`)

	cpfRegex  = regexp.MustCompile(`^[0-9]{11}$`)
	cnpjRegex = regexp.MustCompile(`^[0-9]{14}$`)
	cardRegex = regexp.MustCompile(`^[0-9]{13,19}$`)
	abaRegex  = regexp.MustCompile(`^[0-9]{9}$`)
)

// Regex builds a structural validator from a pattern. The pattern is
// anchored to the whole value, so "AA12345" does not pass a
// `[A-Z]{2}[0-9]{6}` validator by virtue of a matching prefix. The pattern
// must compile; Regex panics otherwise, matching regexp.MustCompile.
func Regex(pattern string) Validator {
	re := regexp.MustCompile(`^(?:` + pattern + `)$`)
	return Func(re.MatchString)
}

// Numeric accepts values consisting of digits only, the empty string
// included.
func Numeric() Validator {
	return Func(numericRegex.MatchString)
}

// Alpha accepts values consisting of ASCII letters only, the empty string
// included.
func Alpha() Validator {
	return Func(alphaRegex.MatchString)
}

// Alnum accepts values consisting of ASCII letters and digits only, the
// empty string included.
func Alnum() Validator {
	return Func(alnumRegex.MatchString)
}

// Phone accepts Brazilian phone numbers: exactly 10 or 11 digits.
func Phone() Validator {
	return Func(phoneRegex.MatchString)
}

// Passport accepts Brazilian passport numbers: two uppercase letters
// followed by six digits.
func Passport() Validator {
	return Func(passportRegex.MatchString)
}

// IDCard accepts Brazilian ID card (RG) numbers: exactly nine digits.
func IDCard() Validator {
	return Func(idCardRegex.MatchString)
}

// PostCode accepts Brazilian post codes (CEP): exactly eight digits.
func PostCode() Validator {
	return Func(postCodeRegex.MatchString)
}
