package checksum

// CPFDigits computes the two check digits for a CPF from its first nine data
// digits. The first digit is derived from the data digits with weights 10
// down to 2, the second from the data digits plus the first check digit with
// weights 11 down to 2, both mod 11 with remainders 0 and 1 mapping to a
// check digit of 0.
//
// base must contain at least nine characters; only the first nine are used
// and they are expected to be ASCII digits.
func CPFDigits(base string) (first, second int) {
	first = mod11Descending(base[:9], 10)
	second = mod11Descending(base[:9]+digitChar(first), 11)
	return first, second
}

// ValidCPF reports whether number is a structurally correct CPF (exactly 11
// digits) whose two trailing check digits match the ones recomputed from the
// nine data digits.
func ValidCPF(number string) bool {
	if len(number) != 11 || !allDigits(number) {
		return false
	}
	first, second := CPFDigits(number[:9])
	return digitAt(number, 9) == first && digitAt(number, 10) == second
}

// mod11Descending is the weighted mod-11 rule shared by both CPF check
// digits: weights count down from start to 2, one per digit.
func mod11Descending(digits string, start int) int {
	sum := 0
	weight := start
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * weight
		weight--
	}
	check := 11 - sum%11
	if check >= 10 {
		return 0
	}
	return check
}
