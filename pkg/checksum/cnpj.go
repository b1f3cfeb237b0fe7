package checksum

// CNPJ check-digit weight tables. Unlike the CPF the weights are not a single
// descending run: they restart at 9 after reaching 2.
var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// CNPJDigits computes the two check digits for a CNPJ from its first twelve
// data digits. Both digits use a weighted sum mod 11 with remainders 0 and 1
// mapping to a check digit of 0.
//
// base must contain at least twelve characters; only the first twelve are
// used and they are expected to be ASCII digits.
func CNPJDigits(base string) (first, second int) {
	first = weightedMod11(base[:12], cnpjFirstWeights)
	second = weightedMod11(base[:12]+digitChar(first), cnpjSecondWeights)
	return first, second
}

// ValidCNPJ reports whether number is a structurally correct CNPJ (exactly 14
// digits) whose two trailing check digits match the ones recomputed from the
// twelve data digits.
func ValidCNPJ(number string) bool {
	if len(number) != 14 || !allDigits(number) {
		return false
	}
	first, second := CNPJDigits(number[:12])
	return digitAt(number, 12) == first && digitAt(number, 13) == second
}

func weightedMod11(digits string, weights []int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * weights[i]
	}
	check := 11 - sum%11
	if check >= 10 {
		return 0
	}
	return check
}
