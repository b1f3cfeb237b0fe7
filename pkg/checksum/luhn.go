package checksum

// Luhn reports whether number passes the Luhn mod-10 checksum used by payment
// card numbers. The input must be digits only; anything else fails.
func Luhn(number string) bool {
	if number == "" || !allDigits(number) {
		return false
	}

	sum := 0
	double := false

	// Process digits from right to left, doubling every second one.
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit = digit/10 + digit%10
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}

// abaWeights is the 3-7-1 repeating weight pattern of the ABA routing
// number checksum.
var abaWeights = []int{3, 7, 1, 3, 7, 1, 3, 7, 1}

// ValidRoutingNumber reports whether number is a valid 9-digit US bank
// routing number per the ABA checksum.
func ValidRoutingNumber(number string) bool {
	if len(number) != 9 || !allDigits(number) {
		return false
	}

	sum := 0
	for i := 0; i < len(number); i++ {
		sum += int(number[i]-'0') * abaWeights[i]
	}
	return sum%10 == 0
}
