package checksum

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func digitAt(s string, i int) int {
	return int(s[i] - '0')
}

func digitChar(d int) string {
	return string(rune('0' + d))
}
