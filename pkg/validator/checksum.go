package validator

import "github.com/oditorium/cleanse/pkg/checksum"

// CPF accepts Brazilian individual taxpayer numbers: eleven digits whose two
// trailing check digits match the weighted mod-11 recomputation from the
// nine data digits.
func CPF() Validator {
	return Func(func(value string) bool {
		return cpfRegex.MatchString(value) && checksum.ValidCPF(value)
	})
}

// CNPJ accepts Brazilian company taxpayer numbers: fourteen digits with two
// valid check digits.
func CNPJ() Validator {
	return Func(func(value string) bool {
		return cnpjRegex.MatchString(value) && checksum.ValidCNPJ(value)
	})
}

// CreditCard accepts payment card numbers: 13 to 19 digits passing the Luhn
// checksum.
func CreditCard() Validator {
	return Func(func(value string) bool {
		return cardRegex.MatchString(value) && checksum.Luhn(value)
	})
}

// RoutingNumber accepts US bank routing numbers: nine digits passing the ABA
// checksum.
func RoutingNumber() Validator {
	return Func(func(value string) bool {
		return abaRegex.MatchString(value) && checksum.ValidRoutingNumber(value)
	})
}
