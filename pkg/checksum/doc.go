// Package checksum implements the check-digit arithmetic behind document
// number validation: the Brazilian CPF and CNPJ weighted mod-11 schemes, the
// Luhn algorithm used by payment card numbers, and the ABA routing number
// checksum.
//
// All functions operate on plain digit strings using integer arithmetic only.
// They are pure and safe for concurrent use.
//
// The verification helpers (ValidCPF, ValidCNPJ, Luhn, ValidRoutingNumber)
// expect the canonical digits-only form of a number and return false rather
// than fault on anything else; callers that accept raw user input should
// normalise it first. The check-digit helpers (CPFDigits,
// CNPJDigits) expose the underlying arithmetic so that test data and document
// generators can compute the trailing digits from the data digits.
//
// Example:
//
//	checksum.ValidCPF("70600399109") // true
//	d1, d2 := checksum.CPFDigits("706003991")
//	// d1 == 0, d2 == 9
package checksum
