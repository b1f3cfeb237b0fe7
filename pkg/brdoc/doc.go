// Package brdoc provides ready-made cleaners for Brazilian document formats:
// CPF and CNPJ taxpayer numbers (with check-digit verification), passport
// and ID card numbers, fixed and mobile phone numbers, and post codes, plus
// a payment card cleaner with Luhn verification.
//
// Each constructor returns a *cleaner.Cleaner wired with the matching
// normaliser and validator and a sensible failure message; the message and
// error kind can be replaced with cleaner options:
//
//	clean := brdoc.CPF(cleaner.WithMessage("CPF inválido"))
//	canonical, err := clean.Execute("697.200.105-68") // "69720010568"
//	clean.Format(canonical)                           // "697.200.105-68"
//
// NewRegistry returns a registry preloaded with every preset under the Doc*
// keys, the table a form layer consults to resolve a field's document type.
package brdoc
