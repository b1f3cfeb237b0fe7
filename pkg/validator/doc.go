// Package validator provides stateless predicates over canonical string
// tokens. A Validator answers a single question, is this value acceptable,
// and never faults: malformed input yields false, not an error.
//
// Three families of validators are provided:
//
//   - Any, the always-true default policy.
//   - Structural validators built on anchored regular expressions: the whole
//     value must match the pattern, so partial matches can never pass.
//   - Checksum validators (CPF, CNPJ, CreditCard, RoutingNumber) that combine
//     a structural shape check with recomputation of the document's check
//     digits via the checksum package.
//
// Validators operate on canonical values, the form produced by the
// normaliser package. Formatting characters such as dots and dashes are
// expected to have been stripped already; a value that still carries them
// fails the structural check.
//
//	v := validator.CPF()
//	v.Test("70600399109")    // true
//	v.Test("70600399108")    // false: bad check digit
//	v.Test("706.003.991-09") // false: not canonical
//
// All validators are immutable after construction and safe for concurrent
// use.
package validator
