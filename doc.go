// Package cleanse is a composable pipeline for normalising, validating and
// cleaning structured text tokens, national ID numbers, passport numbers,
// phone numbers and the like, before they are stored or redisplayed.
//
// The module is organised around three roles:
//
//   - normaliser: bidirectional string transforms, raw input to canonical
//     storage form and canonical form back to display form.
//   - validator: stateless predicates over canonical values, from the
//     always-valid policy through anchored regex structure checks to
//     check-digit verification.
//   - cleaner: the composition of one normaliser and one validator into a
//     single callable with a configurable failure message and error kind,
//     plus an explicit registry keyed by document type.
//
// The checksum package holds the pure check-digit arithmetic (CPF, CNPJ,
// Luhn, ABA routing) and brdoc bundles ready-made cleaners for Brazilian
// document formats.
//
// Everything is stateless after construction and safe for concurrent use;
// no operation performs I/O or blocks.
package cleanse
