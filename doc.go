// Package trvalidator validates Turkish national identifiers offline:
// T.C. identification numbers (TCKN), mobile phone numbers, tax numbers
// and IBANs.
//
// Each validator takes loosely formatted input, normalizes it, applies the
// checksum or structure rules of the issuing authority and returns a result
// with a validity flag, a canonical formatted value and a Turkish message
// ready for display.
//
// The functions in this package are thin entry points over the
// per-identifier packages:
//
//   - pkg/tckn   – national identification numbers
//   - pkg/phone  – mobile numbers and carrier lookup
//   - pkg/taxno  – tax identification numbers
//   - pkg/iban   – IBAN mod-97 checksum and bank lookup
//
// pkg/validator adapts all four into composable rules for form validation.
//
// All validators are pure functions over read-only tables and are safe for
// concurrent use.
package trvalidator
