// Package phone validates Turkish mobile phone numbers and identifies the
// carrier from the operator prefix.
//
// Input is accepted in the loose forms people actually type:
// "0532 123 45 67", "(0532) 123-45-67", "+90 532 123 45 67" or
// "905321234567". Spaces, dashes, parentheses and plus signs are removed and
// a leading "90" country code is collapsed into the domestic leading zero
// before validation.
//
// Only mobile numbers are accepted (second digit 5). The three digits after
// the leading zero select the carrier; unknown prefixes are rejected.
// Valid numbers are reported in E.164 form ("+905321234567").
//
// Result.Err carries a package sentinel for machine-readable handling.
package phone
