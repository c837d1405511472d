// Package tckn validates Turkish Republic identification numbers
// (T.C. Kimlik Numarası).
//
// A TCKN is an 11-digit number that never starts with zero. Its last two
// digits are checksums over the first nine and first ten digits
// respectively. Validate runs the structural checks in a fixed order and
// reports the first failure:
//
//  1. empty input
//  2. longer than 11 characters
//  3. shorter than 11 characters
//  4. leading zero
//  5. non-digit characters
//  6. 10th digit checksum
//  7. 11th digit checksum
//
// # Usage
//
//	res := tckn.Validate("10000000146")
//	if !res.IsValid {
//	    fmt.Println(res.Error)
//	}
//
// Messages default to Turkish and can be overridden field by field:
//
//	res := tckn.Validate(input, tckn.WithMessages(tckn.Messages{
//	    Algorithm: "invalid national id",
//	}))
//
// # Error Handling
//
// Result.Err holds one of the package sentinels (ErrEmpty, ErrTooLong,
// ErrTooShort, ErrLeadingZero, ErrNotDigits, ErrChecksum) so callers can
// branch with errors.Is instead of comparing localized text.
//
// The package is stateless and safe for concurrent use.
package tckn
