// Package taxno validates 10-digit Turkish tax identification numbers
// (Vergi Kimlik Numarası).
//
// Validate strips spaces and dashes, then checks in order: empty input,
// digits only, exact length, no leading zero and finally the weighted
// checksum over the first nine digits. Result.Checksum is nil when a
// structural check failed before the checksum was computed, false on a
// checksum mismatch and true on success.
//
//	res := taxno.Validate("123 456 789 1")
//	// res.Valid == true, res.Formatted == "123-456-789-1"
package taxno
