// Package iban validates Turkish International Bank Account Numbers.
//
// A Turkish IBAN is 26 characters long:
//
//	TR kk BBBBB r AAAAAAAAAAAAAAAA
//
// where kk are the ISO 7064 mod-97-10 check digits, BBBBB the bank code,
// r a reserve digit (always 0 today) and A the 16-digit account number.
//
// Validate accepts spaces, dashes and lower case, and reports the first of:
// empty input, missing "TR" prefix, wrong length, non-digits after "TR",
// checksum mismatch. On success the bank code, account number, check digits
// and a 4-character grouped form are returned, together with the bank name
// when the code is known. An unknown bank code is not an error.
//
//	res := iban.Validate("tr33 0006 1005 1978 6457 8413 26")
//	// res.BankName == "Türkiye İş Bankası A.Ş."
//
// The checksum is computed by incremental modular reduction over the
// numeral string, so no big-integer arithmetic is involved.
package iban
