package iban

import "errors"

var (
	ErrEmpty     = errors.New("iban: empty")
	ErrCountry   = errors.New("iban: must start with TR")
	ErrLength    = errors.New("iban: must be 26 characters")
	ErrNotDigits = errors.New("iban: non-digit characters after country code")
	ErrChecksum  = errors.New("iban: checksum mismatch")

	// ErrInvalidComponent is returned by CalculateCheckDigit when a part has
	// the wrong length or contains non-digits.
	ErrInvalidComponent = errors.New("iban: invalid bank code, reserve digit or account number")
)
