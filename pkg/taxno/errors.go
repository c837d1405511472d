package taxno

import "errors"

var (
	ErrEmpty       = errors.New("taxno: empty")
	ErrNotDigits   = errors.New("taxno: contains non-digit characters")
	ErrTooShort    = errors.New("taxno: shorter than 10 digits")
	ErrTooLong     = errors.New("taxno: longer than 10 digits")
	ErrLeadingZero = errors.New("taxno: starts with zero")
	ErrChecksum    = errors.New("taxno: checksum mismatch")

	// ErrInvalidPrefix is returned by CheckDigit for malformed input.
	ErrInvalidPrefix = errors.New("taxno: prefix must be 9 digits")
)
