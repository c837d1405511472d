package tckn

import "errors"

var (
	ErrEmpty       = errors.New("tckn: empty")
	ErrTooShort    = errors.New("tckn: shorter than 11 digits")
	ErrTooLong     = errors.New("tckn: longer than 11 digits")
	ErrLeadingZero = errors.New("tckn: starts with zero")
	ErrNotDigits   = errors.New("tckn: contains non-digit characters")
	ErrChecksum    = errors.New("tckn: checksum mismatch")

	// ErrInvalidPrefix is returned by CheckDigits for malformed input.
	ErrInvalidPrefix = errors.New("tckn: prefix must be 9 digits not starting with zero")
)
