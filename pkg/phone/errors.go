package phone

import "errors"

var (
	ErrEmpty           = errors.New("phone: empty")
	ErrNotDigits       = errors.New("phone: contains non-digit characters")
	ErrTooShort        = errors.New("phone: shorter than 11 digits")
	ErrTooLong         = errors.New("phone: longer than 11 digits")
	ErrLeadingDigit    = errors.New("phone: must start with 0")
	ErrNotMobile       = errors.New("phone: not a mobile number")
	ErrUnknownOperator = errors.New("phone: unknown operator code")
)
