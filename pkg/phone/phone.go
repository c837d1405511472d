package phone

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/trvalidator/pkg/sanitizer"
)

// Length is the number of digits in a domestic number, leading zero included.
const Length = 11

// Result describes the outcome of Validate.
// Formatted and Operator are set iff Valid is true. Message is always set.
type Result struct {
	Valid     bool   `json:"valid" yaml:"valid"`
	Formatted string `json:"formatted,omitempty" yaml:"formatted,omitempty"`
	Operator  string `json:"operator,omitempty" yaml:"operator,omitempty"`
	Message   string `json:"message" yaml:"message"`

	// Err is the sentinel behind Message, nil when valid.
	Err error `json:"-" yaml:"-"`
}

var strip = sanitizer.Compose(
	sanitizer.FoldWidth,
	sanitizer.RemovePhoneSeparators,
)

// Clean removes separators and collapses a leading "90" into "0".
// "+90 (532) 123-45-67" becomes "05321234567".
func Clean(input string) string {
	s := strip(input)
	if rest, ok := strings.CutPrefix(s, "90"); ok {
		return "0" + rest
	}
	return s
}

// Validate normalizes input and checks it is a Turkish mobile number with a
// known operator prefix.
func Validate(input string) Result {
	if strings.TrimSpace(input) == "" {
		return fail(ErrEmpty, msgEmpty)
	}

	cleaned := Clean(input)

	switch {
	case !sanitizer.IsDigits(cleaned):
		return fail(ErrNotDigits, msgNotDigits)
	case utf8.RuneCountInString(cleaned) < Length:
		return fail(ErrTooShort, msgTooShort)
	case utf8.RuneCountInString(cleaned) > Length:
		return fail(ErrTooLong, msgTooLong)
	case cleaned[0] != '0':
		return fail(ErrLeadingDigit, msgLeadingDigit)
	case cleaned[1] != '5':
		return fail(ErrNotMobile, msgNotMobile)
	}

	operator, ok := Operator(cleaned[1:4])
	if !ok {
		return fail(ErrUnknownOperator, msgUnknownOperator)
	}

	return Result{
		Valid:     true,
		Formatted: "+90" + cleaned[1:],
		Operator:  operator,
		Message:   msgValid,
	}
}

func fail(err error, msg string) Result {
	return Result{Valid: false, Message: msg, Err: err}
}
