package tckn

import (
	"strconv"
	"unicode/utf8"

	"github.com/dmitrymomot/trvalidator/pkg/sanitizer"
)

// Length is the number of digits in a TCKN.
const Length = 11

// Result describes the outcome of Validate.
// Error is set iff IsValid is false.
type Result struct {
	IsValid bool   `json:"isValid" yaml:"isValid"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`

	// Err is the sentinel behind Error, nil when valid.
	Err error `json:"-" yaml:"-"`
}

var normalize = sanitizer.Compose(sanitizer.Trim, sanitizer.FoldWidth)

// Validate checks input against the structural and checksum rules for a TCKN.
// The first failing rule wins; see the package documentation for the order.
func Validate(input string, opts ...Option) Result {
	msg := resolve(opts)
	s := normalize(input)
	n := utf8.RuneCountInString(s)

	switch {
	case s == "":
		return fail(ErrEmpty, msg.Empty)
	case n > Length:
		return fail(ErrTooLong, msg.TooLong)
	case n < Length:
		return fail(ErrTooShort, msg.TooShort)
	case s[0] == '0':
		return fail(ErrLeadingZero, msg.LeadingZero)
	case !sanitizer.IsDigits(s):
		return fail(ErrNotDigits, msg.NotDigits)
	}

	d := sanitizer.Digits(s)
	c10, c11 := checksums(d[:9])
	if d[9] != c10 || d[10] != c11 {
		return fail(ErrChecksum, msg.Algorithm)
	}

	return Result{IsValid: true}
}

// IsValid is a shorthand for Validate(input).IsValid.
func IsValid(input string) bool {
	return Validate(input).IsValid
}

// CheckDigits returns the two checksum digits for a 9-digit prefix, so that
// prefix+CheckDigits(prefix) is a valid TCKN. Useful for test fixtures.
func CheckDigits(prefix string) (string, error) {
	if len(prefix) != 9 || !sanitizer.IsDigits(prefix) || prefix[0] == '0' {
		return "", ErrInvalidPrefix
	}
	c10, c11 := checksums(sanitizer.Digits(prefix))
	return strconv.Itoa(c10) + strconv.Itoa(c11), nil
}

// checksums computes the 10th and 11th digits from the first nine.
func checksums(d []int) (int, int) {
	odd := d[0] + d[2] + d[4] + d[6] + d[8]
	even := d[1] + d[3] + d[5] + d[7]

	c10 := (odd*7 - even) % 10
	if c10 < 0 {
		c10 += 10
	}

	sum := c10
	for _, v := range d {
		sum += v
	}
	return c10, sum % 10
}

func fail(err error, msg string) Result {
	return Result{IsValid: false, Error: msg, Err: err}
}
