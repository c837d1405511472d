package taxno

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/trvalidator/pkg/sanitizer"
)

// Length is the number of digits in a tax number.
const Length = 10

const (
	msgEmpty       = "Vergi numarası boş olamaz"
	msgNotDigits   = "Vergi numarası sadece rakam içermelidir"
	msgTooShort    = "Vergi numarası 10 haneli olmalıdır"
	msgTooLong     = "Vergi numarası 10 haneden uzun olamaz"
	msgLeadingZero = "Vergi numarası 0 ile başlayamaz"
	msgChecksum    = "Geçersiz vergi numarası"
	msgValid       = "Geçerli vergi numarası"
)

// Result describes the outcome of Validate.
type Result struct {
	Valid     bool   `json:"valid" yaml:"valid"`
	Formatted string `json:"formatted,omitempty" yaml:"formatted,omitempty"`
	Message   string `json:"message" yaml:"message"`
	Checksum  *bool  `json:"checksum" yaml:"checksum"`

	// Err is the sentinel behind Message, nil when valid.
	Err error `json:"-" yaml:"-"`
}

var clean = sanitizer.Compose(sanitizer.FoldWidth, sanitizer.RemoveSeparators)

// Validate checks input against the structural rules and the tax number checksum.
func Validate(input string) Result {
	if strings.TrimSpace(input) == "" {
		return fail(ErrEmpty, msgEmpty, nil)
	}

	s := clean(input)

	switch {
	case !sanitizer.IsDigits(s):
		return fail(ErrNotDigits, msgNotDigits, nil)
	case utf8.RuneCountInString(s) < Length:
		return fail(ErrTooShort, msgTooShort, nil)
	case utf8.RuneCountInString(s) > Length:
		return fail(ErrTooLong, msgTooLong, nil)
	case s[0] == '0':
		return fail(ErrLeadingZero, msgLeadingZero, nil)
	}

	d := sanitizer.Digits(s)
	if checkDigit(d[:9]) != d[9] {
		return fail(ErrChecksum, msgChecksum, boolPtr(false))
	}

	return Result{
		Valid:     true,
		Formatted: group(s),
		Message:   msgValid,
		Checksum:  boolPtr(true),
	}
}

// IsValid is a shorthand for Validate(input).Valid.
func IsValid(input string) bool {
	return Validate(input).Valid
}

// Format groups a 10-digit tax number as "ddd-ddd-ddd-d". Spaces and dashes
// in input are ignored; anything else that is not 10 digits is returned
// unchanged. No checksum is verified.
func Format(input string) string {
	s := clean(input)
	if len(s) != Length || !sanitizer.IsDigits(s) {
		return input
	}
	return group(s)
}

// CheckDigit returns the 10th digit for a 9-digit prefix.
func CheckDigit(prefix string) (int, error) {
	if len(prefix) != 9 || !sanitizer.IsDigits(prefix) {
		return 0, ErrInvalidPrefix
	}
	return checkDigit(sanitizer.Digits(prefix)), nil
}

// checkDigit implements the weighted sum over the first nine digits:
// each digit is shifted by (10 - position) mod 10, a result of 9 counts as 0,
// and the check digit tops the total up to the next multiple of ten.
func checkDigit(d []int) int {
	total := 0
	for i := 0; i < 9; i++ {
		v := (d[i] + (10 - i)) % 10
		if v == 9 {
			v = 0
		}
		total += v
	}
	return (10 - total%10) % 10
}

func group(s string) string {
	return s[0:3] + "-" + s[3:6] + "-" + s[6:9] + "-" + s[9:]
}

func fail(err error, msg string, checksum *bool) Result {
	return Result{Valid: false, Message: msg, Checksum: checksum, Err: err}
}

func boolPtr(b bool) *bool { return &b }
