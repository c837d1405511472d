package iban

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/trvalidator/pkg/sanitizer"
)

const (
	// Length is the number of characters in a Turkish IBAN.
	Length = 26

	// CountryCode prefixes every Turkish IBAN.
	CountryCode = "TR"
)

const (
	msgEmpty     = "IBAN boş olamaz"
	msgCountry   = "IBAN TR ile başlamalıdır"
	msgLength    = "IBAN 26 karakter olmalıdır"
	msgNotDigits = "IBAN TR sonrası sadece rakam içermelidir"
	msgChecksum  = "Geçersiz IBAN"
	msgValid     = "Geçerli IBAN"
)

// Result describes the outcome of Validate.
//
// When Valid is true every derived field is set except BankName, which stays
// empty for bank codes missing from the registry. When Valid is false only
// CheckDigits and ChecksumValid may be set, and only if the structure was
// sound but the checksum failed.
type Result struct {
	Valid         bool   `json:"valid" yaml:"valid"`
	Formatted     string `json:"formatted,omitempty" yaml:"formatted,omitempty"`
	BankCode      string `json:"bankCode,omitempty" yaml:"bankCode,omitempty"`
	BankName      string `json:"bankName,omitempty" yaml:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty" yaml:"accountNumber,omitempty"`
	CheckDigits   string `json:"checkDigits,omitempty" yaml:"checkDigits,omitempty"`
	ChecksumValid *bool  `json:"checksumValid" yaml:"checksumValid"`
	Message       string `json:"message" yaml:"message"`

	// Err is the sentinel behind Message, nil when valid.
	Err error `json:"-" yaml:"-"`
}

var clean = sanitizer.Compose(
	sanitizer.FoldWidth,
	sanitizer.RemoveSeparators,
	sanitizer.ToUpper,
)

// Validate checks that input is a structurally sound Turkish IBAN with a
// correct mod-97 checksum.
func Validate(input string) Result {
	if strings.TrimSpace(input) == "" {
		return fail(ErrEmpty, msgEmpty)
	}

	s := clean(input)

	switch {
	case !strings.HasPrefix(s, CountryCode):
		return fail(ErrCountry, msgCountry)
	case utf8.RuneCountInString(s) != Length:
		return fail(ErrLength, msgLength)
	case !sanitizer.IsDigits(s[2:]):
		return fail(ErrNotDigits, msgNotDigits)
	}

	checkDigits := s[2:4]

	if mod97(s) != 1 {
		res := fail(ErrChecksum, msgChecksum)
		res.CheckDigits = checkDigits
		res.ChecksumValid = boolPtr(false)
		return res
	}

	bankCode := s[4:9]
	bankName, _ := BankName(bankCode)

	return Result{
		Valid:         true,
		Formatted:     group(s),
		BankCode:      bankCode,
		BankName:      bankName,
		AccountNumber: s[10:26],
		CheckDigits:   checkDigits,
		ChecksumValid: boolPtr(true),
		Message:       msgValid,
	}
}

// IsValid is a shorthand for Validate(input).Valid.
func IsValid(input string) bool {
	return Validate(input).Valid
}

// Format groups a 26-character IBAN in blocks of four separated by spaces:
// "TR33 0006 1005 1978 6457 8413 26". Input whose cleaned length is not 26
// is returned unchanged. No checksum is verified.
func Format(input string) string {
	s := clean(input)
	if utf8.RuneCountInString(s) != Length {
		return input
	}
	return group(s)
}

// CalculateCheckDigit returns the two check digits for the given bank code
// (5 digits), reserve digit (1 digit) and account number (16 digits).
func CalculateCheckDigit(bankCode, reserveDigit, accountNumber string) (string, error) {
	if len(bankCode) != 5 || !sanitizer.IsDigits(bankCode) ||
		len(reserveDigit) != 1 || !sanitizer.IsDigits(reserveDigit) ||
		len(accountNumber) != 16 || !sanitizer.IsDigits(accountNumber) {
		return "", ErrInvalidComponent
	}

	rem := mod97(CountryCode + "00" + bankCode + reserveDigit + accountNumber)
	return fmt.Sprintf("%02d", 98-rem), nil
}

// Build assembles a complete IBAN with correct check digits.
func Build(bankCode, reserveDigit, accountNumber string) (string, error) {
	check, err := CalculateCheckDigit(bankCode, reserveDigit, accountNumber)
	if err != nil {
		return "", err
	}
	return CountryCode + check + bankCode + reserveDigit + accountNumber, nil
}

func group(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + len(runes)/4)
	for i := 0; i < len(runes); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(runes[i:min(i+4, len(runes))]))
	}
	return b.String()
}

func fail(err error, msg string) Result {
	return Result{Valid: false, Message: msg, Err: err}
}

func boolPtr(b bool) *bool { return &b }
