package trvalidator

import (
	"github.com/dmitrymomot/trvalidator/pkg/iban"
	"github.com/dmitrymomot/trvalidator/pkg/phone"
	"github.com/dmitrymomot/trvalidator/pkg/taxno"
	"github.com/dmitrymomot/trvalidator/pkg/tckn"
)

type (
	TCKNResult  = tckn.Result
	PhoneResult = phone.Result
	TaxNoResult = taxno.Result
	IBANResult  = iban.Result
)

// ValidateTCKN validates a T.C. identification number.
func ValidateTCKN(input string, opts ...tckn.Option) TCKNResult {
	return tckn.Validate(input, opts...)
}

// ValidateTurkishPhone validates a Turkish mobile number.
func ValidateTurkishPhone(input string) PhoneResult {
	return phone.Validate(input)
}

// ValidateTaxNo validates a 10-digit tax identification number.
func ValidateTaxNo(input string) TaxNoResult {
	return taxno.Validate(input)
}

// FormatTaxNo groups a tax number as "ddd-ddd-ddd-d".
func FormatTaxNo(input string) string {
	return taxno.Format(input)
}

// ValidateTurkishIBAN validates a Turkish IBAN.
func ValidateTurkishIBAN(input string) IBANResult {
	return iban.Validate(input)
}

// FormatIBAN groups an IBAN in blocks of four.
func FormatIBAN(input string) string {
	return iban.Format(input)
}

// GetBankName returns the bank registered for a 5-digit code.
func GetBankName(bankCode string) (string, bool) {
	return iban.BankName(bankCode)
}

// CalculateCheckDigit returns the two IBAN check digits for the given parts.
func CalculateCheckDigit(bankCode, reserveDigit, accountNumber string) (string, error) {
	return iban.CalculateCheckDigit(bankCode, reserveDigit, accountNumber)
}
