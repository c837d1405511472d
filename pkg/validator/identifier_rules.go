package validator

import (
	"github.com/dmitrymomot/trvalidator/pkg/iban"
	"github.com/dmitrymomot/trvalidator/pkg/phone"
	"github.com/dmitrymomot/trvalidator/pkg/taxno"
	"github.com/dmitrymomot/trvalidator/pkg/tckn"
)

// ValidTCKN validates a Turkish national identification number.
// Options customise the reported messages the same way tckn.Validate does.
func ValidTCKN(field, value string, opts ...tckn.Option) Rule {
	res := tckn.Validate(value, opts...)
	return identifierRule(field, "validation.tckn", res.IsValid, res.Error, res.Err)
}

// ValidTurkishPhone validates a Turkish mobile phone number.
func ValidTurkishPhone(field, value string) Rule {
	res := phone.Validate(value)
	return identifierRule(field, "validation.phone", res.Valid, res.Message, res.Err)
}

// ValidTaxNo validates a 10-digit Turkish tax identification number.
func ValidTaxNo(field, value string) Rule {
	res := taxno.Validate(value)
	return identifierRule(field, "validation.tax_no", res.Valid, res.Message, res.Err)
}

// ValidTurkishIBAN validates a Turkish IBAN including its mod-97 checksum.
func ValidTurkishIBAN(field, value string) Rule {
	res := iban.Validate(value)
	return identifierRule(field, "validation.iban", res.Valid, res.Message, res.Err)
}

func identifierRule(field, key string, valid bool, message string, cause error) Rule {
	values := map[string]any{"field": field}
	if cause != nil {
		values["reason"] = cause.Error()
	}

	return Rule{
		Check: func() bool { return valid },
		Error: ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: values,
			Cause:             cause,
		},
	}
}
