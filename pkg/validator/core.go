package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is one failed rule. Message carries the Turkish text from
// the identifier package; TranslationKey and TranslationValues let callers
// with their own catalog render it differently.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any

	// Cause is the sentinel reported by the underlying validator, if any.
	Cause error
}

// ValidationErrors collects the failed rules of one Apply call, in rule order.
type ValidationErrors []ValidationError

// Error joins the field messages: "validation failed: tckn: Geçersiz T.C. kimlik numarası".
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports ErrValidationFailed for non-empty collections.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed && len(ve) > 0
}

// Unwrap exposes the causes of the individual errors to errors.Is/As.
func (ve ValidationErrors) Unwrap() []error {
	var causes []error
	for _, err := range ve {
		if err.Cause != nil {
			causes = append(causes, err.Cause)
		}
	}
	return causes
}

// Add appends err, typically when merging results from several Apply calls.
func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether field failed at least one rule.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field, e.g. the IBAN checksum message
// for "iban".
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// GetErrors returns the full errors for field, Cause and translation data included.
func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// Fields lists the failed fields once each, in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// IsEmpty reports whether no rule failed.
func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule pairs a check with the error reported when it fails. The identifier
// rules evaluate their validator up front, so Check only reads the verdict.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns ValidationErrors for the failures, or nil.
// All rules run; a failing TCKN does not hide a failing IBAN.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// Optional skips rule when value is blank.
// Use it for fields that may be left empty but must be valid when filled.
func Optional(value string, rule Rule) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return true
			}
			return rule.Check()
		},
		Error: rule.Error,
	}
}

// ExtractValidationErrors returns the ValidationErrors inside err, or nil if
// err did not come from Apply.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

// IsValidationError reports whether err carries ValidationErrors, including
// when wrapped with fmt.Errorf("%w").
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
