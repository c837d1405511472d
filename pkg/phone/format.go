package phone

import "github.com/nyaruka/phonenumbers"

const region = "TR"

// FormatNational renders a valid mobile number in national notation,
// e.g. "0532 123 45 67". Invalid input is returned unchanged.
func FormatNational(input string) string {
	res := Validate(input)
	if !res.Valid {
		return input
	}

	num, err := phonenumbers.Parse(res.Formatted, region)
	if err != nil {
		return input
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}

// FormatInternational renders a valid mobile number as "+90 532 123 45 67".
// Invalid input is returned unchanged.
func FormatInternational(input string) string {
	res := Validate(input)
	if !res.Valid {
		return input
	}

	num, err := phonenumbers.Parse(res.Formatted, region)
	if err != nil {
		return input
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}
