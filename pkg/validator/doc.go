// Package validator turns the Turkish identifier validators into composable
// Rule values that can be evaluated together, so a form with a national ID,
// a phone number, a tax number and an IBAN reports every problem in one
// error return.
//
// # Architecture
//
// A Rule couples a boolean Check function with translation-friendly error
// metadata. Apply evaluates rules and aggregates failures into a
// ValidationErrors slice that satisfies the error interface.
//
// The identifier rules (ValidTCKN, ValidTurkishPhone, ValidTaxNo,
// ValidTurkishIBAN) run the corresponding validator once when the rule is
// built. The resulting Turkish message becomes ValidationError.Message and
// the package sentinel (for example tckn.ErrChecksum) becomes
// ValidationError.Cause.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidTCKN("national_id", form.NationalID),
//	    validator.Optional(form.Phone, validator.ValidTurkishPhone("phone", form.Phone)),
//	    validator.ValidTurkishIBAN("iban", form.IBAN),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, f := range verrs.Fields() {
//	        // render verrs.Get(f) next to the input
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements Is and Unwrap, so errors.Is(err,
// ErrValidationFailed) detects any validation failure and
// errors.Is(err, iban.ErrChecksum) detects a specific cause.
package validator
