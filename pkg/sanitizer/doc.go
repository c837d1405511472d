// Package sanitizer provides the small set of string normalisation helpers
// shared by the Turkish identifier validators.
//
// Raw user input for identifiers arrives in many shapes: grouped with spaces
// or dashes, wrapped in parentheses, pasted in full-width form from a PDF or
// an East-Asian input method, or in lower case. The helpers here bring such
// input into a canonical ASCII form before any structural check runs.
//
// The functions are grouped conceptually into two areas:
//
//   - Strings – trimming, width folding, separator removal, upper-casing and
//     an ASCII-only digit test.
//
//   - Masking – routines that hide the middle of personal identifiers before
//     they are logged or rendered.
//
// The package is completely stateless. The higher-order Apply and Compose
// helpers allow the creation of normalisation pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.FoldWidth,
//	    sanitizer.RemoveSeparators,
//	)
//	digits := clean("  ０５３２ 123-45-67 ")
//	// digits == "05321234567"
package sanitizer
