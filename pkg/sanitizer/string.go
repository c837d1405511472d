package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Separators are the grouping characters users type inside identifiers.
// Any Unicode white space (tab, newline, NBSP) is a separator as well.
const Separators = " -"

// PhoneSeparators extends Separators with the characters used around
// dialling prefixes: "(0532) 123-45-67", "+90 532 ...".
const PhoneSeparators = " -()+"

func Trim(s string) string {
	return strings.TrimSpace(s)
}

// FoldWidth maps full-width and other wide forms to their ASCII
// counterparts, so "０５３２" becomes "0532" and "ＴＲ" becomes "TR".
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// ToUpper upper-cases ASCII letters only. Locale-aware upper-casing would
// turn a Turkish "i" into "İ", which no identifier alphabet contains.
func ToUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}

// RemoveSpaceAndChars removes Unicode white space and every character in chars.
func RemoveSpaceAndChars(s string, chars string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

// RemoveSeparators strips white space and dashes.
func RemoveSeparators(s string) string {
	return RemoveSpaceAndChars(s, Separators)
}

// RemovePhoneSeparators strips white space, dashes, parentheses and plus signs.
func RemovePhoneSeparators(s string) string {
	return RemoveSpaceAndChars(s, PhoneSeparators)
}

// IsDigits reports whether s is non-empty and made only of ASCII digits.
// Checksum arithmetic relies on c - '0' being a value in [0, 9].
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Digits converts an all-digit ASCII string into its digit values.
// The caller must check IsDigits first.
func Digits(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = int(s[i] - '0')
	}
	return out
}
