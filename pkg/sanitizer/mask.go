package sanitizer

import "strings"

// MaskString keeps visibleChars characters at each end and stars out the
// middle: "TR33******************1326" for an IBAN with visibleChars 4.
// Strings no longer than 2*visibleChars are starred out entirely.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 1
	}

	runes := []rune(s)
	length := len(runes)

	if length <= visibleChars*2 {
		return strings.Repeat("*", length)
	}

	start := string(runes[0:visibleChars])
	end := string(runes[length-visibleChars:])
	middle := strings.Repeat("*", length-visibleChars*2)

	return start + middle + end
}

// MaskTail hides everything except the last visible characters.
// National ID numbers are masked this way: "*********46".
func MaskTail(s string, visible int) string {
	runes := []rune(s)
	if visible < 0 {
		visible = 0
	}
	if len(runes) <= visible {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-visible) + string(runes[len(runes)-visible:])
}
