package iban

// mod97 returns the ISO 7064 mod-97-10 remainder of an upper-case
// alphanumeric IBAN. The first four characters are moved to the end, letters
// become two-digit numbers (A=10 ... Z=35) and the resulting numeral is
// reduced one digit at a time.
func mod97(s string) int {
	if len(s) < 4 {
		return -1
	}
	rearranged := s[4:] + s[:4]

	rem := 0
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		switch {
		case c >= '0' && c <= '9':
			rem = (rem*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			v := int(c-'A') + 10
			rem = (rem*10 + v/10) % 97
			rem = (rem*10 + v%10) % 97
		default:
			return -1
		}
	}
	return rem
}
