package card

import "strings"

var separatorReplacer = strings.NewReplacer(" ", "", "-", "")

// Normalize strips the cosmetic separators (space and hyphen) from a raw card
// number. Any other character is left in place.
func Normalize(raw string) string {
	return separatorReplacer.Replace(raw)
}

// IsDigits reports whether s is non-empty and made of ASCII decimal digits only.
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
