package normalize

import (
	"strings"
	"unicode"
)

// Postcode uppercases a postcode and removes every whitespace character,
// wherever it appears, so "SW1A 1AA" and "sw1a1aa" compare equal.
func Postcode(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
