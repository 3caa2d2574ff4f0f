// Package normalize holds the canonicalization functions the matching
// pipeline runs on both reference and query data. Every function is pure:
// the empty string stands in for a missing value and always propagates to
// an empty result rather than an error (dates are the one exception, see
// Date).
package normalize

import (
	"strings"
	"unicode"
)

// legalSuffixes are the trailing legal-entity tokens stripped from company
// names. At most one is removed, and only as a whole trailing token.
var legalSuffixes = map[string]struct{}{
	"group": {},
	"inc":   {},
	"llc":   {},
	"ltd":   {},
	"plc":   {},
}

// Name canonicalizes a company name for exact-match comparison: lowercase,
// whitespace collapsed, hyphens/underscores treated as spaces, one trailing
// legal suffix dropped, "&" spelled out, and all remaining punctuation
// removed. Idempotent on already-canonical input.
func Name(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Fields splits on any whitespace run, including \n, \r and \t.
	fields := strings.Fields(s)
	if n := len(fields); n > 0 {
		if _, ok := legalSuffixes[fields[n-1]]; ok {
			fields = fields[:n-1]
		}
	}
	s = strings.Join(fields, " ")

	// Suffix removal first: a name ending in "& llc" must still come out
	// with "and" in place of the ampersand.
	s = strings.ReplaceAll(s, "&", "and")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}
