package normalize

import (
	"net/url"
	"strings"
)

// Domain extracts the canonical host from a website string: a single
// leading "@" is dropped, a missing scheme is assumed to be http, the port
// and a leading "www." are stripped, and the result is lowercased. Input
// with no parseable host comes back empty.
func Domain(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	s = strings.TrimPrefix(s, "@")

	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return ""
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")

	return host
}

// ValidScheme reports whether a website string is acceptable to the strict
// matching variant: it must not declare an explicit scheme other than
// http or https. Scheme-less strings are acceptable.
func ValidScheme(s string) bool {
	s = strings.TrimSpace(s)
	i := strings.Index(s, "://")
	if i < 0 {
		return true
	}
	scheme := strings.ToLower(s[:i])
	return scheme == "http" || scheme == "https"
}
