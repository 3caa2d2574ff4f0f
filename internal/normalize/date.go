package normalize

import (
	"time"

	"github.com/kyc-tools/companymatch/internal/domain"
)

// dateLayouts are the accepted reference-data date formats, tried in order.
var dateLayouts = []string{
	"2-Jan-2006",      // 25-Jan-2025
	"January 2, 2006", // January 25, 2025
	"2006-1-2",        // 2025-01-25
}

// Date parses a reference-data date and returns it in ISO 8601 form
// (YYYY-MM-DD). An empty input stays empty, but a non-empty string that
// matches none of the accepted layouts is a data-quality fault and returns
// a *domain.DateFormatError instead of degrading to empty.
func Date(s string) (string, error) {
	if s == "" {
		return "", nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}

	return "", &domain.DateFormatError{Value: s}
}
