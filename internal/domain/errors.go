package domain

import "fmt"

// InvalidRecordError reports a registry record whose name normalizes to
// empty. Such a record can never be matched, so it aborts index
// construction rather than being skipped.
type InvalidRecordError struct {
	CompanyNumber string
	Name          string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("registry record %s: company name %q normalizes to empty", e.CompanyNumber, e.Name)
}

// DateFormatError reports a date string that matches none of the accepted
// reference-data formats.
type DateFormatError struct {
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("unrecognized date format: %q", e.Value)
}

// CreditDataError reports a credit field that is non-empty but not numeric.
// A malformed bureau value is surfaced, never silently coerced to null.
type CreditDataError struct {
	CompanyNumber string
	Field         string
	Value         string
}

func (e *CreditDataError) Error() string {
	return fmt.Sprintf("credit record %s: field %s has non-numeric value %q", e.CompanyNumber, e.Field, e.Value)
}
