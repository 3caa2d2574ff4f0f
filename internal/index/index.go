// Package index builds the in-memory reference index the matcher reads.
package index

import (
	"github.com/kyc-tools/companymatch/internal/domain"
	"github.com/kyc-tools/companymatch/internal/normalize"
)

// Index maps normalized company names to registry records and company
// numbers to credit records. It is immutable after Build and therefore safe
// for any number of concurrent readers; refreshing reference data means
// building a new Index and swapping the pointer, never mutating in place.
type Index struct {
	byName   map[string]*domain.RegistryRecord
	byNumber map[string]*domain.CreditRecord
}

// Build constructs an Index from already-loaded reference collections.
//
// Both lookups apply a first-wins policy: a registry record whose
// normalized name collides with an earlier one is ignored, exactly like a
// credit record repeating an earlier company number. A registry record
// whose name normalizes to empty can never be matched and signals broken
// reference data, so Build fails with *domain.InvalidRecordError rather
// than producing a partial index. Credit dates are canonicalized here;
// an unparseable date propagates as *domain.DateFormatError.
func Build(registry []domain.RegistryRecord, credit []domain.CreditRecord) (*Index, error) {
	byName := make(map[string]*domain.RegistryRecord, len(registry))
	for i := range registry {
		rec := &registry[i]
		key := normalize.Name(rec.Name)
		if key == "" {
			return nil, &domain.InvalidRecordError{CompanyNumber: rec.CompanyNumber, Name: rec.Name}
		}
		if _, exists := byName[key]; exists {
			continue
		}
		byName[key] = rec
	}

	byNumber := make(map[string]*domain.CreditRecord, len(credit))
	for _, rec := range credit {
		if _, exists := byNumber[rec.CompanyNumber]; exists {
			continue
		}
		iso, err := normalize.Date(rec.LastDefaultDate)
		if err != nil {
			return nil, err
		}
		rec.LastDefaultDate = iso
		stored := rec
		byNumber[rec.CompanyNumber] = &stored
	}

	return &Index{byName: byName, byNumber: byNumber}, nil
}

// Company returns the registry record for an already-normalized name key.
func (idx *Index) Company(normalizedName string) (*domain.RegistryRecord, bool) {
	rec, ok := idx.byName[normalizedName]
	return rec, ok
}

// Credit returns the credit record for a company number, if the bureau
// feed had one.
func (idx *Index) Credit(companyNumber string) (*domain.CreditRecord, bool) {
	rec, ok := idx.byNumber[companyNumber]
	return rec, ok
}

// Companies reports how many distinct normalized names are indexed.
func (idx *Index) Companies() int { return len(idx.byName) }

// CreditRecords reports how many de-duplicated credit records are indexed.
func (idx *Index) CreditRecords() int { return len(idx.byNumber) }
