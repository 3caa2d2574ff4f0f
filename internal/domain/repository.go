package domain

import "context"

// RegistrySource defines the interface for loading registry records.
// This abstracts away the specific implementations (e.g., JSON files,
// PostgreSQL).
type RegistrySource interface {
	// RegistryRecords loads the full company registry.
	RegistryRecords(ctx context.Context) ([]RegistryRecord, error)
}

// CreditSource defines the interface for loading raw credit-bureau records.
type CreditSource interface {
	// CreditRecords loads the full credit feed, duplicates and all.
	// De-duplication is the index builder's job.
	CreditRecords(ctx context.Context) ([]CreditRecord, error)
}

// ResultCache defines the interface for caching match results by query key.
// Implementations are best-effort: a cache fault must never fail a lookup.
type ResultCache interface {
	// Get returns the cached result for key, or nil on a miss.
	Get(ctx context.Context, key string) (*MatchResult, error)

	// Set stores result under key, subject to the cache's own TTL policy.
	Set(ctx context.Context, key string, result MatchResult) error
}
