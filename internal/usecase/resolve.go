package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/kyc-tools/companymatch/internal/adapter/metrics"
	"github.com/kyc-tools/companymatch/internal/domain"
	"github.com/kyc-tools/companymatch/internal/index"
	"github.com/kyc-tools/companymatch/internal/matcher"
	"github.com/kyc-tools/companymatch/internal/normalize"
)

// ResolveUseCase handles the business logic for resolving one company
// query: cache lookup, match against the active index, metrics, and a
// best-effort cache write-back.
//
// The active index lives behind an atomic pointer so a rebuilt index can
// be swapped in while lookups keep running; a lookup always sees one
// complete index, never a half-built one.
type ResolveUseCase struct {
	idx     atomic.Pointer[index.Index]
	cache   domain.ResultCache
	metrics *metrics.MatchMetrics
	logger  *slog.Logger
	opts    []matcher.Option
}

// NewResolveUseCase creates a new ResolveUseCase. The cache may be nil.
func NewResolveUseCase(idx *index.Index, cache domain.ResultCache, m *metrics.MatchMetrics, logger *slog.Logger, opts ...matcher.Option) *ResolveUseCase {
	uc := &ResolveUseCase{
		cache:   cache,
		metrics: m,
		logger:  logger,
		opts:    opts,
	}
	uc.SwapIndex(idx)
	return uc
}

// SwapIndex atomically replaces the active reference index.
func (uc *ResolveUseCase) SwapIndex(idx *index.Index) {
	uc.idx.Store(idx)
	if uc.metrics != nil {
		uc.metrics.IndexCompanies.Set(float64(idx.Companies()))
		uc.metrics.IndexCreditRecords.Set(float64(idx.CreditRecords()))
	}
}

// Resolve matches one query and enriches it with credit data. Cache
// failures are logged and ignored; the only error surfaced to the caller
// is a reference-data fault from the matcher.
func (uc *ResolveUseCase) Resolve(ctx context.Context, query domain.Query) (domain.MatchResult, error) {
	key := cacheKey(query)

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, key)
		switch {
		case err != nil:
			uc.logger.Warn("result cache read failed, resolving without cache", "error", err)
		case cached != nil:
			if uc.metrics != nil {
				uc.metrics.CacheHits.Inc()
			}
			return *cached, nil
		default:
			if uc.metrics != nil {
				uc.metrics.CacheMisses.Inc()
			}
		}
	}

	result, err := matcher.Find(query, uc.idx.Load(), uc.opts...)
	if err != nil {
		uc.logger.Error("lookup hit a reference data fault", "error", err, "name", query.Name)
		if uc.metrics != nil {
			uc.metrics.LookupsTotal.WithLabelValues("error").Inc()
		}
		return result, err
	}

	if uc.metrics != nil {
		uc.metrics.LookupsTotal.WithLabelValues(string(result.MatchConfidence)).Inc()
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, result); err != nil {
			uc.logger.Warn("result cache write failed", "error", err)
		}
	}

	return result, nil
}

// cacheKey derives a stable cache key from the normalized query fields, so
// "ACME Corp" and "acme corp." share an entry.
func cacheKey(query domain.Query) string {
	return strings.Join([]string{
		normalize.Name(query.Name),
		normalize.Domain(query.Website),
		normalize.Postcode(query.Postcode),
	}, "|")
}
