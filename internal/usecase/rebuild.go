package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kyc-tools/companymatch/internal/adapter/metrics"
	"github.com/kyc-tools/companymatch/internal/domain"
	"github.com/kyc-tools/companymatch/internal/index"
)

// RebuildIndexUseCase loads reference data from the configured sources and
// builds a fresh immutable index. It never touches the index in service;
// the caller decides when to swap the result in, so a failed rebuild
// leaves the previous index untouched.
type RebuildIndexUseCase struct {
	registry domain.RegistrySource
	credit   domain.CreditSource
	metrics  *metrics.MatchMetrics
	logger   *slog.Logger
}

// NewRebuildIndexUseCase creates a new use case for (re)building the index.
func NewRebuildIndexUseCase(registry domain.RegistrySource, credit domain.CreditSource, m *metrics.MatchMetrics, logger *slog.Logger) *RebuildIndexUseCase {
	return &RebuildIndexUseCase{
		registry: registry,
		credit:   credit,
		metrics:  m,
		logger:   logger,
	}
}

// Rebuild loads both reference feeds and constructs a new index.
func (uc *RebuildIndexUseCase) Rebuild(ctx context.Context) (*index.Index, error) {
	registryRecords, err := uc.registry.RegistryRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading registry records: %w", err)
	}

	creditRecords, err := uc.credit.CreditRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading credit records: %w", err)
	}

	idx, err := index.Build(registryRecords, creditRecords)
	if err != nil {
		return nil, fmt.Errorf("building reference index: %w", err)
	}

	if uc.metrics != nil {
		uc.metrics.IndexRebuildsTotal.Inc()
	}
	uc.logger.Info("reference index built",
		"companies", idx.Companies(),
		"credit_records", idx.CreditRecords(),
	)

	return idx, nil
}
