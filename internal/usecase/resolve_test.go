package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/kyc-tools/companymatch/internal/domain"
	"github.com/kyc-tools/companymatch/internal/domain/mocks"
	"github.com/kyc-tools/companymatch/internal/index"
)

func ptr(s string) *string { return &s }

func testIndex(t *testing.T) *index.Index {
	t.Helper()
	idx, err := index.Build(
		[]domain.RegistryRecord{{
			CompanyNumber: "123",
			Name:          "Acme Corp",
			Domain:        ptr("acme.com"),
			Address:       domain.Address{Postcode: ptr("SW1A 1AA")},
		}},
		[]domain.CreditRecord{
			{CompanyNumber: "123", CreditScore: "750", TradeLines: "4", LastDefaultDate: "25-Jan-2025"},
		},
	)
	if err != nil {
		t.Fatalf("failed to build index: %v", err)
	}
	return idx
}

func TestResolveUseCase_Resolve(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	query := domain.Query{Name: "ACME Corp", Website: "https://acme.com", Postcode: "sw1a1aa"}

	t.Run("Successful resolve without cache", func(t *testing.T) {
		uc := NewResolveUseCase(testIndex(t), nil, nil, logger)

		result, err := uc.Resolve(context.Background(), query)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.MatchConfidence != domain.ConfidenceHigh {
			t.Errorf("MatchConfidence = %q, want high", result.MatchConfidence)
		}
		if result.CreditScore == nil || *result.CreditScore != 750 {
			t.Errorf("CreditScore = %v, want 750", result.CreditScore)
		}
	})

	t.Run("Result is written to the cache", func(t *testing.T) {
		cache := &mocks.MockResultCache{}
		uc := NewResolveUseCase(testIndex(t), cache, nil, logger)

		if _, err := uc.Resolve(context.Background(), query); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cache.Sets != 1 {
			t.Errorf("cache sets = %d, want 1", cache.Sets)
		}
	})

	t.Run("Cache hit short-circuits matching", func(t *testing.T) {
		cached := domain.MatchResult{MatchConfidence: domain.ConfidenceLow, CompanyNumber: ptr("999")}
		cache := &mocks.MockResultCache{}
		uc := NewResolveUseCase(testIndex(t), cache, nil, logger)

		// Seed the cache under the key the use case derives.
		if err := cache.Set(context.Background(), cacheKey(query), cached); err != nil {
			t.Fatalf("failed to seed cache: %v", err)
		}

		result, err := uc.Resolve(context.Background(), query)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.CompanyNumber == nil || *result.CompanyNumber != "999" {
			t.Errorf("expected cached result, got %+v", result)
		}
		if cache.Sets != 1 {
			t.Errorf("cache sets = %d, want only the seed write", cache.Sets)
		}
	})

	t.Run("Equivalent queries share a cache key", func(t *testing.T) {
		messy := domain.Query{Name: " acme-corp. ", Website: "http://www.ACME.com/about", Postcode: "SW1A1AA"}
		if cacheKey(query) != cacheKey(messy) {
			t.Errorf("cacheKey(%+v) != cacheKey(%+v)", query, messy)
		}
	})

	t.Run("Cache failure degrades to a normal lookup", func(t *testing.T) {
		cache := &mocks.MockResultCache{GetErr: errors.New("redis down")}
		uc := NewResolveUseCase(testIndex(t), cache, nil, logger)

		result, err := uc.Resolve(context.Background(), query)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.MatchConfidence != domain.ConfidenceHigh {
			t.Errorf("MatchConfidence = %q, want high", result.MatchConfidence)
		}
	})

	t.Run("SwapIndex changes what queries see", func(t *testing.T) {
		uc := NewResolveUseCase(testIndex(t), nil, nil, logger)

		fresh, err := index.Build([]domain.RegistryRecord{{CompanyNumber: "777", Name: "Globex"}}, nil)
		if err != nil {
			t.Fatalf("failed to build fresh index: %v", err)
		}
		uc.SwapIndex(fresh)

		result, err := uc.Resolve(context.Background(), query)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.MatchConfidence != domain.ConfidenceNoMatch {
			t.Errorf("MatchConfidence = %q, want no_match after swap", result.MatchConfidence)
		}

		result, err = uc.Resolve(context.Background(), domain.Query{Name: "Globex"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.CompanyNumber == nil || *result.CompanyNumber != "777" {
			t.Errorf("expected match against swapped index, got %+v", result)
		}
	})
}

func TestRebuildIndexUseCase_Rebuild(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Builds from sources", func(t *testing.T) {
		registry := &mocks.MockRegistrySource{Records: []domain.RegistryRecord{
			{CompanyNumber: "1", Name: "Acme Corp"},
		}}
		credit := &mocks.MockCreditSource{Records: []domain.CreditRecord{
			{CompanyNumber: "1", CreditScore: "600"},
		}}
		uc := NewRebuildIndexUseCase(registry, credit, nil, logger)

		idx, err := uc.Rebuild(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if idx.Companies() != 1 || idx.CreditRecords() != 1 {
			t.Errorf("index sizes = %d/%d, want 1/1", idx.Companies(), idx.CreditRecords())
		}
	})

	t.Run("Source error surfaces", func(t *testing.T) {
		registry := &mocks.MockRegistrySource{Err: errors.New("file missing")}
		uc := NewRebuildIndexUseCase(registry, &mocks.MockCreditSource{}, nil, logger)

		if _, err := uc.Rebuild(context.Background()); err == nil {
			t.Fatal("expected an error, got nil")
		}
	})

	t.Run("Invalid registry record surfaces", func(t *testing.T) {
		registry := &mocks.MockRegistrySource{Records: []domain.RegistryRecord{
			{CompanyNumber: "1", Name: "***"},
		}}
		uc := NewRebuildIndexUseCase(registry, &mocks.MockCreditSource{}, nil, logger)

		_, err := uc.Rebuild(context.Background())
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
		var invalidErr *domain.InvalidRecordError
		if !errors.As(err, &invalidErr) {
			t.Fatalf("got %T, want *domain.InvalidRecordError", err)
		}
	})
}
