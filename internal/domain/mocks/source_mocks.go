package mocks

import (
	"context"
	"sync"

	"github.com/kyc-tools/companymatch/internal/domain"
)

// MockRegistrySource is a mock implementation of domain.RegistrySource for testing.
type MockRegistrySource struct {
	Records []domain.RegistryRecord
	Err     error
	Calls   int
}

func (m *MockRegistrySource) RegistryRecords(ctx context.Context) ([]domain.RegistryRecord, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Records, nil
}

// MockCreditSource is a mock implementation of domain.CreditSource for testing.
type MockCreditSource struct {
	Records []domain.CreditRecord
	Err     error
	Calls   int
}

func (m *MockCreditSource) CreditRecords(ctx context.Context) ([]domain.CreditRecord, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Records, nil
}

// MockResultCache is a mock implementation of domain.ResultCache for testing.
type MockResultCache struct {
	mu      sync.Mutex
	Entries map[string]domain.MatchResult
	GetErr  error
	SetErr  error
	Hits    int
	Misses  int
	Sets    int
}

func (m *MockResultCache) Get(ctx context.Context, key string) (*domain.MatchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if res, ok := m.Entries[key]; ok {
		m.Hits++
		return &res, nil
	}
	m.Misses++
	return nil, nil
}

func (m *MockResultCache) Set(ctx context.Context, key string, result domain.MatchResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	if m.Entries == nil {
		m.Entries = make(map[string]domain.MatchResult)
	}
	m.Entries[key] = result
	m.Sets++
	return nil
}
