package matcher

import (
	"errors"
	"testing"

	"github.com/kyc-tools/companymatch/internal/domain"
	"github.com/kyc-tools/companymatch/internal/index"
)

func ptr(s string) *string { return &s }

func buildIndex(t *testing.T, registry []domain.RegistryRecord, credit []domain.CreditRecord) *index.Index {
	t.Helper()
	idx, err := index.Build(registry, credit)
	if err != nil {
		t.Fatalf("failed to build index: %v", err)
	}
	return idx
}

func referenceIndex(t *testing.T) *index.Index {
	return buildIndex(t,
		[]domain.RegistryRecord{
			{
				CompanyNumber: "123",
				Name:          "Acme Corp",
				Domain:        ptr("acme.com"),
				Address: domain.Address{
					Street:   ptr("1 High Street"),
					City:     ptr("London"),
					Postcode: ptr("SW1A 1AA"),
				},
			},
			{
				CompanyNumber: "456",
				Name:          "No Domain Ltd",
				Address:       domain.Address{City: ptr("Leeds")},
			},
		},
		[]domain.CreditRecord{
			{CompanyNumber: "123", CreditScore: "750", TradeLines: "4", LastDefaultDate: "25-Jan-2025"},
		},
	)
}

func TestFindConfidenceTiers(t *testing.T) {
	idx := referenceIndex(t)

	tests := []struct {
		name  string
		query domain.Query
		want  domain.Confidence
	}{
		{
			name:  "Domain and postcode both match",
			query: domain.Query{Name: "ACME Corp", Website: "https://acme.com", Postcode: "sw1a1aa"},
			want:  domain.ConfidenceHigh,
		},
		{
			name:  "Domain matches, postcode differs",
			query: domain.Query{Name: "ACME Corp", Website: "https://www.acme.com", Postcode: "M1 1AA"},
			want:  domain.ConfidenceMedium,
		},
		{
			name:  "Postcode matches, domain differs",
			query: domain.Query{Name: "ACME Corp", Website: "other.com", Postcode: "SW1A 1AA"},
			want:  domain.ConfidenceMedium,
		},
		{
			name:  "Name only",
			query: domain.Query{Name: "acme-corp", Website: "other.com", Postcode: "M1 1AA"},
			want:  domain.ConfidenceLow,
		},
		{
			name:  "Missing domain on both sides counts as equal",
			query: domain.Query{Name: "No Domain Ltd", Website: "", Postcode: ""},
			want:  domain.ConfidenceHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Find(tt.query, idx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.MatchConfidence != tt.want {
				t.Errorf("MatchConfidence = %q, want %q", result.MatchConfidence, tt.want)
			}
		})
	}
}

func TestFindEnrichesWithCreditData(t *testing.T) {
	idx := referenceIndex(t)

	result, err := Find(domain.Query{
		Name:     "ACME Corp",
		Website:  "https://acme.com",
		Postcode: "sw1a1aa",
	}, idx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.MatchConfidence != domain.ConfidenceHigh {
		t.Errorf("MatchConfidence = %q, want high", result.MatchConfidence)
	}
	if result.CompanyNumber == nil || *result.CompanyNumber != "123" {
		t.Errorf("CompanyNumber = %v, want \"123\"", result.CompanyNumber)
	}
	if result.Name == nil || *result.Name != "Acme Corp" {
		t.Errorf("Name = %v, want original registry name \"Acme Corp\"", result.Name)
	}
	if result.Domain == nil || *result.Domain != "acme.com" {
		t.Errorf("Domain = %v, want \"acme.com\"", result.Domain)
	}
	if result.Address.Postcode == nil || *result.Address.Postcode != "SW1A 1AA" {
		t.Errorf("Address.Postcode = %v, want \"SW1A 1AA\"", result.Address.Postcode)
	}
	if result.CreditScore == nil || *result.CreditScore != 750 {
		t.Errorf("CreditScore = %v, want 750", result.CreditScore)
	}
	if result.TradeLines == nil || *result.TradeLines != 4 {
		t.Errorf("TradeLines = %v, want 4", result.TradeLines)
	}
	if result.LastDefaultDate == nil || *result.LastDefaultDate != "2025-01-25" {
		t.Errorf("LastDefaultDate = %v, want \"2025-01-25\"", result.LastDefaultDate)
	}
}

func TestFindNoMatch(t *testing.T) {
	idx := referenceIndex(t)

	tests := []struct {
		name  string
		query domain.Query
	}{
		{"Unknown name", domain.Query{Name: "Globex", Website: "acme.com", Postcode: "SW1A 1AA"}},
		{"Empty name", domain.Query{Name: "", Website: "acme.com", Postcode: "SW1A 1AA"}},
		{"Name normalizing to empty", domain.Query{Name: "???", Website: "", Postcode: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Find(tt.query, idx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.MatchConfidence != domain.ConfidenceNoMatch {
				t.Errorf("MatchConfidence = %q, want no_match", result.MatchConfidence)
			}
			if result.Name != nil || result.Domain != nil || result.CompanyNumber != nil ||
				result.CreditScore != nil || result.TradeLines != nil || result.LastDefaultDate != nil ||
				result.Address.Street != nil || result.Address.City != nil || result.Address.Postcode != nil {
				t.Error("expected every field except MatchConfidence to be null")
			}
		})
	}
}

func TestFindWithoutCreditRecord(t *testing.T) {
	idx := referenceIndex(t)

	result, err := Find(domain.Query{Name: "No Domain Ltd"}, idx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.CompanyNumber == nil || *result.CompanyNumber != "456" {
		t.Errorf("CompanyNumber = %v, want \"456\" even without credit data", result.CompanyNumber)
	}
	if result.CreditScore != nil || result.TradeLines != nil || result.LastDefaultDate != nil {
		t.Error("expected null credit fields when the bureau has no record")
	}
}

func TestFindEmptyCreditFieldsStayNull(t *testing.T) {
	idx := buildIndex(t,
		[]domain.RegistryRecord{{CompanyNumber: "9", Name: "Hollow Co"}},
		[]domain.CreditRecord{{CompanyNumber: "9", CreditScore: "", TradeLines: "", LastDefaultDate: ""}},
	)

	result, err := Find(domain.Query{Name: "Hollow Co"}, idx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.CreditScore != nil || result.TradeLines != nil || result.LastDefaultDate != nil {
		t.Error("expected empty bureau values to stay null")
	}
}

func TestFindNonNumericCreditValue(t *testing.T) {
	idx := buildIndex(t,
		[]domain.RegistryRecord{{CompanyNumber: "9", Name: "Hollow Co"}},
		[]domain.CreditRecord{{CompanyNumber: "9", CreditScore: "seven fifty"}},
	)

	_, err := Find(domain.Query{Name: "Hollow Co"}, idx)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var creditErr *domain.CreditDataError
	if !errors.As(err, &creditErr) {
		t.Fatalf("got %T, want *domain.CreditDataError", err)
	}
	if creditErr.Field != "credit_score" || creditErr.Value != "seven fifty" {
		t.Errorf("CreditDataError = %+v, want field credit_score with value \"seven fifty\"", creditErr)
	}
}

func TestFindStrictDomainValidation(t *testing.T) {
	idx := buildIndex(t,
		[]domain.RegistryRecord{{
			CompanyNumber: "123",
			Name:          "Acme Corp",
			Domain:        ptr("ftp://acme.com"),
			Address:       domain.Address{Postcode: ptr("SW1A 1AA")},
		}},
		nil,
	)
	suffixes := map[string]struct{}{"com": {}, "co.uk": {}}

	t.Run("Non-http scheme demotes high to medium", func(t *testing.T) {
		query := domain.Query{Name: "Acme Corp", Website: "ftp://acme.com", Postcode: "SW1A 1AA"}

		result, err := Find(query, idx, StrictDomainValidation(suffixes))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.MatchConfidence != domain.ConfidenceMedium {
			t.Errorf("strict MatchConfidence = %q, want medium", result.MatchConfidence)
		}

		// Same query without the option stays high.
		result, err = Find(query, idx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.MatchConfidence != domain.ConfidenceHigh {
			t.Errorf("default MatchConfidence = %q, want high", result.MatchConfidence)
		}
	})

	t.Run("Unknown public suffix demotes high to medium", func(t *testing.T) {
		strictIdx := buildIndex(t,
			[]domain.RegistryRecord{{
				CompanyNumber: "321",
				Name:          "Oddball Ltd",
				Domain:        ptr("oddball.internal"),
				Address:       domain.Address{Postcode: ptr("M1 1AA")},
			}},
			nil,
		)
		query := domain.Query{Name: "Oddball Ltd", Website: "https://oddball.internal", Postcode: "m11aa"}

		result, err := Find(query, strictIdx, StrictDomainValidation(suffixes))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.MatchConfidence != domain.ConfidenceMedium {
			t.Errorf("strict MatchConfidence = %q, want medium", result.MatchConfidence)
		}
	})

	t.Run("Known suffix and clean scheme keep high", func(t *testing.T) {
		cleanIdx := buildIndex(t,
			[]domain.RegistryRecord{{
				CompanyNumber: "555",
				Name:          "Clean Co",
				Domain:        ptr("clean.co.uk"),
				Address:       domain.Address{Postcode: ptr("M1 1AA")},
			}},
			nil,
		)
		query := domain.Query{Name: "Clean Co", Website: "https://www.clean.co.uk", Postcode: "M1 1AA"}

		result, err := Find(query, cleanIdx, StrictDomainValidation(suffixes))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.MatchConfidence != domain.ConfidenceHigh {
			t.Errorf("strict MatchConfidence = %q, want high", result.MatchConfidence)
		}
	})
}
