package domain

// Confidence labels how well a query matched a registry record.
type Confidence string

const (
	ConfidenceHigh    Confidence = "high"
	ConfidenceMedium  Confidence = "medium"
	ConfidenceLow     Confidence = "low"
	ConfidenceNoMatch Confidence = "no_match"
)

// Address is the structured postal address carried by registry records.
// Fields are pointers because the registry feed leaves them null freely.
type Address struct {
	Street   *string `json:"street"`
	City     *string `json:"city"`
	Postcode *string `json:"postcode"`
}

// RegistryRecord is a single company entry from the authoritative registry.
// CompanyNumber is unique across the registry.
type RegistryRecord struct {
	CompanyNumber string  `json:"company_number"`
	Name          string  `json:"name"`
	Domain        *string `json:"domain"`
	Address       Address `json:"address"`
}

// CreditRecord is a raw credit-bureau entry keyed by company number.
// CreditScore and TradeLines stay strings until match time; the bureau feed
// is CSV and empty cells mean "unknown", not zero.
type CreditRecord struct {
	CompanyNumber   string `json:"company_number"`
	CreditScore     string `json:"credit_score"`
	TradeLines      string `json:"trade_lines"`
	LastDefaultDate string `json:"last_default_date"`
}

// Query is one incoming, possibly messy, company lookup request.
// Name is the only field that drives the match; Website and Postcode only
// grade its confidence, so they may be empty or unparseable.
type Query struct {
	Name     string `json:"name"`
	Website  string `json:"website"`
	Postcode string `json:"postcode"`
	Address  string `json:"address,omitempty"`
}

// MatchResult is the sole output shape of a lookup. Its field set is fixed
// regardless of outcome: on no_match every field except MatchConfidence is
// null.
type MatchResult struct {
	Name            *string    `json:"name"`
	Address         Address    `json:"address"`
	Domain          *string    `json:"domain"`
	CompanyNumber   *string    `json:"company_number"`
	CreditScore     *int       `json:"credit_score"`
	LastDefaultDate *string    `json:"last_default_date"`
	MatchConfidence Confidence `json:"match_confidence"`
	TradeLines      *int       `json:"trade_lines"`
}

// NoMatchResult returns the all-null result reported for unmatched queries.
func NoMatchResult() MatchResult {
	return MatchResult{MatchConfidence: ConfidenceNoMatch}
}
