// Package matcher implements the lookup-and-score step: one query, one
// reference index, one confidence-labeled and credit-enriched result.
package matcher

import (
	"strconv"

	"github.com/kyc-tools/companymatch/internal/domain"
	"github.com/kyc-tools/companymatch/internal/index"
	"github.com/kyc-tools/companymatch/internal/normalize"
)

type options struct {
	strictDomain bool
	suffixes     map[string]struct{}
}

// Option configures optional Find behavior.
type Option func(*options)

// StrictDomainValidation makes the "high" tier additionally require that
// the query website declares no scheme other than http(s) and, when a
// non-empty public-suffix set is supplied, that the normalized query domain
// ends in a known suffix. A match failing the gate is demoted to "medium".
// The suffix set is injected by the caller; the matcher never fetches it.
func StrictDomainValidation(suffixes map[string]struct{}) Option {
	return func(o *options) {
		o.strictDomain = true
		o.suffixes = suffixes
	}
}

// Find resolves one query against the index.
//
// Name matching is exact on the normalized form; an empty or unknown name
// yields the all-null no_match result. For a matched record, confidence is
// graded on exact equality of the normalized domain and postcode (two
// missing values compare equal): both equal is high, exactly one is
// medium, neither is low. Credit fields are merged in from the credit
// index; a non-numeric stored credit value surfaces as
// *domain.CreditDataError. Arbitrary query input never errors.
func Find(query domain.Query, idx *index.Index, opts ...Option) (domain.MatchResult, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	key := normalize.Name(query.Name)
	if key == "" {
		return domain.NoMatchResult(), nil
	}
	matched, ok := idx.Company(key)
	if !ok {
		return domain.NoMatchResult(), nil
	}

	queryDomain := normalize.Domain(query.Website)
	queryPostcode := normalize.Postcode(query.Postcode)
	recordDomain := normalize.Domain(deref(matched.Domain))
	recordPostcode := normalize.Postcode(deref(matched.Address.Postcode))

	domainsEqual := queryDomain == recordDomain
	postcodesEqual := queryPostcode == recordPostcode

	var confidence domain.Confidence
	switch {
	case domainsEqual && postcodesEqual:
		confidence = domain.ConfidenceHigh
	case domainsEqual || postcodesEqual:
		confidence = domain.ConfidenceMedium
	default:
		confidence = domain.ConfidenceLow
	}

	if confidence == domain.ConfidenceHigh && o.strictDomain && !domainAcceptable(query.Website, queryDomain, o.suffixes) {
		confidence = domain.ConfidenceMedium
	}

	result := domain.MatchResult{
		Name:            strptr(matched.Name),
		Address:         matched.Address,
		Domain:          matched.Domain,
		CompanyNumber:   strptr(matched.CompanyNumber),
		MatchConfidence: confidence,
	}

	creditRec, ok := idx.Credit(matched.CompanyNumber)
	if !ok {
		return result, nil
	}

	score, err := parseCreditField(matched.CompanyNumber, "credit_score", creditRec.CreditScore)
	if err != nil {
		return domain.MatchResult{}, err
	}
	tradeLines, err := parseCreditField(matched.CompanyNumber, "trade_lines", creditRec.TradeLines)
	if err != nil {
		return domain.MatchResult{}, err
	}

	result.CreditScore = score
	result.TradeLines = tradeLines
	if creditRec.LastDefaultDate != "" {
		result.LastDefaultDate = strptr(creditRec.LastDefaultDate)
	}

	return result, nil
}

// domainAcceptable applies the strict-variant gate to the query website.
func domainAcceptable(website, normalizedDomain string, suffixes map[string]struct{}) bool {
	if !normalize.ValidScheme(website) {
		return false
	}
	if len(suffixes) == 0 {
		return true
	}
	for i := 0; i < len(normalizedDomain); i++ {
		if normalizedDomain[i] != '.' {
			continue
		}
		if _, ok := suffixes[normalizedDomain[i+1:]]; ok {
			return true
		}
	}
	_, ok := suffixes[normalizedDomain]
	return ok
}

// parseCreditField converts a stored bureau value to an int. Empty means
// unknown and stays null; non-numeric means a broken feed and errors.
func parseCreditField(companyNumber, field, value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, &domain.CreditDataError{CompanyNumber: companyNumber, Field: field, Value: value}
	}
	return &n, nil
}

func strptr(s string) *string { return &s }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
