package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/kyc-tools/companymatch/internal/domain"
)

// ReferenceRepository implements domain.RegistrySource and
// domain.CreditSource on top of PostgreSQL, for deployments that keep the
// reference feeds in a database instead of flat files.
type ReferenceRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewReferenceRepository creates a new instance of the PostgreSQL reference
// data repository.
func NewReferenceRepository(db *sql.DB, logger *slog.Logger) *ReferenceRepository {
	return &ReferenceRepository{
		db:     db,
		logger: logger.With("component", "postgres_repository"),
	}
}

// RegistryRecords loads the full company registry.
func (r *ReferenceRepository) RegistryRecords(ctx context.Context) ([]domain.RegistryRecord, error) {
	query := `SELECT company_number, name, domain, street, city, postcode FROM companies`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying companies: %w", err)
	}
	defer rows.Close()

	var records []domain.RegistryRecord
	for rows.Next() {
		var rec domain.RegistryRecord
		var domainCol, street, city, postcode sql.NullString
		if err := rows.Scan(&rec.CompanyNumber, &rec.Name, &domainCol, &street, &city, &postcode); err != nil {
			return nil, fmt.Errorf("scanning company row: %w", err)
		}
		rec.Domain = nullable(domainCol)
		rec.Address = domain.Address{
			Street:   nullable(street),
			City:     nullable(city),
			Postcode: nullable(postcode),
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating company rows: %w", err)
	}

	r.logger.Debug("loaded registry records from postgres", "count", len(records))
	return records, nil
}

// CreditRecords loads the full credit feed in feed order, so the index
// builder's first-seen-wins rule sees the same order the bureau delivered.
func (r *ReferenceRepository) CreditRecords(ctx context.Context) ([]domain.CreditRecord, error) {
	query := `SELECT company_number, credit_score, trade_lines, last_default_date FROM credit_reports ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying credit reports: %w", err)
	}
	defer rows.Close()

	var records []domain.CreditRecord
	for rows.Next() {
		var rec domain.CreditRecord
		var score, tradeLines, lastDefault sql.NullString
		if err := rows.Scan(&rec.CompanyNumber, &score, &tradeLines, &lastDefault); err != nil {
			return nil, fmt.Errorf("scanning credit row: %w", err)
		}
		rec.CreditScore = score.String
		rec.TradeLines = tradeLines.String
		rec.LastDefaultDate = lastDefault.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating credit rows: %w", err)
	}

	r.logger.Debug("loaded credit records from postgres", "count", len(records))
	return records, nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
