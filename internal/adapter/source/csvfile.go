package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/kyc-tools/companymatch/internal/domain"
)

// CreditFile implements domain.CreditSource over a CSV file with a header
// row. Column order is not assumed; columns are located by header name.
type CreditFile struct {
	path string
}

// NewCreditFile creates a credit source reading from path.
func NewCreditFile(path string) *CreditFile {
	return &CreditFile{path: path}
}

// CreditRecords reads and decodes the whole credit feed. Duplicate company
// numbers are passed through untouched; de-duplication belongs to the
// index builder.
func (f *CreditFile) CreditRecords(_ context.Context) ([]domain.CreditRecord, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("opening credit file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading credit file header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{"company_number", "credit_score", "trade_lines", "last_default_date"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("credit file %s: missing column %q", f.path, required)
		}
	}

	var records []domain.CreditRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading credit file %s: %w", f.path, err)
		}

		records = append(records, domain.CreditRecord{
			CompanyNumber:   row[columns["company_number"]],
			CreditScore:     row[columns["credit_score"]],
			TradeLines:      row[columns["trade_lines"]],
			LastDefaultDate: row[columns["last_default_date"]],
		})
	}

	return records, nil
}
