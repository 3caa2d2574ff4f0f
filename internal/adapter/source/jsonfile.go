// Package source provides file-backed implementations of the reference
// data source interfaces: the registry arrives as a JSON array, the credit
// bureau feed as CSV.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kyc-tools/companymatch/internal/domain"
)

// RegistryFile implements domain.RegistrySource over a JSON file holding an
// array of registry records.
type RegistryFile struct {
	path string
}

// NewRegistryFile creates a registry source reading from path.
func NewRegistryFile(path string) *RegistryFile {
	return &RegistryFile{path: path}
}

// RegistryRecords reads and decodes the whole registry file.
func (f *RegistryFile) RegistryRecords(_ context.Context) ([]domain.RegistryRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading registry file: %w", err)
	}

	var records []domain.RegistryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding registry file %s: %w", f.path, err)
	}

	return records, nil
}
