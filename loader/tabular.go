package loader

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// TabularLoader reads CSV files. The first row is treated as the header.
type TabularLoader struct{}

// Name returns the registry name of the loader.
func (TabularLoader) Name() string { return "tabular" }

// Load reads a CSV file into a tabular dataset.
func (l TabularLoader) Load(path string) (*Dataset, error) {
	log.Info("loading tabular data", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tabular file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("tabular file %q is empty", path)
	}

	return &Dataset{
		Kind:     KindTabular,
		Path:     path,
		Header:   rows[0],
		Records:  rows[1:],
		Metadata: map[string]any{"format": "csv", "columns": len(rows[0])},
	}, nil
}
