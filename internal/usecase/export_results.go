package usecase

import (
	"path/filepath"
	"strings"

	"github.com/aalvaropc/gradebook/internal/domain"
	"github.com/aalvaropc/gradebook/internal/ports"
)

// ExportResults grades a roster and writes it out. The destination extension
// picks the format: .xlsx gets the spreadsheet exporter, anything else CSV.
type ExportResults struct {
	csv  ports.ResultsExporter
	xlsx ports.ResultsExporter
}

func NewExportResults(csv, xlsx ports.ResultsExporter) *ExportResults {
	return &ExportResults{csv: csv, xlsx: xlsx}
}

// Execute analyzes the roster under the default scale and exports it to path.
// The analysis is returned so callers can report what was written.
func (uc *ExportResults) Execute(path string, roster domain.Roster) (domain.Analysis, error) {
	a, err := domain.Analyze(roster, domain.DefaultScale())
	if err != nil {
		return domain.Analysis{}, err
	}

	exp := uc.csv
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		exp = uc.xlsx
	}
	if err := exp.ExportResults(path, a); err != nil {
		return domain.Analysis{}, err
	}

	return a, nil
}
