package ports

import "github.com/aalvaropc/gradebook/internal/domain"

// ResultsExporter persists an analysis to a destination file.
type ResultsExporter interface {
	ExportResults(path string, a domain.Analysis) error
}
