package csvreport

import (
	"bytes"
	"encoding/csv"
	"os"

	"github.com/aalvaropc/gradebook/internal/domain"
	"github.com/aalvaropc/gradebook/internal/ports"
)

// Writer exports graded results as a name,mark,grade CSV file.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

var _ ports.ResultsExporter = (*Writer)(nil)

func (w *Writer) ExportResults(path string, a domain.Analysis) error {
	records := make([][]string, 0, len(a.Rows)+1)
	records = append(records, []string{"name", "mark", "grade"})
	for _, row := range a.Rows {
		records = append(records, []string{
			row.Name,
			domain.FormatMark(row.Mark),
			string(row.Grade),
		})
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.WriteAll(records); err != nil {
		return &domain.OpError{
			Op:   "csvreport.encode",
			Kind: domain.KindFile,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return &domain.OpError{
			Op:   "csvreport.write",
			Kind: domain.KindFile,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "csvreport.rename",
			Kind: domain.KindFile,
			Path: path,
			Err:  err,
		}
	}

	return nil
}
