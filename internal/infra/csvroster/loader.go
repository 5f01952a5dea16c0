package csvroster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aalvaropc/gradebook/internal/domain"
	"github.com/aalvaropc/gradebook/internal/ports"
)

// Loader reads rosters from name,mark CSV files. The first row is always a
// header and never imported; extra columns are ignored, so exported
// name,mark,grade files load back cleanly.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.RosterLoader = (*Loader)(nil)

func (l *Loader) LoadRoster(path string) (domain.Roster, []domain.ImportWarning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &domain.OpError{
			Op:   "csvroster.open",
			Kind: domain.KindFile,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // Rows are validated individually below.

	var (
		roster   domain.Roster
		warnings []domain.ImportWarning
		line     int
	)

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++

		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				warnings = append(warnings, domain.ImportWarning{
					Line:   line,
					Reason: fmt.Sprintf("malformed csv: %v", pe.Err),
				})
				continue
			}
			return nil, warnings, &domain.OpError{
				Op:   "csvroster.read",
				Kind: domain.KindFile,
				Path: path,
				Err:  err,
			}
		}

		if line == 1 {
			// Header row.
			continue
		}

		if len(rec) < 2 {
			warnings = append(warnings, domain.ImportWarning{Line: line, Reason: "missing mark column"})
			continue
		}

		mark, err := domain.ParseMark(rec[1])
		if err != nil {
			warnings = append(warnings, domain.ImportWarning{Line: line, Reason: domain.UserMessage(err)})
			continue
		}

		student, err := domain.NewRecord(rec[0], mark)
		if err != nil {
			warnings = append(warnings, domain.ImportWarning{Line: line, Reason: domain.UserMessage(err)})
			continue
		}

		roster = append(roster, student)
	}

	if line == 0 {
		return nil, nil, &domain.OpError{
			Op:   "csvroster.load",
			Kind: domain.KindParse,
			Path: path,
			Err:  errors.New("file is empty"),
		}
	}
	if roster.IsEmpty() {
		return nil, warnings, &domain.OpError{
			Op:   "csvroster.load",
			Kind: domain.KindParse,
			Path: path,
			Err:  errors.New("no importable rows"),
		}
	}

	return roster, warnings, nil
}
