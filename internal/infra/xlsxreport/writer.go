package xlsxreport

import (
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aalvaropc/gradebook/internal/domain"
	"github.com/aalvaropc/gradebook/internal/ports"
)

// Writer exports graded results as an Excel workbook: the results table
// followed by the statistics and grade distribution blocks.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

var _ ports.ResultsExporter = (*Writer)(nil)

func (w *Writer) ExportResults(path string, a domain.Analysis) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	var err error
	set := func(col, row int, v any) {
		if err != nil {
			return
		}
		var cell string
		if cell, err = excelize.CoordinatesToCellName(col, row); err != nil {
			return
		}
		err = f.SetCellValue(sheet, cell, v)
	}

	set(1, 1, "name")
	set(2, 1, "mark")
	set(3, 1, "grade")

	row := 2
	for _, r := range a.Rows {
		set(1, row, r.Name)
		set(2, row, r.Mark)
		set(3, row, string(r.Grade))
		row++
	}

	row++
	set(1, row, "students")
	set(2, row, a.Count())
	row++
	set(1, row, "mean")
	set(2, row, a.Summary.Mean)
	row++
	set(1, row, "median")
	set(2, row, a.Summary.Median)
	row++
	set(1, row, "highest")
	set(2, row, a.Summary.Max)
	set(3, row, strings.Join(a.MaxHolders, ", "))
	row++
	set(1, row, "lowest")
	set(2, row, a.Summary.Min)
	set(3, row, strings.Join(a.MinHolders, ", "))
	row++

	row++
	set(1, row, "distribution")
	row++
	for _, l := range domain.Letters {
		set(1, row, string(l))
		set(2, row, a.Distribution[l])
		row++
	}

	if err != nil {
		return &domain.OpError{
			Op:   "xlsxreport.build",
			Kind: domain.KindFile,
			Path: path,
			Err:  err,
		}
	}

	// SaveAs insists on a spreadsheet extension, so buffer the workbook and
	// write tmp-then-rename ourselves.
	buf, err := f.WriteToBuffer()
	if err != nil {
		return &domain.OpError{
			Op:   "xlsxreport.encode",
			Kind: domain.KindFile,
			Path: path,
			Err:  err,
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return &domain.OpError{
			Op:   "xlsxreport.write",
			Kind: domain.KindFile,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "xlsxreport.rename",
			Kind: domain.KindFile,
			Path: path,
			Err:  err,
		}
	}

	return nil
}
