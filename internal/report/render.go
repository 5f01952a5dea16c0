// Package report renders an analysis as a plain-text results report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/aalvaropc/gradebook/internal/domain"
)

// Text renders the full report: the graded table followed by the statistics,
// distribution and pass/fail blocks. Column widths adapt to the data.
func Text(a domain.Analysis) string {
	if a.Count() == 0 {
		return "no student records\n"
	}

	var b strings.Builder

	nameW := len("Name")
	markW := len("Mark")
	for _, r := range a.Rows {
		if n := len(r.Name); n > nameW {
			nameW = n
		}
		if m := len(domain.FormatMark(r.Mark)); m > markW {
			markW = m
		}
	}

	fmt.Fprintf(&b, "%-*s  %*s  %s\n", nameW, "Name", markW, "Mark", "Grade")
	b.WriteString(strings.Repeat("-", nameW+markW+9))
	b.WriteByte('\n')
	for _, r := range a.Rows {
		fmt.Fprintf(&b, "%-*s  %*s  %s\n", nameW, r.Name, markW, domain.FormatMark(r.Mark), r.Grade)
	}

	b.WriteByte('\n')
	fmt.Fprintf(&b, "%-9s %d\n", "Students:", a.Count())
	fmt.Fprintf(&b, "%-9s %.2f\n", "Mean:", a.Summary.Mean)
	fmt.Fprintf(&b, "%-9s %.2f\n", "Median:", a.Summary.Median)
	fmt.Fprintf(&b, "%-9s %s (%s)\n", "Highest:", strings.Join(a.MaxHolders, ", "), domain.FormatMark(a.Summary.Max))
	fmt.Fprintf(&b, "%-9s %s (%s)\n", "Lowest:", strings.Join(a.MinHolders, ", "), domain.FormatMark(a.Summary.Min))

	b.WriteByte('\n')
	b.WriteString("Grade distribution:\n")
	for _, l := range domain.Letters {
		fmt.Fprintf(&b, "  %s: %d\n", l, a.Distribution[l])
	}

	b.WriteByte('\n')
	fmt.Fprintf(&b, "Passed (%d): %s\n", len(a.Passed), strings.Join(a.Passed, ", "))
	fmt.Fprintf(&b, "Failed (%d): %s\n", len(a.Failed), strings.Join(a.Failed, ", "))

	return b.String()
}

// Render writes the text report to w.
func Render(w io.Writer, a domain.Analysis) error {
	_, err := io.WriteString(w, Text(a))
	return err
}
