package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MinMark and MaxMark bound the accepted mark range.
const (
	MinMark = 0.0
	MaxMark = 100.0
)

// Record is a single student entry: a display name and a numeric mark.
// Records are immutable once created; reloads replace them wholesale.
type Record struct {
	Name string
	Mark float64
}

// NewRecord validates and builds a Record. The name is trimmed and must be
// non-empty; the mark must fall inside [MinMark, MaxMark]. Both manual entry
// and file import go through here, so validation lives in exactly one place.
func NewRecord(name string, mark float64) (Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Record{}, &OpError{
			Op:   "record.new",
			Kind: KindValidation,
			Err:  errors.New("student name must not be empty"),
		}
	}
	if math.IsNaN(mark) || mark < MinMark || mark > MaxMark {
		return Record{}, &OpError{
			Op:   "record.new",
			Kind: KindValidation,
			Err:  fmt.Errorf("mark %v outside [%v, %v]", mark, MinMark, MaxMark),
		}
	}
	return Record{Name: name, Mark: mark}, nil
}

// ParseMark parses a mark from user or file input.
func ParseMark(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &OpError{
			Op:   "record.parse_mark",
			Kind: KindValidation,
			Err:  errors.New("mark must not be empty"),
		}
	}
	m, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &OpError{
			Op:   "record.parse_mark",
			Kind: KindValidation,
			Err:  fmt.Errorf("mark is not a number: %q", s),
		}
	}
	return m, nil
}

// FormatMark renders a mark in its shortest round-tripping decimal form,
// so 78 prints as "78" and 78.5 as "78.5".
func FormatMark(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

// Roster is an ordered collection of records. Insertion order is preserved
// and duplicate names are allowed.
type Roster []Record

// IsEmpty reports whether the roster has no records.
func (r Roster) IsEmpty() bool {
	return len(r) == 0
}

// Marks extracts the marks in roster order.
func (r Roster) Marks() []float64 {
	out := make([]float64, 0, len(r))
	for _, rec := range r {
		out = append(out, rec.Mark)
	}
	return out
}

// ImportWarning describes a data row skipped during roster import.
type ImportWarning struct {
	Line   int // 1-based line number in the source file
	Reason string
}

func (w ImportWarning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
}

// SampleRoster returns the built-in demo roster, useful for trying the tool
// without a file at hand.
func SampleRoster() Roster {
	return Roster{
		{Name: "Alice", Mark: 78},
		{Name: "Bob", Mark: 92},
		{Name: "Charlie", Mark: 65},
		{Name: "Deepa", Mark: 55},
		{Name: "Esha", Mark: 34},
		{Name: "Faiz", Mark: 88},
	}
}
