package domain

// Row is a single graded line of the results table.
type Row struct {
	Name  string
	Mark  float64
	Grade Letter
}

// Analysis is the full pipeline output consumed by the report formatters:
// graded rows in roster order plus the derived statistics, distribution and
// pass/fail partition.
type Analysis struct {
	Rows         []Row
	Summary      Summary
	Distribution Distribution

	Passed []string
	Failed []string

	// MaxHolders and MinHolders name every student at the extreme marks,
	// in roster order.
	MaxHolders []string
	MinHolders []string
}

// Count returns the number of graded records.
func (a Analysis) Count() int {
	return len(a.Rows)
}

// Analyze runs the whole pipeline over a roster under the scale.
// An empty roster yields the empty-input error kind.
func Analyze(r Roster, s Scale) (Analysis, error) {
	sum, err := Summarize(r)
	if err != nil {
		return Analysis{}, err
	}

	a := Analysis{
		Rows:         make([]Row, 0, len(r)),
		Summary:      sum,
		Distribution: s.Tally(r),
	}

	for _, rec := range r {
		a.Rows = append(a.Rows, Row{
			Name:  rec.Name,
			Mark:  rec.Mark,
			Grade: s.Grade(rec.Mark),
		})

		if s.Passing(rec.Mark) {
			a.Passed = append(a.Passed, rec.Name)
		} else {
			a.Failed = append(a.Failed, rec.Name)
		}

		if rec.Mark == sum.Max {
			a.MaxHolders = append(a.MaxHolders, rec.Name)
		}
		if rec.Mark == sum.Min {
			a.MinHolders = append(a.MinHolders, rec.Name)
		}
	}

	return a, nil
}
