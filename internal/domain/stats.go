package domain

import "sort"

// Summary holds the descriptive statistics of a mark sequence.
type Summary struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// Mean returns the arithmetic mean of marks.
func Mean(marks []float64) (float64, error) {
	if len(marks) == 0 {
		return 0, emptyInput("stats.mean")
	}
	var sum float64
	for _, m := range marks {
		sum += m
	}
	return sum / float64(len(marks)), nil
}

// Median returns the middle value, or the average of the two central values
// for even counts. It works on a sorted copy; the input is never mutated.
func Median(marks []float64) (float64, error) {
	if len(marks) == 0 {
		return 0, emptyInput("stats.median")
	}

	sorted := make([]float64, len(marks))
	copy(sorted, marks)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return (sorted[mid-1] + sorted[mid]) / 2, nil
}

// Min returns the smallest mark.
func Min(marks []float64) (float64, error) {
	if len(marks) == 0 {
		return 0, emptyInput("stats.min")
	}
	min := marks[0]
	for _, m := range marks[1:] {
		if m < min {
			min = m
		}
	}
	return min, nil
}

// Max returns the largest mark.
func Max(marks []float64) (float64, error) {
	if len(marks) == 0 {
		return 0, emptyInput("stats.max")
	}
	max := marks[0]
	for _, m := range marks[1:] {
		if m > max {
			max = m
		}
	}
	return max, nil
}

// Summarize composes Mean, Median, Min and Max over a roster's marks.
// Nothing is cached: the summary is recomputed from the roster on demand.
func Summarize(r Roster) (Summary, error) {
	if r.IsEmpty() {
		return Summary{}, emptyInput("stats.summarize")
	}

	marks := r.Marks()

	mean, err := Mean(marks)
	if err != nil {
		return Summary{}, err
	}
	median, err := Median(marks)
	if err != nil {
		return Summary{}, err
	}
	min, err := Min(marks)
	if err != nil {
		return Summary{}, err
	}
	max, err := Max(marks)
	if err != nil {
		return Summary{}, err
	}

	return Summary{Mean: mean, Median: median, Min: min, Max: max}, nil
}

func emptyInput(op string) error {
	return &OpError{Op: op, Kind: KindEmptyInput, Err: ErrEmptyInput}
}
