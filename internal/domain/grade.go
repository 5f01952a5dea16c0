package domain

// Letter is a single grade letter.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
	LetterF Letter = "F"
)

// Letters fixes the display order of grade letters.
var Letters = []Letter{LetterA, LetterB, LetterC, LetterD, LetterF}

// Scale holds the lower bound of each passing letter band.
// Marks below the D bound earn an F.
type Scale struct {
	A float64
	B float64
	C float64
	D float64
}

// DefaultScale provides the fixed grading bands. The bands are not
// runtime-configurable; adjusting them is a code change in one place.
func DefaultScale() Scale {
	return Scale{A: 90, B: 80, C: 70, D: 60}
}

// Grade maps a mark to its letter under the scale.
func (s Scale) Grade(mark float64) Letter {
	switch {
	case mark >= s.A:
		return LetterA
	case mark >= s.B:
		return LetterB
	case mark >= s.C:
		return LetterC
	case mark >= s.D:
		return LetterD
	default:
		return LetterF
	}
}

// Passing reports whether a mark clears the lowest passing band.
// The pass boundary coincides with the D/F threshold.
func (s Scale) Passing(mark float64) bool {
	return mark >= s.D
}

// Distribution tallies records per letter. All five letters are always
// present so zero counts render explicitly.
type Distribution map[Letter]int

// Tally computes the grade distribution of a roster under the scale.
func (s Scale) Tally(r Roster) Distribution {
	d := Distribution{}
	for _, l := range Letters {
		d[l] = 0
	}
	for _, rec := range r {
		d[s.Grade(rec.Mark)]++
	}
	return d
}

// Total sums the counts across all letters.
func (d Distribution) Total() int {
	n := 0
	for _, c := range d {
		n += c
	}
	return n
}
