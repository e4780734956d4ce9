package split

import (
	"errors"
	"sort"
)

var ErrInsufficientData = errors.New("insufficient data for split")

// Observation is a single (feature value, class label) pair.
type Observation struct {
	X     float64
	Label int
}

type Sample []Observation

// SortedByX returns a copy of the sample ordered by X ascending.
// Observations with equal X keep their input order, so repeated calls on
// the same sample produce identical orderings.
func (s Sample) SortedByX() Sample {
	sorted := make(Sample, len(s))
	copy(sorted, s)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})
	return sorted
}

// LabelCounts returns the number of observations per label.
func (s Sample) LabelCounts() map[int]int {
	counts := make(map[int]int)
	for _, o := range s {
		counts[o.Label]++
	}
	return counts
}

// RangeX returns the minimum and maximum X in the sample.
func (s Sample) RangeX() (min, max float64, ok bool) {
	if len(s) == 0 {
		return 0, 0, false
	}
	min, max = s[0].X, s[0].X
	for _, o := range s[1:] {
		if o.X < min {
			min = o.X
		}
		if o.X > max {
			max = o.X
		}
	}
	return min, max, true
}
