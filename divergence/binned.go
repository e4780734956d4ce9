package divergence

import (
	"fmt"

	"splitlab/split"
)

// BinnedCurve computes the per-bin Jensen-Shannon divergence between the two
// empirical class distributions of a binary sample. The x-range is cut into
// fixed-width contiguous bins; within each class, bin counts are normalized
// by the class total so each class's frequencies sum to 1 independently.
// Bins empty for both classes score 0.
func BinnedCurve(sample split.Sample, bins int) (ScoreCurve, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("bins must be positive, got %d", bins)
	}
	if len(sample) == 0 {
		return nil, ErrInsufficientData
	}

	totals := sample.LabelCounts()
	for label := range totals {
		if label != 0 && label != 1 {
			return nil, fmt.Errorf("binned divergence is binary, got label %d", label)
		}
	}
	if totals[0] == 0 || totals[1] == 0 {
		return nil, fmt.Errorf("both classes must be represented: %w", ErrInsufficientData)
	}

	min, max, _ := sample.RangeX()
	width := (max - min) / float64(bins)
	if width == 0 {
		return nil, fmt.Errorf("all x values identical: %w", ErrInsufficientData)
	}

	counts0 := make([]int, bins)
	counts1 := make([]int, bins)
	for _, o := range sample {
		idx := int((o.X - min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if o.Label == 0 {
			counts0[idx]++
		} else {
			counts1[idx]++
		}
	}

	curve := make(ScoreCurve, 0, bins)
	for i := 0; i < bins; i++ {
		freq0 := float64(counts0[i]) / float64(totals[0])
		freq1 := float64(counts1[i]) / float64(totals[1])
		center := min + (float64(i)+0.5)*width
		curve = append(curve, CurvePoint{
			Position: center,
			Score:    jensenShannon(freq0, freq1),
		})
	}
	return curve, nil
}
