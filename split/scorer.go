package split

// CurvePoint is the score of one candidate split. Position is the X value
// of the last observation kept on the left side. Left and Right are the
// partition-mass-weighted entropies of the two sides.
type CurvePoint struct {
	Position float64
	Left     float64
	Right    float64
	Combined float64
}

// ScoreCurve holds one CurvePoint per candidate split, in scan order. It is
// returned for diagnostics and carries no state beyond the points.
type ScoreCurve []CurvePoint

// Min returns the first point with the strictly smallest combined score.
func (c ScoreCurve) Min() (CurvePoint, bool) {
	if len(c) == 0 {
		return CurvePoint{}, false
	}
	best := c[0]
	for _, point := range c[1:] {
		if point.Combined < best.Combined {
			best = point
		}
	}
	return best, true
}

// Max returns the first point with the strictly largest combined score.
func (c ScoreCurve) Max() (CurvePoint, bool) {
	if len(c) == 0 {
		return CurvePoint{}, false
	}
	best := c[0]
	for _, point := range c[1:] {
		if point.Combined > best.Combined {
			best = point
		}
	}
	return best, true
}

type SplitResult struct {
	Threshold    float64
	LeftEntropy  float64
	RightEntropy float64
	Combined     float64
	Curve        ScoreCurve
}

// FindBestSplit scans the internal gaps of the sample sorted by X and
// returns the split minimizing the mass-weighted sum of the two partition
// entropies. For gap i of n points the left side holds the first i
// observations and contributes (i/n) * H(left); the right side contributes
// ((n-i)/n) * H(right). Gaps between equal X values are not candidates.
// Ties on the combined score keep the leftmost candidate.
func FindBestSplit(sample Sample) (*SplitResult, error) {
	if len(sample) < 2 {
		return nil, ErrInsufficientData
	}
	sorted := sample.SortedByX()
	n := len(sorted)
	if sorted[0].X == sorted[n-1].X {
		return nil, ErrInsufficientData
	}

	left := make(map[int]int)
	right := sorted.LabelCounts()

	curve := make(ScoreCurve, 0, n-1)
	var best CurvePoint
	found := false
	for i := 1; i < n; i++ {
		label := sorted[i-1].Label
		left[label]++
		right[label]--
		if sorted[i-1].X == sorted[i].X {
			continue
		}

		probLeft := float64(i) / float64(n)
		probRight := float64(n-i) / float64(n)
		point := CurvePoint{
			Position: sorted[i-1].X,
			Left:     probLeft * Entropy(left, i),
			Right:    probRight * Entropy(right, n-i),
		}
		point.Combined = point.Left + point.Right
		curve = append(curve, point)

		if !found || point.Combined < best.Combined {
			best = point
			found = true
		}
	}

	return &SplitResult{
		Threshold:    best.Position,
		LeftEntropy:  best.Left,
		RightEntropy: best.Right,
		Combined:     best.Combined,
		Curve:        curve,
	}, nil
}
