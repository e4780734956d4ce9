package divergence

import "math"

// CurvePoint is the Jensen-Shannon divergence at one grid position or bin
// center.
type CurvePoint struct {
	Position float64
	Score    float64
}

type ScoreCurve []CurvePoint

// Min returns the first point with the strictly smallest score. The
// reported threshold of a divergence scan is the argmin of its curve.
func (c ScoreCurve) Min() (CurvePoint, bool) {
	if len(c) == 0 {
		return CurvePoint{}, false
	}
	best := c[0]
	for _, point := range c[1:] {
		if point.Score < best.Score {
			best = point
		}
	}
	return best, true
}

// Max returns the first point with the strictly largest score.
func (c ScoreCurve) Max() (CurvePoint, bool) {
	if len(c) == 0 {
		return CurvePoint{}, false
	}
	best := c[0]
	for _, point := range c[1:] {
		if point.Score > best.Score {
			best = point
		}
	}
	return best, true
}

// jensenShannon computes the base-2 JS divergence contribution of a single
// position given the two densities (or frequencies) there. Zero terms are
// guarded explicitly rather than left to NaN propagation: a zero probability
// contributes nothing to its KL term.
func jensenShannon(p1, p2 float64) float64 {
	mix := (p1 + p2) / 2
	if mix == 0 {
		return 0
	}
	kl1, kl2 := 0.0, 0.0
	if p1 > 0 {
		kl1 = p1 * math.Log2(p1/mix)
	}
	if p2 > 0 {
		kl2 = p2 * math.Log2(p2/mix)
	}
	return 0.5*kl1 + 0.5*kl2
}

// Grid returns n evenly spaced points covering [lo, hi] inclusive.
func Grid(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	grid := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range grid {
		grid[i] = lo + float64(i)*step
	}
	grid[n-1] = hi
	return grid
}

// Curve evaluates the pointwise Jensen-Shannon divergence between two fitted
// Gaussians over the grid.
func Curve(dist1, dist2 Gaussian, grid []float64) ScoreCurve {
	curve := make(ScoreCurve, 0, len(grid))
	for _, g := range grid {
		curve = append(curve, CurvePoint{
			Position: g,
			Score:    jensenShannon(dist1.PDF(g), dist2.PDF(g)),
		})
	}
	return curve
}
