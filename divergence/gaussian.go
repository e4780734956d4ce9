package divergence

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"splitlab/split"
)

var (
	ErrDegenerateDistribution = errors.New("degenerate class distribution")
	ErrInsufficientData       = errors.New("insufficient data for divergence")
)

// Gaussian is a normal distribution fitted to one class of a sample.
type Gaussian struct {
	Mean float64
	SD   float64
}

// FitGaussian estimates a Gaussian from the observations carrying the given
// label, using label-weighted population moments: mean = sum(x)/n and
// sd = sqrt(sum((x-mean)^2)/n).
func FitGaussian(sample split.Sample, label int) (Gaussian, error) {
	sum := 0.0
	n := 0
	for _, o := range sample {
		if o.Label != label {
			continue
		}
		sum += o.X
		n++
	}
	if n == 0 {
		return Gaussian{}, fmt.Errorf("label %d has no observations: %w", label, ErrDegenerateDistribution)
	}

	mean := sum / float64(n)
	sumSquares := 0.0
	for _, o := range sample {
		if o.Label != label {
			continue
		}
		diff := o.X - mean
		sumSquares += diff * diff
	}

	return Gaussian{Mean: mean, SD: math.Sqrt(sumSquares / float64(n))}, nil
}

// PDF returns the density of the fitted Gaussian at x.
func (g Gaussian) PDF(x float64) float64 {
	return distuv.Normal{Mu: g.Mean, Sigma: g.SD}.Prob(x)
}
