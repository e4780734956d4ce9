package divergence

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"splitlab/split"
)

func TestFitGaussianMoments(t *testing.T) {
	sample := split.Sample{
		{X: 1, Label: 0}, {X: 3, Label: 0}, {X: 2, Label: 1}, {X: 4, Label: 1},
	}

	dist, err := FitGaussian(sample, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, dist.Mean)
	// Population standard deviation: sqrt(((1-2)^2 + (3-2)^2) / 2).
	require.Equal(t, 1.0, dist.SD)

	dist, err = FitGaussian(sample, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, dist.Mean)
	require.Equal(t, 1.0, dist.SD)
}

func TestFitGaussianDegenerate(t *testing.T) {
	sample := split.Sample{{X: 1, Label: 0}, {X: 2, Label: 0}}

	_, err := FitGaussian(sample, 1)
	if !errors.Is(err, ErrDegenerateDistribution) {
		t.Fatalf("expected ErrDegenerateDistribution, got %v", err)
	}
}

func TestGaussianPDF(t *testing.T) {
	dist := Gaussian{Mean: 0, SD: 1}
	require.InDelta(t, 1/math.Sqrt(2*math.Pi), dist.PDF(0), 1e-12)
	require.InDelta(t, dist.PDF(1), dist.PDF(-1), 1e-15)
}
