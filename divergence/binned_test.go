package divergence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"splitlab/split"
)

func TestBinnedCurveSeparatedClasses(t *testing.T) {
	sample := make(split.Sample, 0, 10)
	for i := 0; i < 5; i++ {
		sample = append(sample, split.Observation{X: float64(i), Label: 0})
	}
	for i := 5; i < 10; i++ {
		sample = append(sample, split.Observation{X: float64(i), Label: 1})
	}

	curve, err := BinnedCurve(sample, 2)
	require.NoError(t, err)
	require.Len(t, curve, 2)

	// Each bin holds one class exclusively: JS = 0.5 * 1 * log2(1/0.5) = 0.5.
	require.InDelta(t, 0.5, curve[0].Score, 1e-12)
	require.InDelta(t, 0.5, curve[1].Score, 1e-12)

	// Bin centers over [0, 9] with width 4.5.
	require.InDelta(t, 2.25, curve[0].Position, 1e-12)
	require.InDelta(t, 6.75, curve[1].Position, 1e-12)
}

func TestBinnedCurveIdenticalDistributions(t *testing.T) {
	sample := make(split.Sample, 0, 20)
	for i := 0; i < 10; i++ {
		x := float64(i) * 0.7
		sample = append(sample, split.Observation{X: x, Label: 0})
		sample = append(sample, split.Observation{X: x, Label: 1})
	}

	curve, err := BinnedCurve(sample, 4)
	require.NoError(t, err)
	for _, point := range curve {
		if point.Score != 0 {
			t.Fatalf("expected JS 0 in every bin for identical class distributions, got %v at %v", point.Score, point.Position)
		}
	}
}

func TestBinnedCurveEmptyBinsScoreZero(t *testing.T) {
	sample := split.Sample{
		{X: 0, Label: 0}, {X: 0.1, Label: 1},
		{X: 10, Label: 0}, {X: 9.9, Label: 1},
	}

	curve, err := BinnedCurve(sample, 10)
	require.NoError(t, err)
	for _, point := range curve[2:8] {
		require.Equal(t, 0.0, point.Score)
	}
}

func TestBinnedCurveErrors(t *testing.T) {
	oneClass := split.Sample{{X: 1, Label: 0}, {X: 2, Label: 0}}
	_, err := BinnedCurve(oneClass, 4)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData for one-class sample, got %v", err)
	}

	sameX := split.Sample{{X: 3, Label: 0}, {X: 3, Label: 1}}
	_, err = BinnedCurve(sameX, 4)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData for zero-width range, got %v", err)
	}

	_, err = BinnedCurve(oneClass, 0)
	require.Error(t, err)

	multi := split.Sample{{X: 1, Label: 0}, {X: 2, Label: 2}}
	_, err = BinnedCurve(multi, 4)
	require.Error(t, err)
}

func TestBinnedCurveArgmin(t *testing.T) {
	// Mixed middle region scores lower than the pure tails.
	sample := split.Sample{
		{X: 0, Label: 0}, {X: 1, Label: 0}, {X: 2, Label: 0},
		{X: 4, Label: 0}, {X: 4.5, Label: 1},
		{X: 7, Label: 1}, {X: 8, Label: 1}, {X: 9, Label: 1},
	}

	curve, err := BinnedCurve(sample, 3)
	require.NoError(t, err)
	min, ok := curve.Min()
	require.True(t, ok)
	require.Equal(t, curve[1].Position, min.Position)
}
