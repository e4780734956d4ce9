package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateClustersDeterministic(t *testing.T) {
	cfg := ClusterConfig{N0: 50, N1: 40, Mean0: 0, SD0: 1, Mean1: 10, SD1: 2, Seed: 7}

	first, err := GenerateClusters(cfg)
	require.NoError(t, err)
	second, err := GenerateClusters(cfg)
	require.NoError(t, err)
	require.Equal(t, first, second)

	counts := first.LabelCounts()
	require.Equal(t, 50, counts[0])
	require.Equal(t, 40, counts[1])
}

func TestGenerateClustersSeparation(t *testing.T) {
	cfg := ClusterConfig{N0: 200, N1: 200, Mean0: 0, SD0: 1, Mean1: 10, SD1: 1, Seed: 1}

	sample, err := GenerateClusters(cfg)
	require.NoError(t, err)

	var sum0, sum1 float64
	for _, o := range sample {
		if o.Label == 0 {
			sum0 += o.X
		} else {
			sum1 += o.X
		}
	}
	require.InDelta(t, 0, sum0/200, 0.5)
	require.InDelta(t, 10, sum1/200, 0.5)
}

func TestGenerateClustersValidation(t *testing.T) {
	_, err := GenerateClusters(ClusterConfig{N0: 0, N1: 10, SD0: 1, SD1: 1})
	require.Error(t, err)

	_, err = GenerateClusters(ClusterConfig{N0: 10, N1: 10, SD0: 0, SD1: 1})
	require.Error(t, err)
}

func TestStep(t *testing.T) {
	sample := Step(4)
	require.Len(t, sample, 4)
	require.Equal(t, 0, sample[0].Label)
	require.Equal(t, 0, sample[1].Label)
	require.Equal(t, 1, sample[2].Label)
	require.Equal(t, 1, sample[3].Label)
	require.Equal(t, 1.0, sample[0].X)
	require.Equal(t, 4.0, sample[3].X)
}

func TestInterleaved(t *testing.T) {
	sample := Interleaved(5)
	require.Len(t, sample, 5)
	for i, o := range sample {
		require.Equal(t, i%2, o.Label)
		require.Equal(t, float64(i+1), o.X)
	}
}
