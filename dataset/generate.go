package dataset

import (
	"errors"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"splitlab/split"
)

// ClusterConfig describes a synthetic two-class sample: one Gaussian cluster
// per class.
type ClusterConfig struct {
	N0    int     `yaml:"n0"`
	N1    int     `yaml:"n1"`
	Mean0 float64 `yaml:"mean0"`
	SD0   float64 `yaml:"sd0"`
	Mean1 float64 `yaml:"mean1"`
	SD1   float64 `yaml:"sd1"`
	Seed  uint64  `yaml:"seed"`
}

// GenerateClusters draws N0 observations labeled 0 from N(Mean0, SD0) and N1
// labeled 1 from N(Mean1, SD1). The same config always yields the same
// sample.
func GenerateClusters(cfg ClusterConfig) (split.Sample, error) {
	if cfg.N0 <= 0 || cfg.N1 <= 0 {
		return nil, errors.New("cluster sizes must be positive")
	}
	if cfg.SD0 <= 0 || cfg.SD1 <= 0 {
		return nil, errors.New("cluster standard deviations must be positive")
	}

	src := rand.NewPCG(cfg.Seed, cfg.Seed)
	dist0 := distuv.Normal{Mu: cfg.Mean0, Sigma: cfg.SD0, Src: src}
	dist1 := distuv.Normal{Mu: cfg.Mean1, Sigma: cfg.SD1, Src: src}

	sample := make(split.Sample, 0, cfg.N0+cfg.N1)
	for i := 0; i < cfg.N0; i++ {
		sample = append(sample, split.Observation{X: dist0.Rand(), Label: 0})
	}
	for i := 0; i < cfg.N1; i++ {
		sample = append(sample, split.Observation{X: dist1.Rand(), Label: 1})
	}
	return sample, nil
}

// Step returns n observations at x = 1..n with the lower half labeled 0 and
// the upper half labeled 1.
func Step(n int) split.Sample {
	sample := make(split.Sample, 0, n)
	for i := 0; i < n; i++ {
		label := 0
		if i >= n/2 {
			label = 1
		}
		sample = append(sample, split.Observation{X: float64(i + 1), Label: label})
	}
	return sample
}

// Interleaved returns n observations at x = 1..n with alternating labels, so
// every candidate split leaves both sides mixed.
func Interleaved(n int) split.Sample {
	sample := make(split.Sample, 0, n)
	for i := 0; i < n; i++ {
		sample = append(sample, split.Observation{X: float64(i + 1), Label: i % 2})
	}
	return sample
}
