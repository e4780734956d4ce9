package experiment

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"splitlab/dataset"
	"splitlab/divergence"
	"splitlab/split"
)

// Config defines the sweep grid: every combination of separation, sample
// size, and bin count becomes one cell.
type Config struct {
	Separations []float64 `yaml:"separations"`
	SampleSizes []int     `yaml:"sample_sizes"`
	Bins        []int     `yaml:"bins"`
	SD          float64   `yaml:"sd"`
	GridPoints  int       `yaml:"grid_points"`
	Workers     int       `yaml:"workers"`
	CacheSize   int       `yaml:"cache_size"`
	Seed        uint64    `yaml:"seed"`
}

// Cell identifies one sweep configuration.
type Cell struct {
	Separation float64
	SampleSize int
	Bins       int
}

// CellResult holds the thresholds both scorers produced for one cell.
// Disagreement is the absolute distance between the entropy threshold and
// the parametric divergence threshold.
type CellResult struct {
	Cell
	EntropyThreshold    float64
	EntropyScore        float64
	DivergenceThreshold float64
	BinnedThreshold     float64
	Disagreement        float64
}

// Sweep evaluates both scorers over the configured grid of synthetic
// samples. Cell results are memoized so refinement passes that re-visit a
// cell skip the recomputation.
type Sweep struct {
	config Config
	logger *zap.Logger
	cache  *lru.Cache[Cell, CellResult]
}

func NewSweep(cfg Config, logger *zap.Logger) (*Sweep, error) {
	if len(cfg.Separations) == 0 || len(cfg.SampleSizes) == 0 || len(cfg.Bins) == 0 {
		return nil, errors.New("sweep grid is empty")
	}
	if cfg.SD <= 0 {
		cfg.SD = 1
	}
	if cfg.GridPoints <= 1 {
		cfg.GridPoints = 500
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 256
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cache, err := lru.New[Cell, CellResult](cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Sweep{config: cfg, logger: logger, cache: cache}, nil
}

// Run evaluates every cell and returns results ordered by disagreement,
// largest first.
func (s *Sweep) Run(ctx context.Context) ([]CellResult, error) {
	cells := s.cells()
	s.logger.Info("starting sweep",
		zap.Int("cells", len(cells)),
		zap.Int("workers", s.config.Workers))

	jobs := make(chan Cell)
	results := make([]CellResult, 0, len(cells))
	errs := make([]error, 0)

	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < s.config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cell := range jobs {
				result, err := s.Evaluate(cell)
				mu.Lock()
				if err != nil {
					errs = append(errs, err)
				} else {
					results = append(results, result)
				}
				mu.Unlock()
			}
		}()
	}

	var cancelled error
feed:
	for _, cell := range cells {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break feed
		}
		select {
		case jobs <- cell:
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled != nil {
		return nil, cancelled
	}
	if len(errs) > 0 {
		return nil, errs[0]
	}

	// Workers finish in arbitrary order; break disagreement ties on the cell
	// key so output order is reproducible.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Disagreement != results[j].Disagreement {
			return results[i].Disagreement > results[j].Disagreement
		}
		if results[i].Separation != results[j].Separation {
			return results[i].Separation < results[j].Separation
		}
		if results[i].SampleSize != results[j].SampleSize {
			return results[i].SampleSize < results[j].SampleSize
		}
		return results[i].Bins < results[j].Bins
	})
	s.logger.Info("sweep complete", zap.Int("results", len(results)))
	return results, nil
}

// Evaluate scores a single cell, consulting the memoization cache first.
func (s *Sweep) Evaluate(cell Cell) (CellResult, error) {
	if cached, ok := s.cache.Get(cell); ok {
		return cached, nil
	}

	sample, err := dataset.GenerateClusters(dataset.ClusterConfig{
		N0:    cell.SampleSize,
		N1:    cell.SampleSize,
		Mean0: 0,
		SD0:   s.config.SD,
		Mean1: cell.Separation,
		SD1:   s.config.SD,
		Seed:  s.config.Seed,
	})
	if err != nil {
		return CellResult{}, err
	}

	splitResult, err := split.FindBestSplit(sample)
	if err != nil {
		return CellResult{}, err
	}

	dist0, err := divergence.FitGaussian(sample, 0)
	if err != nil {
		return CellResult{}, err
	}
	dist1, err := divergence.FitGaussian(sample, 1)
	if err != nil {
		return CellResult{}, err
	}

	min, max, _ := sample.RangeX()
	grid := divergence.Grid(min, max, s.config.GridPoints)
	parametric, _ := divergence.Curve(dist0, dist1, grid).Min()

	binnedCurve, err := divergence.BinnedCurve(sample, cell.Bins)
	if err != nil {
		return CellResult{}, err
	}
	binned, _ := binnedCurve.Min()

	result := CellResult{
		Cell:                cell,
		EntropyThreshold:    splitResult.Threshold,
		EntropyScore:        splitResult.Combined,
		DivergenceThreshold: parametric.Position,
		BinnedThreshold:     binned.Position,
		Disagreement:        math.Abs(splitResult.Threshold - parametric.Position),
	}
	s.cache.Add(cell, result)
	s.logger.Debug("cell evaluated",
		zap.Float64("separation", cell.Separation),
		zap.Int("sample_size", cell.SampleSize),
		zap.Int("bins", cell.Bins),
		zap.Float64("entropy_threshold", result.EntropyThreshold),
		zap.Float64("divergence_threshold", result.DivergenceThreshold))
	return result, nil
}

func (s *Sweep) cells() []Cell {
	cells := make([]Cell, 0, len(s.config.Separations)*len(s.config.SampleSizes)*len(s.config.Bins))
	for _, sep := range s.config.Separations {
		for _, size := range s.config.SampleSizes {
			for _, bins := range s.config.Bins {
				cells = append(cells, Cell{Separation: sep, SampleSize: size, Bins: bins})
			}
		}
	}
	return cells
}
