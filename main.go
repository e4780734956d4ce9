package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"splitlab/dataset"
	"splitlab/divergence"
	"splitlab/experiment"
	"splitlab/logging"
	"splitlab/report"
	"splitlab/split"
)

type Config struct {
	Data struct {
		Source   string                `yaml:"source"` // generate or csv
		Path     string                `yaml:"path"`
		Clusters dataset.ClusterConfig `yaml:"clusters"`
	} `yaml:"data"`
	Divergence struct {
		GridPoints int `yaml:"grid_points"`
		Bins       int `yaml:"bins"`
	} `yaml:"divergence"`
	Output struct {
		CurveDir string `yaml:"curve_dir"`
	} `yaml:"output"`
	Sweep struct {
		Enabled           bool `yaml:"enabled"`
		experiment.Config `yaml:",inline"`
	} `yaml:"sweep"`
	Watch struct {
		Enabled bool   `yaml:"enabled"`
		Dir     string `yaml:"dir"`
	} `yaml:"watch"`
	Log logging.Config `yaml:"log"`
}

func main() {
	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	config, err := loadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(config.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if config.Watch.Enabled {
		if err := runWatch(config, logger); err != nil {
			logger.Fatal("watch mode failed", zap.Error(err))
		}
		return
	}

	if err := runOnce(config, logger); err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

func loadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}
	if config.Divergence.GridPoints <= 1 {
		config.Divergence.GridPoints = 1000
	}
	if config.Divergence.Bins <= 0 {
		config.Divergence.Bins = 20
	}
	return &config, nil
}

func runOnce(config *Config, logger *zap.Logger) error {
	sample, err := buildSample(config)
	if err != nil {
		return err
	}
	logger.Info("sample ready", zap.Int("observations", len(sample)))

	if err := scoreSample(sample, config, os.Stdout, logger); err != nil {
		return err
	}

	if !config.Sweep.Enabled {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweep, err := experiment.NewSweep(config.Sweep.Config, logger)
	if err != nil {
		return err
	}
	results, err := sweep.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout)
	return report.WriteCells(os.Stdout, results)
}

func runWatch(config *Config, logger *zap.Logger) error {
	if config.Watch.Dir == "" {
		return fmt.Errorf("watch.dir is required")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(config.Watch.Dir); err != nil {
		return err
	}
	logger.Info("watching for csv samples", zap.String("dir", config.Watch.Dir))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".csv") {
				continue
			}
			if err := scoreFile(event.Name, config, logger); err != nil {
				logger.Warn("scoring failed", zap.String("file", event.Name), zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		case <-quit:
			logger.Info("shutting down")
			return nil
		}
	}
}

func scoreFile(path string, config *Config, logger *zap.Logger) error {
	sample, err := dataset.LoadCSV(path)
	if err != nil {
		return err
	}

	reportPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".report.txt"
	out, err := os.Create(reportPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := scoreSample(sample, config, out, logger); err != nil {
		return err
	}
	logger.Info("report written",
		zap.String("file", path),
		zap.String("report", reportPath),
		zap.Int("observations", len(sample)))
	return nil
}

func buildSample(config *Config) (split.Sample, error) {
	switch config.Data.Source {
	case "", "generate":
		return dataset.GenerateClusters(config.Data.Clusters)
	case "csv":
		if config.Data.Path == "" {
			return nil, fmt.Errorf("data.path is required for csv source")
		}
		return dataset.LoadCSV(config.Data.Path)
	default:
		return nil, fmt.Errorf("unknown data source %q", config.Data.Source)
	}
}

func scoreSample(sample split.Sample, config *Config, w io.Writer, logger *zap.Logger) error {
	result, err := split.FindBestSplit(sample)
	if err != nil {
		return err
	}
	if err := report.WriteSplitTable(w, result); err != nil {
		return err
	}

	dist0, err := divergence.FitGaussian(sample, 0)
	if err != nil {
		return err
	}
	dist1, err := divergence.FitGaussian(sample, 1)
	if err != nil {
		return err
	}

	min, max, _ := sample.RangeX()
	grid := divergence.Grid(min, max, config.Divergence.GridPoints)
	parametricCurve := divergence.Curve(dist0, dist1, grid)
	parametric, _ := parametricCurve.Min()

	binnedCurve, err := divergence.BinnedCurve(sample, config.Divergence.Bins)
	if err != nil {
		return err
	}
	binned, _ := binnedCurve.Min()

	fmt.Fprintf(w, "\nclass 0: mean=%.4f sd=%.4f\n", dist0.Mean, dist0.SD)
	fmt.Fprintf(w, "class 1: mean=%.4f sd=%.4f\n", dist1.Mean, dist1.SD)
	fmt.Fprintf(w, "js threshold (parametric): %.6f\n", parametric.Position)
	fmt.Fprintf(w, "js threshold (binned):     %.6f\n", binned.Position)

	logger.Info("sample scored",
		zap.Float64("entropy_threshold", result.Threshold),
		zap.Float64("combined_score", result.Combined),
		zap.Float64("js_threshold", parametric.Position))

	if config.Output.CurveDir == "" {
		return nil
	}
	return writeCurves(config.Output.CurveDir, result.Curve, parametricCurve, binnedCurve)
}

func writeCurves(dir string, entropy split.ScoreCurve, parametric, binned divergence.ScoreCurve) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	writers := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"entropy_curve.csv", func(w io.Writer) error { return report.WriteSplitCurveCSV(w, entropy) }},
		{"js_parametric.csv", func(w io.Writer) error { return report.WriteDivergenceCSV(w, parametric) }},
		{"js_binned.csv", func(w io.Writer) error { return report.WriteDivergenceCSV(w, binned) }},
	}
	for _, item := range writers {
		file, err := os.Create(filepath.Join(dir, item.name))
		if err != nil {
			return err
		}
		if err := item.write(file); err != nil {
			file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}
