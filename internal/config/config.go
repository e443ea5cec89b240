// Package config holds the fixed parameters of a run. There are no flags or
// environment variables; options exist for tests and embedding.
package config

import (
	"path/filepath"
)

const (
	// SimpleFractionMax is the upper end of the sampled parallel fractions.
	// It stays below 1 because Simple diverges there.
	SimpleFractionMax = 0.9

	// SimpleSamples is the number of evenly spaced fractions in [0, SimpleFractionMax].
	SimpleSamples = 100

	// MaxProcessors is the largest processor count plotted; counts start at 1.
	MaxProcessors = 10000

	// SimpleChartFile is the speedup-by-fraction chart.
	SimpleChartFile = "Amdahl_simple.png"
	// ProcessorChartFile is the speedup-by-processor-count chart.
	ProcessorChartFile = "Amdahl_processors.png"

	// DefaultWidth and DefaultHeight are the chart size in pixels.
	DefaultWidth  = 640
	DefaultHeight = 480
)

// ProcessorFractions returns the fixed parallel fractions plotted against
// processor count, in legend order.
func ProcessorFractions() []float64 {
	return []float64{0.25, 0.50, 0.75, 0.95}
}

// Option is a functional option for adjusting a Config.
type Option func(*Config)

// Config carries every parameter of a run. Nothing reads globals; the
// calculator and renderer get what they need from here.
type Config struct {
	FractionMax   float64
	Samples       int
	MaxProcessors int
	Fractions     []float64

	OutputDir string
	Width     int
	Height    int
}

// Default returns the hard-coded run parameters with output going to the
// current working directory.
func Default(opts ...Option) *Config {
	cfg := &Config{
		FractionMax:   SimpleFractionMax,
		Samples:       SimpleSamples,
		MaxProcessors: MaxProcessors,
		Fractions:     ProcessorFractions(),
		OutputDir:     ".",
		Width:         DefaultWidth,
		Height:        DefaultHeight,
	}

	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithOutputDir writes the charts into dir instead of the working directory.
func WithOutputDir(dir string) Option {
	return func(cfg *Config) {
		if dir != "" {
			cfg.OutputDir = dir
		}
	}
}

// WithSize sets the pixel size of both charts. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(cfg *Config) {
		if width > 0 && height > 0 {
			cfg.Width = width
			cfg.Height = height
		}
	}
}

// SimpleChartPath is where the fraction-only chart is written.
func (c *Config) SimpleChartPath() string {
	return filepath.Join(c.OutputDir, SimpleChartFile)
}

// ProcessorChartPath is where the processor-count chart is written.
func (c *Config) ProcessorChartPath() string {
	return filepath.Join(c.OutputDir, ProcessorChartFile)
}
