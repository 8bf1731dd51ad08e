package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// envPrefix prefixes every environment override, e.g. ORIENTPLOT_CELLS.
const envPrefix = "ORIENTPLOT_"

// Point is a plot coordinate.
type Point struct {
	X float64 `yaml:"x" env:"X"`
	Y float64 `yaml:"y" env:"Y"`
}

// Config controls the plot.
//
// The plot classifies p + (i, j) ulps against the line through q and r for
// i, j in [0, Cells), as in Kettner et al., "Classroom examples of
// robustness problems in geometric computations".
type Config struct {
	// Output is the PNG path.
	Output string `yaml:"output" env:"OUTPUT"`

	// Cells is the number of ulp steps along each axis.
	Cells int `yaml:"cells" env:"CELLS"`

	// Scale is the size of one cell in pixels.
	Scale int `yaml:"scale" env:"SCALE"`

	// Language tags the summary's number formatting (BCP 47).
	Language string `yaml:"language" env:"LANGUAGE"`

	// Workers evaluates the robust panel in parallel when above 1.
	Workers int `yaml:"workers" env:"WORKERS"`

	P Point `yaml:"p" envPrefix:"P_"`
	Q Point `yaml:"q" envPrefix:"Q_"`
	R Point `yaml:"r" envPrefix:"R_"`
}

// DefaultConfig returns the configuration of the classic plot.
func DefaultConfig() Config {
	return Config{
		Output:   "orientplot.png",
		Cells:    256,
		Scale:    2,
		Language: "en",
		Workers:  1,
		P:        Point{X: 0.5, Y: 0.5},
		Q:        Point{X: 12, Y: 12},
		R:        Point{X: 24, Y: 24},
	}
}

// LoadConfig returns the defaults overlaid with the YAML file at path (if
// path is not empty) and then with environment variables.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	var errs []error
	if c.Output == "" {
		errs = append(errs, errors.New("output must not be empty"))
	}
	if c.Cells <= 0 || c.Cells > 4096 {
		errs = append(errs, fmt.Errorf("cells must be in [1, 4096], got %d", c.Cells))
	}
	if c.Scale <= 0 || c.Scale > 64 {
		errs = append(errs, fmt.Errorf("scale must be in [1, 64], got %d", c.Scale))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	return errors.Join(errs...)
}
