// Command orientplot renders where the naive float64 orientation test goes
// wrong next to the filtered predicate.
//
// Usage:
//
//	orientplot -config plot.yaml -output plot.png
//
// Every setting can also be given as ORIENTPLOT_* environment variables,
// e.g. ORIENTPLOT_CELLS=128 or ORIENTPLOT_P_X=0.5.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	robust "github.com/gogpu/gg-robust"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		output     = flag.String("output", "", "output file (overrides config)")
		cells      = flag.Int("cells", 0, "ulp steps per axis (overrides config)")
		scale      = flag.Int("scale", 0, "pixels per cell (overrides config)")
		workers    = flag.Int("workers", 0, "parallel workers (overrides config)")
		verbose    = flag.Bool("v", false, "log exact fallbacks")
	)
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *cells > 0 {
		cfg.Cells = *cells
	}
	if *scale > 0 {
		cfg.Scale = *scale
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if *verbose {
		robust.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	grid, err := Compute(cfg)
	if err != nil {
		log.Fatalf("Failed to classify: %v", err)
	}
	if err := Render(grid, cfg); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	Summarize(grid).Print(os.Stdout, cfg.Language)
	log.Printf("Plot saved to %s (%dx%d cells)\n", cfg.Output, cfg.Cells, cfg.Cells)
}
