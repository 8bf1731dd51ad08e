package main

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	robust "github.com/gogpu/gg-robust"
	"github.com/gogpu/gg-robust/predicates"
)

// Grid holds both classifications of every cell, row-major from the
// bottom-left corner.
type Grid struct {
	N      int
	Naive  []robust.Orientation
	Robust []robust.Orientation
	Stats  robust.Stats
}

// axis returns n consecutive float64 values starting at x.
func axis(x float64, n int) []float64 {
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = x
		x = math.Nextafter(x, math.Inf(1))
	}
	return vs
}

// Compute classifies every cell with the naive and the filtered predicate.
func Compute(cfg Config) (Grid, error) {
	n := cfg.Cells
	xs, ys := axis(cfg.P.X, n), axis(cfg.P.Y, n)
	q, r := gg.Pt(cfg.Q.X, cfg.Q.Y), gg.Pt(cfg.R.X, cfg.R.Y)

	g := Grid{
		N:      n,
		Naive:  make([]robust.Orientation, n*n),
		Robust: make([]robust.Orientation, n*n),
	}

	argSets := make([][]gg.Point, 0, n*n)
	for j := range n {
		for i := range n {
			p := gg.Pt(xs[i], ys[j])
			g.Naive[j*n+i] = predicates.NaiveOrient2D(p, q, r)
			argSets = append(argSets, []gg.Point{p, q, r})
		}
	}

	orient := predicates.NewOrient[gg.Point](predicates.WithFilterOptions(robust.WithName("orientplot")))

	if cfg.Workers > 1 {
		batch := robust.NewBatch(cfg.Workers)
		defer batch.Close()

		results, err := robust.EvalAll(batch, orient.Predicate(), argSets)
		if err != nil {
			return Grid{}, err
		}
		copy(g.Robust, results)
	} else {
		for k, args := range argSets {
			o, err := orient.Orientation(args[0], args[1], args[2])
			if err != nil {
				return Grid{}, fmt.Errorf("cell %d: %w", k, err)
			}
			g.Robust[k] = o
		}
	}

	g.Stats = orient.Stats()
	return g, nil
}

// orientationColor returns the fill color of an orientation.
func orientationColor(o robust.Orientation) (r, g, b float64) {
	switch o {
	case robust.CounterClockwise:
		return 0.20, 0.35, 0.75
	case robust.Clockwise:
		return 0.95, 0.55, 0.15
	default:
		return 0.98, 0.90, 0.20
	}
}

// panelGap is the blank space between the two panels, in pixels.
const panelGap = 8

// Render draws the naive panel on the left and the filtered panel on the
// right and saves the PNG.
func Render(g Grid, cfg Config) error {
	s := float64(cfg.Scale)
	side := g.N * cfg.Scale

	dc := gg.NewContext(2*side+panelGap, side)
	defer func() { _ = dc.Close() }()

	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, float64(2*side+panelGap), float64(side))
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("fill background: %w", err)
	}

	panels := []struct {
		cells   []robust.Orientation
		offsetX float64
	}{
		{g.Naive, 0},
		{g.Robust, float64(side + panelGap)},
	}

	// One path per color and panel keeps the number of fills at six.
	for _, panel := range panels {
		for _, o := range []robust.Orientation{robust.CounterClockwise, robust.Clockwise, robust.Collinear} {
			dc.SetRGB(orientationColor(o))
			for k, c := range panel.cells {
				if c != o {
					continue
				}
				i, j := k%g.N, k/g.N
				dc.DrawRectangle(panel.offsetX+float64(i)*s, float64(g.N-1-j)*s, s, s)
			}
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("fill %v cells: %w", o, err)
			}
		}
	}

	return dc.SavePNG(cfg.Output)
}

// Summary counts what the plot shows.
type Summary struct {
	Cells         int
	Certain       uint64
	Fallbacks     uint64
	Disagreements int
	Collinear     int
}

// Summarize compares the two panels.
func Summarize(g Grid) Summary {
	s := Summary{
		Cells:     len(g.Robust),
		Fallbacks: g.Stats.Fallbacks,
		Certain:   g.Stats.Calls - g.Stats.Fallbacks,
	}
	for k, o := range g.Robust {
		if g.Naive[k] != o {
			s.Disagreements++
		}
		if o == robust.Collinear {
			s.Collinear++
		}
	}
	return s
}

// Print writes the summary with numbers formatted for lang.
func (s Summary) Print(w io.Writer, lang string) {
	p := message.NewPrinter(language.Make(lang))
	p.Fprintf(w, "cells:               %d\n", s.Cells)
	p.Fprintf(w, "decided by interval: %d\n", s.Certain)
	p.Fprintf(w, "exact fallbacks:     %d\n", s.Fallbacks)
	p.Fprintf(w, "exactly collinear:   %d\n", s.Collinear)
	p.Fprintf(w, "naive float wrong:   %d\n", s.Disagreements)
}
