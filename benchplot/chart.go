// Copyright 2025 The primebench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot renders normalized benchmark series as charts.
//
// It is a pure consumer of benchseries output: it never inspects raw
// records, only labeled x/y series plus axis metadata.
package benchplot

import (
	"math"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/izmath/primebench/benchseries"
)

// A Config carries the chart-level metadata the normalizer derived
// from a results file.
type Config struct {
	Title  string
	XLabel string
	YLabel string

	// XTicks, when non-empty, pins the x axis to exactly these tick
	// positions and labels (sieve charts label log-positioned ticks
	// with base^exponent notation).
	XTicks []benchseries.Tick

	// IntegerX forces whole-number x ticks (run indices).
	IntegerX bool

	// UnitYTicks places a y tick on every whole unit from zero up.
	UnitYTicks bool

	// Dashed draws dashed series lines; the averaged view uses this
	// to distinguish itself from the per-run view.
	Dashed bool

	// Width and Height give the canvas size. Zero values default to
	// 10x6 inches.
	Width, Height vg.Length
}

// markers is the fixed marker cycle. Assignment is positional (by
// Series.Style), so re-rendering the same file always yields the same
// shapes.
var markers = []draw.GlyphDrawer{
	draw.CircleGlyph{},
	draw.BoxGlyph{},
	draw.PyramidGlyph{},
	TriUp{},
	TriDown{},
	CrossGlyph{},
}

// New builds a line-and-marker chart from the given series.
func New(series []benchseries.Series, cfg Config) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = cfg.Title
	pl.X.Label.Text = cfg.XLabel
	pl.Y.Label.Text = cfg.YLabel
	pl.Add(plotter.NewGrid())
	pl.Legend.Top = true

	var maxY float64
	for _, s := range series {
		pts := make(plotter.XYs, len(s.X))
		for i := range s.X {
			pts[i].X, pts[i].Y = s.X[i], s.Y[i]
			if s.Y[i] > maxY {
				maxY = s.Y[i]
			}
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(s.Style)
		if cfg.Dashed {
			line.Dashes = plotutil.Dashes(1)
		}
		points.GlyphStyle.Color = plotutil.Color(s.Style)
		points.GlyphStyle.Shape = markers[s.Style%len(markers)]
		pl.Add(line, points)
		pl.Legend.Add(s.Label, line, points)
	}

	if len(cfg.XTicks) > 0 {
		ticks := make([]plot.Tick, len(cfg.XTicks))
		for i, t := range cfg.XTicks {
			ticks[i] = plot.Tick{Value: t.Value, Label: t.Label}
		}
		pl.X.Tick.Marker = plot.ConstantTicks(ticks)
	} else if cfg.IntegerX {
		pl.X.Tick.Marker = integerTicks{}
	}
	if cfg.UnitYTicks {
		pl.Y.Tick.Marker = unitTicks{}
		if pl.Y.Min > 0 {
			pl.Y.Min = 0
		}
		if c := math.Ceil(maxY); pl.Y.Max < c {
			pl.Y.Max = c
		}
	}

	return pl, nil
}

// SaveSVG writes the chart to path in the fixed vector format.
func SaveSVG(pl *plot.Plot, cfg Config, path string) error {
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = 10 * vg.Inch
	}
	if h == 0 {
		h = 6 * vg.Inch
	}
	canvas := vgsvg.New(w, h)
	pl.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := canvas.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// integerTicks marks whole-number positions only, for run-index axes.
type integerTicks struct{}

func (integerTicks) Ticks(min, max float64) []plot.Tick {
	lo := int(math.Ceil(min))
	hi := int(math.Floor(max))
	if hi < lo {
		return nil
	}
	step := 1
	for (hi-lo)/step > 10 {
		step *= 2
	}
	var ticks []plot.Tick
	for v := lo; v <= hi; v += step {
		ticks = append(ticks, plot.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	return ticks
}

// unitTicks marks every whole unit from zero through the axis maximum.
type unitTicks struct{}

func (unitTicks) Ticks(min, max float64) []plot.Tick {
	hi := int(math.Ceil(max))
	if hi < 0 {
		return nil
	}
	step := 1
	for hi/step > 50 {
		step *= 10
	}
	var ticks []plot.Tick
	for v := 0; v <= hi; v += step {
		ticks = append(ticks, plot.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	return ticks
}
