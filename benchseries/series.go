// Copyright 2025 The primebench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries converts parsed benchmark records into the
// normalized series a chart consumes.
//
// Both dialects normalize to the same shape: a labeled pair of x and y
// sequences plus a positional style index used for deterministic
// marker and color assignment. The renderer never sees raw records.
package benchseries

import (
	"fmt"
	"math"

	"github.com/izmath/primebench/benchfmt"
)

// A Series is one plottable line: a label for the legend, x and y
// values already in chart units, and the positional index of the
// series within its file.
type Series struct {
	Label string
	X, Y  []float64
	Style int
}

// A Tick pairs a plotted x position with the label to display there.
// Sieve charts plot at log10 of the input magnitude but label ticks
// with the literal base^exponent notation.
type Tick struct {
	Value float64
	Label string
}

// An EmptyDatasetError reports a results file that parsed structurally
// but yielded no usable data points.
type EmptyDatasetError struct {
	Path string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("no usable datapoints in %q", e.Path)
}

// Generation builds one series per prime-generation record. The x
// values are 1-based run indices. When avg is set, the y values are
// the record's average time repeated across every run position, so the
// averaged view lines up with the per-run view; otherwise they are the
// per-run times directly.
func Generation(recs []benchfmt.GenRecord, avg bool) []Series {
	series := make([]Series, 0, len(recs))
	for i, rec := range recs {
		s := Series{
			Label: genLabel(rec),
			X:     make([]float64, len(rec.Times)),
			Y:     make([]float64, len(rec.Times)),
			Style: i,
		}
		for j, t := range rec.Times {
			s.X[j] = float64(j + 1)
			if avg {
				s.Y[j] = rec.AvgTime
			} else {
				s.Y[j] = t
			}
		}
		series = append(series, s)
	}
	return series
}

// genLabel formats a record's legend label. A single-core run elides
// the core count.
func genLabel(rec benchfmt.GenRecord) string {
	if rec.Cores > 1 {
		return fmt.Sprintf("%s (cores: %d)", rec.Algorithm, rec.Cores)
	}
	return rec.Algorithm
}

// Sieve normalizes a sieve dataset into one series per algorithm plus
// the x-axis ticks. Every series and the limits are first truncated to
// the shortest available length; ragged input is tolerated, never
// rejected. For each retained point the x value is log10 of the limit
// magnitude (so evenly spaced exponents give evenly spaced ticks) and
// the y value is the scaled time-per-unit-input time*1000/magnitude.
//
// path is used only for the error message when the dataset is empty.
func Sieve(ds *benchfmt.SieveDataset, path string) ([]Series, []Tick, error) {
	if len(ds.Limits) == 0 || len(ds.Algorithms) == 0 {
		return nil, nil, &EmptyDatasetError{Path: path}
	}

	minLen := len(ds.Limits)
	for _, name := range ds.Algorithms {
		if n := len(ds.Series[name]); n < minLen {
			minLen = n
		}
	}
	if minLen == 0 {
		return nil, nil, &EmptyDatasetError{Path: path}
	}

	limits := ds.Limits[:minLen]
	ticks := make([]Tick, minLen)
	xs := make([]float64, minLen)
	for i, l := range limits {
		xs[i] = math.Log10(l.Magnitude())
		ticks[i] = Tick{Value: xs[i], Label: l.String()}
	}

	series := make([]Series, 0, len(ds.Algorithms))
	for i, name := range ds.Algorithms {
		s := Series{
			Label: name,
			X:     xs,
			Y:     make([]float64, minLen),
			Style: i,
		}
		for j, t := range ds.Series[name][:minLen] {
			s.Y[j] = float64(t) * 1000.0 / limits[j].Magnitude()
		}
		series = append(series, s)
	}
	return series, ticks, nil
}
