// Copyright 2025 The primebench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath summarizes distributions of benchmark timings.
package benchmath

import (
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Sample is a set of repeated measurements of one benchmark trial.
type Sample struct {
	// Values are the measured values, in ascending order.
	Values []float64
}

// NewSample constructs a Sample from a set of measurements.
// It copies values, so the caller's slice is not disturbed.
func NewSample(values []float64) *Sample {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return &Sample{Values: sorted}
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values, Sorted: true}
}

// A Summary holds the descriptive statistics of a Sample.
type Summary struct {
	N      int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// Summarize computes the descriptive statistics of s. It returns the
// zero Summary for an empty sample.
func (s *Sample) Summarize() Summary {
	if len(s.Values) == 0 {
		return Summary{}
	}
	min, max := stats.Bounds(s.Values)
	return Summary{
		N:      len(s.Values),
		Mean:   stats.Mean(s.Values),
		Median: s.sample().Quantile(0.5),
		Min:    min,
		Max:    max,
	}
}
