// Copyright 2025 The primebench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izmath/primebench/benchfmt"
)

func TestGenerationPerRun(t *testing.T) {
	recs := []benchfmt.GenRecord{
		{Algorithm: "X", Cores: 1, Times: []float64{0.5, 0.6, 0.7}, AvgTime: 0.6},
		{Algorithm: "Y", Cores: 4, Times: []float64{1.0, 1.2}, AvgTime: 1.1},
	}
	series := Generation(recs, false)
	require.Len(t, series, 2)

	assert.Equal(t, "X", series[0].Label, "single-core labels elide the core count")
	assert.Equal(t, "Y (cores: 4)", series[1].Label)
	assert.Equal(t, []float64{1, 2, 3}, series[0].X, "x values are 1-based run indices")
	assert.Equal(t, []float64{0.5, 0.6, 0.7}, series[0].Y)
	assert.Equal(t, 0, series[0].Style)
	assert.Equal(t, 1, series[1].Style)
}

func TestGenerationAveraged(t *testing.T) {
	recs := []benchfmt.GenRecord{
		{Algorithm: "X", Cores: 2, Times: []float64{0.5, 0.7, 0.9}, AvgTime: 0.7},
	}
	series := Generation(recs, true)
	require.Len(t, series, 1)
	assert.Equal(t, "X (cores: 2)", series[0].Label)
	assert.Equal(t, []float64{0.7, 0.7, 0.7}, series[0].Y, "averaged view repeats the mean per run position")
	assert.Equal(t, []float64{1, 2, 3}, series[0].X)
}

func TestGenerationEmpty(t *testing.T) {
	assert.Empty(t, Generation(nil, false))
}

func TestSieveScaleLaw(t *testing.T) {
	ds := &benchfmt.SieveDataset{
		Limits:     []benchfmt.Limit{{Base: 10, Exp: 3}},
		Algorithms: []string{"A"},
		Series:     map[string][]int{"A": {2}},
	}
	series, ticks, err := Sieve(ds, "t.txt")
	require.NoError(t, err)
	require.Len(t, series, 1)

	// time=2 at magnitude 1000 normalizes to 2*1000/1000 = 2.
	assert.Equal(t, []float64{2.0}, series[0].Y)
	assert.InDelta(t, 3.0, series[0].X[0], 1e-12, "x is log10 of the magnitude")
	require.Len(t, ticks, 1)
	assert.Equal(t, "10^3", ticks[0].Label)
	assert.Equal(t, series[0].X[0], ticks[0].Value)
}

func TestSieveTruncation(t *testing.T) {
	ds := &benchfmt.SieveDataset{
		Limits:     []benchfmt.Limit{{Base: 10, Exp: 3}, {Base: 10, Exp: 4}},
		Algorithms: []string{"A", "B"},
		Series: map[string][]int{
			"A": {1, 2},
			"B": {3},
		},
	}
	series, ticks, err := Sieve(ds, "t.txt")
	require.NoError(t, err)

	// min over series lengths and limits is 1; nothing exceeds it.
	assert.Len(t, ticks, 1)
	for _, s := range series {
		assert.Len(t, s.X, 1)
		assert.Len(t, s.Y, 1)
	}
	assert.Equal(t, "A", series[0].Label)
	assert.Equal(t, "B", series[1].Label)
}

func TestSieveEvenExponentsEvenSpacing(t *testing.T) {
	ds := &benchfmt.SieveDataset{
		Limits:     []benchfmt.Limit{{Base: 10, Exp: 3}, {Base: 10, Exp: 4}, {Base: 10, Exp: 5}},
		Algorithms: []string{"A"},
		Series:     map[string][]int{"A": {1, 10, 100}},
	}
	series, _, err := Sieve(ds, "t.txt")
	require.NoError(t, err)
	xs := series[0].X
	assert.InDelta(t, xs[1]-xs[0], xs[2]-xs[1], 1e-9)
}

func TestSieveEmptyDataset(t *testing.T) {
	tests := []struct {
		name string
		ds   *benchfmt.SieveDataset
	}{
		{
			name: "no limits",
			ds: &benchfmt.SieveDataset{
				Algorithms: []string{"A"},
				Series:     map[string][]int{"A": {1}},
			},
		},
		{
			name: "no series",
			ds: &benchfmt.SieveDataset{
				Limits: []benchfmt.Limit{{Base: 10, Exp: 3}},
				Series: map[string][]int{},
			},
		},
		{
			name: "an empty series forces min_len zero",
			ds: &benchfmt.SieveDataset{
				Limits:     []benchfmt.Limit{{Base: 10, Exp: 3}},
				Algorithms: []string{"A", "B"},
				Series:     map[string][]int{"A": {1}, "B": {}},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := Sieve(test.ds, "empty.txt")
			var ede *EmptyDatasetError
			require.ErrorAs(t, err, &ede)
			assert.Equal(t, "empty.txt", ede.Path)
		})
	}
}

func TestSieveSharedXSlice(t *testing.T) {
	// All series share the same x positions.
	ds := &benchfmt.SieveDataset{
		Limits:     []benchfmt.Limit{{Base: 2, Exp: 10}, {Base: 2, Exp: 20}},
		Algorithms: []string{"A", "B"},
		Series:     map[string][]int{"A": {1, 2}, "B": {3, 4}},
	}
	series, _, err := Sieve(ds, "t.txt")
	require.NoError(t, err)
	assert.Equal(t, series[0].X, series[1].X)
	assert.InDelta(t, 10*math.Log10(2), series[0].X[0], 1e-12)
}
