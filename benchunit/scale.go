// Copyright 2025 The primebench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit formats benchmark timings with SI prefixes.
package benchunit

import (
	"fmt"
	"math"
	"strconv"
)

// A Scaler represents a scaling factor for a number and its
// scientific representation.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // Unit prefix ("k", "m", "µ", etc)
}

// Format formats val and appends the unit prefix according to the
// given scale. For example, Format(0.01355) with a milli scale
// returns "13.55m".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

type factor struct {
	factor float64
	prefix string
	// Thresholds for 100.0, 10.00, 1.000.
	t100, t10, t1 float64
}

var siFactors = mkSIFactors()

func mkSIFactors() []factor {
	// Construct the thresholds by parsing their printed
	// representations, so threshold comparisons match how printing
	// itself rounds.
	var factors []factor
	exp := 12
	for _, p := range []string{"T", "G", "M", "k", "", "m", "µ", "n"} {
		t100, _ := strconv.ParseFloat(fmt.Sprintf("99.995e%d", exp), 64)
		t10, _ := strconv.ParseFloat(fmt.Sprintf("9.9995e%d", exp), 64)
		t1, _ := strconv.ParseFloat(fmt.Sprintf(".99995e%d", exp), 64)
		factors = append(factors, factor{math.Pow(10, float64(exp)), p, t100, t10, t1})
		exp -= 3
	}
	return factors
}

// Scale returns a decimal Scaler showing val with at least three
// significant digits.
func Scale(val float64) Scaler {
	v := math.Abs(val)
	if v == 0 {
		return Scaler{3, 1, ""}
	}
	for _, factor := range siFactors {
		switch {
		case v >= factor.t100:
			return Scaler{1, factor.factor, factor.prefix}
		case v >= factor.t10:
			return Scaler{2, factor.factor, factor.prefix}
		case v >= factor.t1:
			return Scaler{3, factor.factor, factor.prefix}
		}
	}
	// Below the smallest factor; print with that factor and enough
	// precision not to lose the leading digits.
	last := siFactors[len(siFactors)-1]
	return Scaler{3, last.factor, last.prefix}
}

// FormatSeconds formats a duration measured in seconds, e.g.
// "13.55ms".
func FormatSeconds(val float64) string {
	return Scale(val).Format(val) + "s"
}
