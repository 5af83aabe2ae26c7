// Copyright 2025 The primebench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Limit is one sieve test point. The tested input magnitude is
// Base**Exp; the pair is kept separate so axis labels can show the
// literal notation.
type Limit struct {
	Base, Exp int
}

// Magnitude returns the numeric value Base**Exp.
func (l Limit) Magnitude() float64 {
	return math.Pow(float64(l.Base), float64(l.Exp))
}

func (l Limit) String() string {
	return fmt.Sprintf("%d^%d", l.Base, l.Exp)
}

// A SieveDataset holds the contents of a prime-sieve results file:
// the tested limits and one integer timing series per algorithm.
//
// Algorithms preserves first-insertion order, which downstream code
// uses for legend ordering. A repeated algorithm name overwrites its
// series but keeps its original position.
type SieveDataset struct {
	Limits     []Limit
	Algorithms []string
	Series     map[string][]int
}

// ParseSieve parses the full text of a prime-sieve results file.
//
// The limits line tolerates junk per token: a token that does not have
// the base^exponent shape is skipped without invalidating the rest.
// Series lines are stricter: a single unparseable integer drops that
// whole line. The asymmetry is intentional and matches how these
// files are produced.
func ParseSieve(data string) *SieveDataset {
	ds := &SieveDataset{Series: make(map[string][]int)}

	var lines []string
	for _, line := range strings.Split(data, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	for _, line := range lines {
		if !strings.HasPrefix(line, limitsPrefix) {
			continue
		}
		_, rhs, _ := strings.Cut(line, ":")
		for _, tok := range strings.Split(strings.Trim(strings.TrimSpace(rhs), "[]"), ",") {
			tok = strings.TrimSpace(tok)
			base, exp, ok := strings.Cut(tok, "^")
			if !ok {
				continue
			}
			b, err := strconv.Atoi(strings.TrimSpace(base))
			if err != nil {
				continue
			}
			e, err := strconv.Atoi(strings.TrimSpace(exp))
			if err != nil {
				continue
			}
			ds.Limits = append(ds.Limits, Limit{Base: b, Exp: e})
		}
		break
	}

	for _, line := range lines {
		if strings.HasPrefix(line, limitsPrefix) || strings.HasPrefix(line, resultsPrefix) {
			continue
		}
		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if !strings.HasPrefix(value, "[") || !strings.HasSuffix(value, "]") {
			continue
		}
		times, ok := parseIntList(strings.Trim(value, "[]"))
		if !ok {
			continue
		}
		if _, seen := ds.Series[name]; !seen {
			ds.Algorithms = append(ds.Algorithms, name)
		}
		ds.Series[name] = times
	}

	return ds
}

// parseIntList parses a comma-separated integer list. Blank tokens are
// ignored; any other unparseable token rejects the whole list.
func parseIntList(s string) ([]int, bool) {
	times := []int{}
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, false
		}
		times = append(times, v)
	}
	return times, true
}
