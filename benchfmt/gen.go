// Copyright 2025 The primebench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"regexp"
	"strconv"
	"strings"
)

// A GenRecord is one complete algorithm section parsed from a
// prime-generation results file.
type GenRecord struct {
	// Algorithm is the algorithm name from the section's opening line.
	Algorithm string

	// BitSize is the target bit size of the generated primes,
	// or 0 if the section did not carry a parseable "Bit Size:" field.
	BitSize int

	// Cores is the number of cores the trial ran on.
	Cores int

	// Times holds the per-run execution times in seconds.
	Times []float64

	// AvgTime is the reported average execution time in seconds.
	AvgTime float64
}

// genSection accumulates fields while a section's lines are scanned.
// Presence flags distinguish "set to zero" from "never seen", since a
// record is only emitted when every required field was set.
type genSection struct {
	algorithm string
	bitSize   int
	hasBits   bool
	cores     int
	hasCores  bool
	times     []float64
	avgTime   float64
	hasAvg    bool
}

var (
	bracketRE = regexp.MustCompile(`\[(.*?)\]`)
	numberRE  = regexp.MustCompile(`[\d.]+`)
)

// genRule matches one field marker and sets the corresponding section
// field. Rules are evaluated per line in order; the fields themselves
// may appear in the file in any order and any subset.
type genRule struct {
	prefixes []string
	apply    func(s *genSection, line, rest string)
}

var genRules = []genRule{
	{
		prefixes: []string{algorithmPrefix},
		apply: func(s *genSection, _, rest string) {
			s.algorithm = rest
		},
	},
	{
		prefixes: []string{"Bit Size:"},
		apply: func(s *genSection, _, rest string) {
			// An unparseable bit size leaves the field unset; the
			// section can still be complete without it.
			if n, err := strconv.Atoi(rest); err == nil {
				s.bitSize, s.hasBits = n, true
			} else {
				s.bitSize, s.hasBits = 0, false
			}
		},
	},
	{
		// Both spellings appear in the wild; either may set the field.
		prefixes: []string{"Cores:", "Cores Number:"},
		apply: func(s *genSection, _, rest string) {
			if n, err := strconv.Atoi(rest); err == nil {
				s.cores, s.hasCores = n, true
			} else {
				s.cores, s.hasCores = 0, false
			}
		},
	},
	{
		prefixes: []string{"Execution Times (s):", "Time Results (seconds):"},
		apply: func(s *genSection, line, _ string) {
			m := bracketRE.FindStringSubmatch(line)
			if m == nil {
				return
			}
			var times []float64
			for _, tok := range strings.Split(m[1], ",") {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				v, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					continue
				}
				times = append(times, v)
			}
			s.times = times
		},
	},
	{
		prefixes: []string{"Average Time:"},
		apply: func(s *genSection, line, _ string) {
			// Take the first numeric token anywhere on the line, so
			// trailing units like "seconds" are tolerated.
			m := numberRE.FindString(line)
			if m == "" {
				return
			}
			if v, err := strconv.ParseFloat(m, 64); err == nil {
				s.avgTime, s.hasAvg = v, true
			}
		},
	},
}

// ParseGeneration parses the full text of a prime-generation results
// file into the complete records it contains. Sections missing any of
// algorithm, cores, times, or average time are dropped silently;
// noisy benchmark logs routinely contain partial sections and those
// are not errors.
//
// bitHint is the bit size of the first complete record that carried
// one, or 0 when none did. Callers use it as a chart-title fallback.
func ParseGeneration(data string) (recs []GenRecord, bitHint int) {
	var sections [][]string
	var current []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		// A new section begins at each Algorithm: line, except that
		// the very first one opens the first section without flushing.
		if strings.HasPrefix(line, algorithmPrefix) && len(current) > 0 {
			sections = append(sections, current)
			current = []string{line}
			continue
		}
		if line != "" {
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		sections = append(sections, current)
	}

	for _, section := range sections {
		rec, ok := parseGenSection(section)
		if !ok {
			continue
		}
		recs = append(recs, rec)
		if bitHint == 0 && rec.BitSize != 0 {
			bitHint = rec.BitSize
		}
	}
	return recs, bitHint
}

// parseGenSection scans one section's lines against the field rules
// and reports whether the section was complete.
func parseGenSection(lines []string) (GenRecord, bool) {
	var s genSection
	for _, line := range lines {
	rules:
		for _, rule := range genRules {
			for _, prefix := range rule.prefixes {
				if strings.HasPrefix(line, prefix) {
					rule.apply(&s, line, strings.TrimSpace(line[len(prefix):]))
					break rules
				}
			}
		}
	}
	if s.algorithm == "" || !s.hasCores || len(s.times) == 0 || !s.hasAvg {
		return GenRecord{}, false
	}
	return GenRecord{
		Algorithm: s.algorithm,
		BitSize:   s.bitSize,
		Cores:     s.cores,
		Times:     s.times,
		AvgTime:   s.avgTime,
	}, true
}
