// Copyright 2025 The primebench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads prime-benchmark results files.
//
// Two text dialects are supported: prime-generation results, which
// consist of labeled sections opened by an "Algorithm:" line, and
// prime-sieve results, which consist of a "Test Limits:" line followed
// by one timing series per algorithm. Detect classifies a file into
// one of the dialects; ParseGeneration and ParseSieve extract its
// records.
package benchfmt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// A Format identifies one of the recognized results-file dialects.
type Format int

const (
	FormatUnknown Format = iota
	FormatPrimeGen
	FormatPrimeSieve
)

func (f Format) String() string {
	switch f {
	case FormatPrimeGen:
		return "prime-generation"
	case FormatPrimeSieve:
		return "prime-sieve"
	}
	return "unknown"
}

// An UnrecognizedFormatError reports a results file whose dialect
// could not be determined from either its content or its name.
type UnrecognizedFormatError struct {
	Path string
}

func (e *UnrecognizedFormatError) Error() string {
	return fmt.Sprintf("%s: unrecognized results format (expected a %q or %q marker line)", e.Path, limitsPrefix, algorithmPrefix)
}

const (
	algorithmPrefix = "Algorithm:"
	limitsPrefix    = "Test Limits:"
	resultsPrefix   = "Test Results:"

	// probeLimit bounds how many leading lines Detect inspects, so
	// classification never scans a large file end to end.
	probeLimit = 40
)

// Detect classifies the results file read from r. Content is
// authoritative: a "Test Limits:" line anywhere in the probe window
// wins over an "Algorithm:" line, regardless of which appears first.
// Only when neither marker is found does Detect fall back to the
// name of path (psieve_* or p_gen_*), and failing that it returns an
// *UnrecognizedFormatError.
func Detect(r io.Reader, path string) (Format, error) {
	probe := make([]string, 0, probeLimit)
	s := bufio.NewScanner(r)
	for len(probe) < probeLimit && s.Scan() {
		probe = append(probe, strings.TrimSpace(s.Text()))
	}
	if err := s.Err(); err != nil {
		return FormatUnknown, fmt.Errorf("%s: %w", path, err)
	}

	for _, line := range probe {
		if strings.HasPrefix(line, limitsPrefix) {
			return FormatPrimeSieve, nil
		}
	}
	for _, line := range probe {
		if strings.HasPrefix(line, algorithmPrefix) {
			return FormatPrimeGen, nil
		}
	}

	// Filename is a last-resort, low-confidence signal.
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasPrefix(name, "psieve_"):
		return FormatPrimeSieve, nil
	case strings.HasPrefix(name, "p_gen_"):
		return FormatPrimeGen, nil
	}
	return FormatUnknown, &UnrecognizedFormatError{Path: path}
}

// DetectFile opens path, classifies it with Detect, and closes it.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, err
	}
	defer f.Close()
	return Detect(f, path)
}
