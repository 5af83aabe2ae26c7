// Copyright 2025 The primebench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izmath/primebench/benchfmt"
	"github.com/izmath/primebench/benchseries"
)

func TestPromptPath(t *testing.T) {
	var out strings.Builder
	got, err := promptPath(strings.NewReader("  output/p_gen_001.txt \n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "output/p_gen_001.txt", got)
	assert.Contains(t, out.String(), "Enter benchmark results filepath or stem")
}

func TestPromptPathEmpty(t *testing.T) {
	var out strings.Builder
	_, err := promptPath(strings.NewReader("   \n"), &out)
	assert.Error(t, err)

	_, err = promptPath(strings.NewReader(""), &out)
	assert.Error(t, err)
}

func TestSavePath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("output", "p_gen_001.svg"),
		savePath(filepath.Join("output", "p_gen_001.txt"), false))
	assert.Equal(t,
		filepath.Join("output", "p_gen_001_avg.svg"),
		savePath(filepath.Join("output", "p_gen_001.txt"), true))
}

func TestGenConfigTitle(t *testing.T) {
	assert.Equal(t,
		"Execution Time Analysis for Prime Generation Methods (Target Bit Size: 1024)",
		genConfig(1024, false).Title)
	assert.Equal(t,
		"Average Time Analysis for Prime Generation Methods (Target Bit Size: Unknown)",
		genConfig(0, true).Title)
	assert.True(t, genConfig(0, true).Dashed)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func noPrompt(t *testing.T) promptFunc {
	return func() (string, error) {
		t.Fatal("prompt called with an explicit input")
		return "", nil
	}
}

func TestRunNotFound(t *testing.T) {
	chdir(t, t.TempDir())
	err := run(options{}, "missing", noPrompt(t))
	var nfe *benchfmt.NotFoundError
	assert.ErrorAs(t, err, &nfe)
}

func TestRunUnrecognized(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("nothing recognizable\n"), 0666))

	err := run(options{}, path, noPrompt(t))
	var ufe *benchfmt.UnrecognizedFormatError
	assert.ErrorAs(t, err, &ufe)
}

func TestRunEmptyGeneration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p_gen_empty.txt")
	// Detects as generation but has no complete section.
	require.NoError(t, os.WriteFile(path, []byte("Algorithm: X\nCores: 1\n"), 0666))

	err := run(options{}, path, noPrompt(t))
	var ede *benchseries.EmptyDatasetError
	assert.ErrorAs(t, err, &ede)
}

func TestRunSaveGeneration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p_gen_001.txt")
	const data = `Algorithm: Miller-Rabin
Bit Size: 1024
Cores: 4
Execution Times (s): [0.5, 0.6, 0.7]
Average Time: 0.6 seconds
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0666))

	require.NoError(t, run(options{save: true}, path, noPrompt(t)))

	svg, err := os.ReadFile(filepath.Join(dir, "p_gen_001.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestRunSaveSieveAveragedName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "psieve_001.txt")
	const data = `Test Limits: [10^3, 10^4]
Test Results:
Eratosthenes: [5, 40]
Atkin: [7, 52]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0666))

	// --avg applies to the generation dialect only; the sieve chart
	// keeps the plain name.
	require.NoError(t, run(options{save: true}, path, noPrompt(t)))
	_, err := os.Stat(filepath.Join(dir, "psieve_001.svg"))
	assert.NoError(t, err)
}

func TestRunPromptFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p_gen_002.txt")
	const data = `Algorithm: X
Cores: 1
Execution Times (s): [1.0]
Average Time: 1.0
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0666))

	called := false
	prompt := func() (string, error) {
		called = true
		return path, nil
	}
	require.NoError(t, run(options{save: true}, "", prompt))
	assert.True(t, called)
}

func TestRunPromptError(t *testing.T) {
	prompt := func() (string, error) {
		return "", errors.New("no input provided for results filepath")
	}
	assert.Error(t, run(options{}, "", prompt))
}
