// Copyright 2025 The primebench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultOutputDir is the directory benchmark runs write their results
// files into, and the default place Resolve looks for bare stems.
const DefaultOutputDir = "output"

// A NotFoundError reports that no candidate path resolved to an
// existing results file.
type NotFoundError struct {
	Input string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no results file found for %q", e.Input)
}

// Resolve maps a user-supplied path or bare stem to an existing
// results file. It tries, in order: the literal path; for inputs that
// already end in .txt, the default output directory joined with the
// base name; for bare stems, the .txt-suffixed variant and the default
// output directory joined with the .txt-suffixed base name. The first
// candidate naming an existing regular file wins.
func Resolve(input string) (string, error) {
	candidates := []string{input}
	if filepath.Ext(input) == ".txt" {
		candidates = append(candidates, filepath.Join(DefaultOutputDir, filepath.Base(input)))
	} else {
		candidates = append(candidates,
			input+".txt",
			filepath.Join(DefaultOutputDir, filepath.Base(input)+".txt"))
	}
	for _, c := range candidates {
		if fi, err := os.Stat(c); err == nil && fi.Mode().IsRegular() {
			return c, nil
		}
	}
	return "", &NotFoundError{Input: input}
}
