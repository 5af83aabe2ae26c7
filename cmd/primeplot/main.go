// Copyright 2025 The primebench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Primeplot renders comparison charts from prime-benchmark results
// files.
//
// Usage:
//
//	primeplot [--avg] [--save] [--show|--no-show] [--summary] [results]
//
// The results argument is either a path to a results file or a bare
// stem such as "p_gen_09095529", which is resolved against the
// default output directory. When omitted, the path is prompted for
// interactively. The file's dialect (prime generation or prime sieve)
// is detected from its content, with its name as a fallback.
//
// Primeplot exits 1 on missing or invalid input and 2 when no viewer
// is available to display the chart.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/izmath/primebench/benchfmt"
	"github.com/izmath/primebench/benchmath"
	"github.com/izmath/primebench/benchplot"
	"github.com/izmath/primebench/benchseries"
	"github.com/izmath/primebench/benchunit"
)

type options struct {
	avg     bool
	save    bool
	show    bool
	summary bool
}

// promptFunc obtains the initial results path string when no argument
// was given. It is injected so the core flow never depends on
// interactive I/O.
type promptFunc func() (string, error)

func main() {
	log.SetPrefix("primeplot: ")
	log.SetFlags(0)

	var opts options
	var noShow bool
	root := &cobra.Command{
		Use:           "primeplot [results]",
		Short:         "Plot prime-benchmark results files",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			opts.show = opts.show && !noShow
			prompt := func() (string, error) { return promptPath(os.Stdin, os.Stdout) }
			return run(opts, input, prompt)
		},
	}
	root.Flags().BoolVar(&opts.avg, "avg", false, "generation results only: plot average times instead of per-run values")
	root.Flags().BoolVar(&opts.save, "save", false, "save the chart as SVG next to the input file")
	root.Flags().BoolVar(&opts.show, "show", true, "open the chart in the system viewer")
	root.Flags().BoolVar(&noShow, "no-show", false, "do not open the chart (overrides --show)")
	root.Flags().BoolVar(&opts.summary, "summary", false, "generation results only: print per-algorithm statistics")

	if err := root.Execute(); err != nil {
		log.Print(err)
		var missing *benchplot.MissingDependencyError
		if errors.As(err, &missing) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// promptPath asks for a results path or stem and returns the trimmed
// reply. An empty reply is invalid input.
func promptPath(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "Enter benchmark results filepath or stem (e.g. output/psieve_09190513.txt or psieve_09190513): ")
	s := bufio.NewScanner(r)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return "", err
		}
		return "", errors.New("no input provided for results filepath")
	}
	value := strings.TrimSpace(s.Text())
	if value == "" {
		return "", errors.New("no input provided for results filepath")
	}
	return value, nil
}

// run is the whole pipeline: resolve, read, detect, parse, normalize,
// render. One results file in, at most one chart out.
func run(opts options, input string, prompt promptFunc) error {
	if input == "" {
		var err error
		input, err = prompt()
		if err != nil {
			return err
		}
	}

	path, err := benchfmt.Resolve(input)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	format, err := benchfmt.Detect(bytes.NewReader(data), path)
	if err != nil {
		return err
	}

	var (
		series []benchseries.Series
		cfg    benchplot.Config
		avg    bool
	)
	switch format {
	case benchfmt.FormatPrimeGen:
		recs, bitHint := benchfmt.ParseGeneration(string(data))
		if len(recs) == 0 {
			return &benchseries.EmptyDatasetError{Path: path}
		}
		if opts.summary {
			printSummary(os.Stdout, recs)
		}
		series = benchseries.Generation(recs, opts.avg)
		cfg = genConfig(bitHint, opts.avg)
		avg = opts.avg
	case benchfmt.FormatPrimeSieve:
		ds := benchfmt.ParseSieve(string(data))
		var ticks []benchseries.Tick
		series, ticks, err = benchseries.Sieve(ds, path)
		if err != nil {
			return err
		}
		cfg = sieveConfig(ticks)
	}

	pl, err := benchplot.New(series, cfg)
	if err != nil {
		return err
	}

	out := savePath(path, avg)
	if opts.save {
		if err := benchplot.SaveSVG(pl, cfg, out); err != nil {
			return err
		}
		fmt.Printf("Figure saved as %s\n", out)
	}
	if opts.show {
		view := out
		if !opts.save {
			view = filepath.Join(os.TempDir(), filepath.Base(out))
			if err := benchplot.SaveSVG(pl, cfg, view); err != nil {
				return err
			}
		}
		if err := benchplot.Show(view); err != nil {
			return err
		}
	}
	return nil
}

// savePath places the chart next to the resolved input, named after
// its stem, with an _avg suffix for the averaged view.
func savePath(resolved string, avg bool) string {
	base := filepath.Base(resolved)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if avg {
		stem += "_avg"
	}
	return filepath.Join(filepath.Dir(resolved), stem+".svg")
}

func genConfig(bitSize int, avg bool) benchplot.Config {
	bits := "Unknown"
	if bitSize != 0 {
		bits = strconv.Itoa(bitSize)
	}
	kind := "Execution"
	if avg {
		kind = "Average"
	}
	return benchplot.Config{
		Title:    fmt.Sprintf("%s Time Analysis for Prime Generation Methods (Target Bit Size: %s)", kind, bits),
		XLabel:   "Test Round",
		YLabel:   "Time (seconds)",
		IntegerX: true,
		Dashed:   avg,
		Width:    10 * vg.Inch,
		Height:   6 * vg.Inch,
	}
}

func sieveConfig(ticks []benchseries.Tick) benchplot.Config {
	return benchplot.Config{
		Title:      "Time-per-input analysis over incrementing limits",
		XLabel:     "N",
		YLabel:     "us/n * 1000",
		XTicks:     ticks,
		UnitYTicks: true,
		Width:      8 * vg.Inch,
		Height:     6 * vg.Inch,
	}
}

// printSummary writes a benchstat-style single-file summary table for
// generation records.
func printSummary(w io.Writer, recs []benchfmt.GenRecord) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "algorithm\tcores\truns\tmean\tmedian\tmin\tmax")
	for _, rec := range recs {
		sum := benchmath.NewSample(rec.Times).Summarize()
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			rec.Algorithm, rec.Cores, sum.N,
			benchunit.FormatSeconds(sum.Mean), benchunit.FormatSeconds(sum.Median),
			benchunit.FormatSeconds(sum.Min), benchunit.FormatSeconds(sum.Max))
	}
	tw.Flush()
}
