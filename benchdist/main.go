// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command benchdist plots the distribution of a benchmark metric.
//
// benchdist reads Go benchmark format [1] from the named files or
// standard input, bins each result line by benchmark name or by a
// configuration key, and draws a swarm plot of the chosen metric next
// to its empirical CDF.
//
//	go test -bench Sort -count 20 | benchdist -o sort.png
//	benchdist --bin size --metric B/op --format svg old.txt new.txt
//
// [1] https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/aclements/go-gg/table"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aclements/go-distplot/bench"
	"github.com/aclements/go-distplot/distplot"
	"github.com/aclements/go-distplot/distplot/ggrender"
	"github.com/aclements/go-distplot/distplot/plotrender"
)

type flags struct {
	out        string
	format     string
	engine     string
	config     string
	title      string
	bin        string
	metric     string
	binOrder   []string
	max        float64
	median     bool
	noMean     bool
	grid       bool
	table      bool
	cpuProfile string
	verbose    bool
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := newCommand(log).Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand(log *logrus.Logger) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "benchdist [flags] [inputs...]",
		Short: "Plot the distribution of a benchmark metric",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, log, &f, args)
		},
		SilenceUsage: true,
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.out, "output", "o", "", "write output to `file` (default: stdout)")
	fl.StringVar(&f.format, "format", "png", "image format: png or svg")
	fl.StringVar(&f.engine, "engine", "gonum", "renderer: gonum or gg (svg only)")
	fl.StringVar(&f.config, "config", "", "read plot options from YAML `file`")
	fl.StringVar(&f.title, "title", "", "plot title")
	fl.StringVar(&f.bin, "bin", bench.NameKey, "bin results by configuration `key`")
	fl.StringVar(&f.metric, "metric", "ns/op", "plot results in `unit`")
	fl.StringSliceVar(&f.binOrder, "bin-order", nil, "comma-separated bin display order")
	fl.Float64Var(&f.max, "max", 0, "fixed upper bound for value axes")
	fl.BoolVar(&f.median, "median", false, "draw median lines")
	fl.BoolVar(&f.noMean, "no-mean", false, "don't draw mean lines")
	fl.BoolVar(&f.grid, "grid", false, "draw value gridlines in the swarm panel")
	fl.BoolVar(&f.table, "table", false, "print the samples and per-bin summaries instead of a plot")
	fl.StringVar(&f.cpuProfile, "cpuprofile", "", "write CPU profile to `file`")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log debugging information")
	return cmd
}

func run(cmd *cobra.Command, log *logrus.Logger, f *flags, paths []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	if f.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if f.cpuProfile != "" {
		pf, err := os.Create(f.cpuProfile)
		if err != nil {
			return err
		}
		defer pf.Close()
		if err := pprof.StartCPUProfile(pf); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	opts, err := options(cmd, f)
	if err != nil {
		return err
	}
	opts.Logger = log

	var renderer func(w io.Writer) distplot.Renderer
	switch {
	case f.table:
	case f.engine == "gonum":
		format := plotrender.Format(f.format)
		if format != plotrender.PNG && format != plotrender.SVG {
			return fmt.Errorf("unknown format %q", f.format)
		}
		renderer = func(w io.Writer) distplot.Renderer {
			return &plotrender.Renderer{W: w, Format: format}
		}
	case f.engine == "gg":
		if f.format != "svg" {
			return fmt.Errorf("the gg engine only writes svg")
		}
		renderer = func(w io.Writer) distplot.Renderer {
			return &ggrender.Renderer{W: w}
		}
	default:
		return fmt.Errorf("unknown engine %q", f.engine)
	}

	// Parse benchmark inputs.
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var benchmarks []*bench.Benchmark
	for _, path := range paths {
		bs, err := readBenchmarks(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"path": path, "results": len(bs)}).Debug("read benchmarks")
		benchmarks = append(benchmarks, bs...)
	}
	bench.ParseValues(benchmarks, nil)

	tab, err := benchmarksToTable(log, benchmarks, f.bin, f.metric)
	if err != nil {
		return err
	}
	if len(opts.BinOrder) == 0 {
		opts.BinOrder = bench.BinOrder(benchmarks, f.bin)
	}

	// Prepare for output.
	var w io.Writer = cmd.OutOrStdout()
	if f.out != "" {
		of, err := os.Create(f.out)
		if err != nil {
			return err
		}
		defer of.Close()
		w = of
	}

	if f.table {
		return printTable(w, tab, f.metric, opts.BinOrder)
	}
	err = distplot.Plot(tab, binCol, f.metric, opts, renderer(w))
	if errors.Is(err, distplot.ErrBoundOutOfRange) {
		return fmt.Errorf("%w; set the axis bound with --max or plot another --metric", err)
	}
	return err
}

// options returns the plot options from the config file, if any,
// with explicitly set flags applied on top.
func options(cmd *cobra.Command, f *flags) (distplot.Options, error) {
	opts := distplot.DefaultOptions()
	if f.config != "" {
		cf, err := os.Open(f.config)
		if err != nil {
			return opts, err
		}
		defer cf.Close()
		opts, err = distplot.LoadOptions(cf)
		if err != nil {
			return opts, fmt.Errorf("%s: %w", f.config, err)
		}
	}

	fl := cmd.Flags()
	if fl.Changed("title") {
		opts.Title = f.title
	}
	if fl.Changed("bin-order") {
		opts.BinOrder = f.binOrder
	}
	if fl.Changed("max") {
		opts.MaxResult = f.max
	}
	if fl.Changed("median") {
		opts.MedianLine = f.median
	}
	if fl.Changed("no-mean") {
		opts.MeanLine = !f.noMean
	}
	if fl.Changed("grid") {
		opts.Gridlines = f.grid
	}
	return opts, nil
}

func readBenchmarks(stdin io.Reader, path string) ([]*bench.Benchmark, error) {
	if path == "-" {
		return bench.Parse(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	bs, err := bench.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bs, nil
}

// printTable writes tab followed by a summary of each bin.
func printTable(w io.Writer, tab *table.Table, metric string, order []string) error {
	if err := table.Fprint(w, tab); err != nil {
		return err
	}
	sums, err := summarize(tab, metric, order)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\n%s", sums)
	return err
}
