// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/aclements/go-gg/table"
	"github.com/sirupsen/logrus"

	"github.com/aclements/go-distplot/bench"
	"github.com/aclements/go-distplot/distplot"
)

// binCol is the name of the bin label column.
const binCol = "bin"

var errNoResults = errors.New("no benchmark results")

// benchmarksToTable returns a table with one row per benchmark that
// has a binKey. The metric column is NaN for benchmarks that did not
// report metric.
func benchmarksToTable(log logrus.FieldLogger, bs []*bench.Benchmark, binKey, metric string) (*table.Table, error) {
	var (
		bins  []string
		names []string
		iters []int
		vals  []float64
	)
	skipped, missing := 0, 0
	for _, b := range bs {
		label, ok := b.Bin(binKey)
		if !ok {
			skipped++
			continue
		}
		v := b.Metric(metric)
		if v != v {
			missing++
		}
		bins = append(bins, label)
		names = append(names, b.Name)
		iters = append(iters, b.Iterations)
		vals = append(vals, v)
	}
	if skipped > 0 {
		log.WithFields(logrus.Fields{"key": binKey, "skipped": skipped}).
			Warn("skipping results without bin key")
	}
	if len(bins) == 0 {
		return nil, fmt.Errorf("%w with bin key %q", errNoResults, binKey)
	}
	if missing == len(vals) {
		return nil, fmt.Errorf("%w in %s (have %s)", errNoResults, metric, strings.Join(bench.Units(bs), ", "))
	}
	if missing > 0 {
		log.WithFields(logrus.Fields{"metric": metric, "missing": missing}).
			Debug("results without metric")
	}

	tab := new(table.Builder).Add(binCol, bins)
	if binKey != bench.NameKey && binKey != "" {
		tab.Add("name", names)
	}
	return tab.Add("iterations", iters).Add(metric, vals).Done(), nil
}

// summarize formats the summary statistics of each bin in order.
func summarize(tab *table.Table, metric string, order []string) (string, error) {
	labels := tab.MustColumn(binCol).([]string)
	vals := tab.MustColumn(metric).([]float64)
	byBin := make(map[string][]float64)
	for i, l := range labels {
		byBin[l] = append(byBin[l], vals[i])
	}

	var buf strings.Builder
	tw := tabwriter.NewWriter(&buf, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\tn\tmean\tmedian\tstddev\tmin\tmax\t\n", binCol)
	for _, l := range order {
		s, err := distplot.Summarize(byBin[l])
		if errors.Is(err, distplot.ErrEmptyBin) {
			fmt.Fprintf(tw, "%s\t0\t\t\t\t\t\t\n", l)
			continue
		} else if err != nil {
			return "", err
		}
		f := distplot.AxisFormatter(s.Max)
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t\n", l, s.N,
			f(s.Mean), f(s.Median), f(s.StdDev), f(s.Min), f(s.Max))
	}
	if err := tw.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
