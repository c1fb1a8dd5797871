// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the aggregate statistics of one bin.
type Summary struct {
	N      int
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes the Summary of the non-NaN values in xs. The
// median of an even number of values is the mean of the two middle
// values. StdDev is the sample standard deviation and is NaN for a
// single value.
func Summarize(xs []float64) (Summary, error) {
	vals := finite(xs)
	if len(vals) == 0 {
		return Summary{}, ErrEmptyBin
	}
	sort.Float64s(vals)

	n := len(vals)
	median := vals[n/2]
	if n%2 == 0 {
		median = (vals[n/2-1] + vals[n/2]) / 2
	}
	mean, std := stat.MeanStdDev(vals, nil)
	return Summary{
		N:      n,
		Mean:   mean,
		Median: median,
		StdDev: std,
		Min:    vals[0],
		Max:    vals[n-1],
	}, nil
}

// RefWidth selects the width of the bin reference lines.
type RefWidth int

const (
	// RefWidthAdaptive narrows the lines as bins are added:
	// 0.8 - 0.6/bins.
	RefWidthAdaptive RefWidth = iota

	// RefWidthFixed always draws lines 0.6 wide.
	RefWidthFixed
)

func (w RefWidth) String() string {
	switch w {
	case RefWidthAdaptive:
		return "adaptive"
	case RefWidthFixed:
		return "fixed"
	}
	return fmt.Sprintf("RefWidth(%d)", int(w))
}

// HalfWidth returns half the width, in category units, of the
// reference lines drawn across each of bins categories.
func (w RefWidth) HalfWidth(bins int) float64 {
	if w == RefWidthFixed || bins <= 0 {
		return 0.6 / 2
	}
	return (0.8 - 0.6/float64(bins)) / 2
}
