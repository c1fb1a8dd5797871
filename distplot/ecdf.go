// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"math"
	"sort"
)

// An ECDFPoint is a sample X together with the fraction P of samples
// that are ≤ X, counting by rank.
type ECDFPoint struct {
	X, P float64
}

// An ECDF is an empirical cumulative distribution, sorted by X.
type ECDF []ECDFPoint

// NewECDF returns the empirical CDF of samples. NaN samples are
// treated as missing and dropped. The i'th smallest remaining sample
// (counting from 0) gets P = (i+1)/n, so the smallest sample never has
// probability 0 and the largest always has probability 1. Tied samples
// each get their own point.
//
// If no samples remain, NewECDF returns an empty ECDF. Empty ECDFs
// must not be handed to a renderer.
func NewECDF(samples []float64) ECDF {
	xs := finite(samples)
	sort.Float64s(xs)
	out := make(ECDF, len(xs))
	n := float64(len(xs))
	for i, x := range xs {
		out[i] = ECDFPoint{x, float64(i+1) / n}
	}
	return out
}

// Max returns the largest sample in e, or NaN if e is empty.
func (e ECDF) Max() float64 {
	if len(e) == 0 {
		return math.NaN()
	}
	return e[len(e)-1].X
}

// finite returns a new slice holding the non-NaN values of xs.
func finite(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}
