// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	for _, test := range []struct {
		in           []float64
		mean, median float64
		n            int
		min, max     float64
	}{
		{[]float64{1, 2, 3}, 2, 2, 3, 1, 3},
		{[]float64{10, 20}, 15, 15, 2, 10, 20},
		{[]float64{4, 1, 3, 2}, 2.5, 2.5, 4, 1, 4},
		{[]float64{7, math.NaN(), 1, 1}, 3, 1, 3, 1, 7},
		{[]float64{5}, 5, 5, 1, 5, 5},
	} {
		s, err := Summarize(test.in)
		require.NoError(t, err, "Summarize(%v)", test.in)
		assert.Equal(t, test.n, s.N, "N of %v", test.in)
		assert.InDelta(t, test.mean, s.Mean, 1e-12, "mean of %v", test.in)
		assert.Equal(t, test.median, s.Median, "median of %v", test.in)
		assert.Equal(t, test.min, s.Min, "min of %v", test.in)
		assert.Equal(t, test.max, s.Max, "max of %v", test.in)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize([]float64{math.NaN()})
	assert.ErrorIs(t, err, ErrEmptyBin)
}

func TestRefWidth(t *testing.T) {
	assert.InDelta(t, 0.25, RefWidthAdaptive.HalfWidth(2), 1e-12)
	assert.InDelta(t, 0.1, RefWidthAdaptive.HalfWidth(1), 1e-12)
	assert.Equal(t, 0.3, RefWidthFixed.HalfWidth(2))
	assert.Equal(t, "fixed", RefWidthFixed.String())
}
