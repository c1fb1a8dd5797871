// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewECDF(t *testing.T) {
	nan := math.NaN()
	for _, test := range []struct {
		in   []float64
		want ECDF
	}{
		{nil, ECDF{}},
		{[]float64{}, ECDF{}},
		{[]float64{nan, nan}, ECDF{}},
		{[]float64{3, 1, 2}, ECDF{{1, 1.0 / 3}, {2, 2.0 / 3}, {3, 1}}},
		{[]float64{15, nan, 5}, ECDF{{5, 0.5}, {15, 1}}},
		{[]float64{2, 2}, ECDF{{2, 0.5}, {2, 1}}},
	} {
		assert.Equal(t, test.want, NewECDF(test.in), "NewECDF(%v)", test.in)
	}
}

func TestECDFProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	xs := make([]float64, 200)
	for i := range xs {
		xs[i] = r.Float64() * 100
	}
	xs[17] = math.NaN()

	e := NewECDF(xs)
	require.Len(t, e, len(xs)-1)
	assert.Equal(t, 1.0, e[len(e)-1].P)
	for i := 1; i < len(e); i++ {
		assert.True(t, e[i].X > e[i-1].X, "X not increasing at %d", i)
		assert.True(t, e[i].P > e[i-1].P, "P not increasing at %d", i)
	}
	assert.True(t, e[0].P > 0)

	// Input order doesn't matter.
	r.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	assert.Equal(t, e, NewECDF(xs))
}

func TestNewECDFDoesNotModifyInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	NewECDF(xs)
	assert.Equal(t, []float64{3, 1, 2}, xs)
}

func TestECDFMax(t *testing.T) {
	assert.True(t, math.IsNaN(ECDF{}.Max()))
	assert.Equal(t, 15.0, NewECDF([]float64{15, 5}).Max())
}
