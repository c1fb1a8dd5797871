// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swarm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aclements/go-distplot/distplot"
)

func TestOffsetsSeparated(t *testing.T) {
	// Points far apart in y all sit on the center line.
	got := Offsets([]float64{0, 10, 20}, 0.1, 1, 0.4)
	assert.Equal(t, []float64{0, 0, 0}, got)
}

func TestOffsetsTies(t *testing.T) {
	got := Offsets([]float64{5, 5, 5}, 0.1, 1, 0.4)
	assert.Equal(t, 0.0, got[0])
	assert.InDelta(t, 0.1, got[1], 1e-12)
	assert.InDelta(t, -0.1, got[2], 1e-12)
}

func TestOffsetsNoOverlap(t *testing.T) {
	ys := []float64{1, 1.2, 1.1, 0.9, 1.05, 3, 1.15, 0.95}
	dx, dy := 0.05, 0.5
	got := Offsets(ys, dx, dy, 1)
	for i := range ys {
		assert.LessOrEqual(t, math.Abs(got[i]), 1.0)
		for j := i + 1; j < len(ys); j++ {
			ex, ey := (got[i]-got[j])/dx, (ys[i]-ys[j])/dy
			assert.GreaterOrEqual(t, ex*ex+ey*ey, 1-1e-9, "points %d and %d overlap", i, j)
		}
	}
}

func TestOffsetsClamped(t *testing.T) {
	got := Offsets([]float64{1, 1, 1, 1, 1}, 0.3, 1, 0.3)
	for _, x := range got {
		assert.LessOrEqual(t, math.Abs(x), 0.3+1e-12)
	}
}

func TestOffsetsEmpty(t *testing.T) {
	assert.Empty(t, Offsets(nil, 0.1, 1, 0.4))
	assert.Equal(t, []float64{0, 0}, Offsets([]float64{1, 1}, 0, 1, 0.4))
}

func TestOffsetsManyTies(t *testing.T) {
	ys := make([]float64, 3000)
	for i := range ys {
		ys[i] = 5
	}
	got := Offsets(ys, 0.25, 1, 1)

	// Nine grid columns fit in [-1, 1]; everything else is clamped
	// to alternating sides.
	count := make(map[float64]int)
	for _, x := range got {
		count[x]++
	}
	assert.Len(t, count, 9)
	for k := -3; k <= 3; k++ {
		assert.Equal(t, 1, count[float64(k)*0.25], "column %d", k)
	}
	assert.Equal(t, 1+1496, count[1])
	assert.Equal(t, 1+1495, count[-1])
}

func TestSpread(t *testing.T) {
	points := []distplot.Point{
		{Bin: "A", Index: 0, Value: 5},
		{Bin: "B", Index: 1, Value: 5},
		{Bin: "A", Index: 0, Value: 5},
		{Bin: "B", Index: 1, Value: 50},
	}
	got := Spread(points, 0.1, 1, 0.4)
	assert.Equal(t, 0.0, got[0])
	assert.Equal(t, 1.0, got[1])
	assert.InDelta(t, 0.1, got[2], 1e-12)
	assert.Equal(t, 1.0, got[3])
	assert.Empty(t, Spread(nil, 0.1, 1, 0.4))
}
