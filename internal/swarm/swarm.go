// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swarm spreads the points of a categorical scatter plot
// sideways so that they don't overlap.
package swarm

import (
	"math"
	"sort"

	"github.com/aclements/go-distplot/distplot"
)

// Offsets returns a horizontal offset for each point in ys. A marker
// is an ellipse dx wide and dy tall centered at (offset, y). Points
// are placed from smallest to largest y, each at the offset closest
// to 0 where it doesn't overlap a placed marker. Offsets never exceed
// ±limit; points that don't fit are clamped and may overlap.
//
// The result depends only on the arguments.
func Offsets(ys []float64, dx, dy, limit float64) []float64 {
	out := make([]float64, len(ys))
	if len(ys) == 0 || dx <= 0 || dy <= 0 {
		return out
	}

	order := make([]int, len(ys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return ys[order[a]] < ys[order[b]] })

	// done holds the points placed on the grid, in y order. Within
	// any dy band there is at most one per grid column, so the
	// overlap scan is bounded by the number of columns. Clamped
	// points are not added.
	type placed struct{ x, y float64 }
	var done []placed
	overlaps := func(x, y float64) bool {
		for i := len(done) - 1; i >= 0; i-- {
			p := done[i]
			if y-p.y >= dy {
				break
			}
			ex, ey := (x-p.x)/dx, (y-p.y)/dy
			if ex*ex+ey*ey < 1 {
				return true
			}
		}
		return false
	}

	maxStep := int(math.Floor(limit / dx))
	clamped := 0
	for _, i := range order {
		y := ys[i]
		x, ok := 0.0, false
		for step := 0; step <= maxStep && !ok; step++ {
			for _, cand := range [2]float64{float64(step) * dx, -float64(step) * dx} {
				if !overlaps(cand, y) {
					x, ok = cand, true
					break
				}
			}
		}
		if !ok {
			// No room. Alternate sides so overflow stays
			// balanced.
			x = limit
			if clamped%2 == 1 {
				x = -limit
			}
			clamped++
			out[i] = x
			continue
		}
		out[i] = x
		done = append(done, placed{x, y})
	}
	return out
}

// Spread returns the horizontal position of each point: its category
// index plus its Offsets among the points of the same category.
func Spread(points []distplot.Point, dx, dy, limit float64) []float64 {
	byIndex := make(map[int][]int)
	for i, p := range points {
		byIndex[p.Index] = append(byIndex[p.Index], i)
	}
	xs := make([]float64, len(points))
	for index, idxs := range byIndex {
		ys := make([]float64, len(idxs))
		for j, i := range idxs {
			ys[j] = points[i].Value
		}
		for j, off := range Offsets(ys, dx, dy, limit) {
			xs[idxs[j]] = float64(index) + off
		}
	}
	return xs
}
