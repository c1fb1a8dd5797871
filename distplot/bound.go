// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"fmt"
	"math"
)

// MaxMagnitude is the largest power of ten considered by UpperBound.
const MaxMagnitude = 9

// UpperBound returns the smallest value of the form p/10 × 10^k, for
// p in 1..10 and k in 0..MaxMagnitude, that is ≥ x. This rounds x up
// to a "nice" axis limit: 0.37 becomes 0.4, 4.2 becomes 5 and 23
// becomes 30.
//
// UpperBound(0) is 0.1, the smallest candidate. Callers that care
// about all-zero data must detect it themselves.
//
// If x is NaN or larger than 10^MaxMagnitude, UpperBound returns
// ErrBoundOutOfRange.
func UpperBound(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, fmt.Errorf("%w: NaN", ErrBoundOutOfRange)
	}
	for k := 0; k <= MaxMagnitude; k++ {
		mag := math.Pow10(k)
		for p := 1; p <= 10; p++ {
			// Scale before dividing so the candidates are
			// exact (3*100/10 is 30, 0.3*100 is not).
			cand := float64(p) * mag / 10
			if x <= cand {
				return cand, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %g", ErrBoundOutOfRange, x)
}

// DefaultTickCount is the number of ticks placed on an axis when the
// caller doesn't supply them.
const DefaultTickCount = 5

// DefaultTicks returns DefaultTickCount evenly spaced ticks starting
// at 0 and stepping by upper/DefaultTickCount. The upper bound itself
// is not a tick.
func DefaultTicks(upper float64) []float64 {
	ticks := make([]float64, DefaultTickCount)
	for i := range ticks {
		ticks[i] = upper / DefaultTickCount * float64(i)
	}
	return ticks
}
