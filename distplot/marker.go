// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"fmt"
	"math"
)

// Marker sizing constants. These were tuned by eye and are not
// derived from anything.
const (
	SwarmMarkerScale  = 80
	SwarmMarkerOffset = 15
	ECDFMarkerScale   = 350
	MarkerExponent    = 0.6
)

// SwarmMarkerSize returns the swarm panel marker diameter in points
// for a table of rows observations spread over bins distinct bins:
//
//	80 / (rows/bins + 15)^0.6
//
// Denser bins get smaller markers.
func SwarmMarkerSize(rows, bins int) (float64, error) {
	if bins <= 0 {
		return 0, fmt.Errorf("%w: swarm marker size needs at least one bin", ErrNoData)
	}
	avg := float64(rows) / float64(bins)
	return SwarmMarkerScale / math.Pow(avg+SwarmMarkerOffset, MarkerExponent), nil
}

// ECDFMarkerSize returns the ECDF panel marker area in square points:
//
//	350 / (points/series)^0.6
//
// where only non-empty series are counted.
func ECDFMarkerSize(series []ECDF) (float64, error) {
	points, nonEmpty := 0, 0
	for _, s := range series {
		if len(s) == 0 {
			continue
		}
		points += len(s)
		nonEmpty++
	}
	if nonEmpty == 0 {
		return 0, fmt.Errorf("%w: ECDF marker size needs at least one point", ErrNoData)
	}
	avg := float64(points) / float64(nonEmpty)
	return ECDFMarkerScale / math.Pow(avg, MarkerExponent), nil
}
