// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// A Formatter turns a tick value into a tick label.
type Formatter func(x float64) string

// AxisFormatter returns the Formatter for an axis whose upper bound
// is max. The precision depends only on max, so every label on one
// axis has the same number of decimals:
//
//	max < 0.1        3 decimals
//	0.1 ≤ max < 1    2 decimals
//	1 ≤ max < 10     1 decimal
//	max ≥ 10         0 decimals
//
// The integer part is always grouped by thousands.
func AxisFormatter(max float64) Formatter {
	prec := 0
	switch {
	case max < 0.1:
		prec = 3
	case max < 1:
		prec = 2
	case max < 10:
		prec = 1
	}
	return func(x float64) string {
		return groupDigits(x, prec)
	}
}

func groupDigits(x float64, prec int) string {
	s := strconv.FormatFloat(x, 'f', prec, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		// Too large for an int64; leave it ungrouped.
		return sign + s
	}
	return sign + humanize.Comma(n) + frac
}
