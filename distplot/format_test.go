// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisFormatter(t *testing.T) {
	for _, test := range []struct {
		max, x float64
		want   string
	}{
		{0.05, 0.0234, "0.023"},
		{0.05, 0, "0.000"},
		{0.5, 0.234, "0.23"},
		{0.1, 0.234, "0.23"},
		{5, 2.34, "2.3"},
		{1, 2.34, "2.3"},
		{500, 2345, "2,345"},
		{10, 2.6, "3"},
		{1e6, 1234567, "1,234,567"},
		{5, 1234.56, "1,234.6"},
		{500, -2345, "-2,345"},
	} {
		got := AxisFormatter(test.max)(test.x)
		assert.Equal(t, test.want, got, "AxisFormatter(%g)(%g)", test.max, test.x)
	}
}
