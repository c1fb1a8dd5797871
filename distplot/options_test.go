// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	opts, err := LoadOptions(strings.NewReader(`
title: Latency
bin_order: [fast, slow]
axis_xlim: [0, 250]
median_line: true
ref_width: fixed
font_size: 12
`))
	require.NoError(t, err)
	assert.Equal(t, "Latency", opts.Title)
	assert.Equal(t, []string{"fast", "slow"}, opts.BinOrder)
	assert.Equal(t, []float64{0, 250}, opts.ECDFXLim)
	assert.True(t, opts.MeanLine, "mean line should stay on")
	assert.True(t, opts.MedianLine)
	assert.Equal(t, RefWidthFixed, opts.RefWidth)
	assert.Equal(t, 12.0, opts.FontSize)
}

func TestLoadOptionsEmpty(t *testing.T) {
	opts, err := LoadOptions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestLoadOptionsErrors(t *testing.T) {
	for _, in := range []string{
		"bogus: 1\n",
		"axis_xlim: [1, 2, 3]\n",
		"swarm_ylim: [5, 1]\n",
		"max_result: -1\n",
		"bin_order: [a, a]\n",
		"ref_width: wide\n",
	} {
		_, err := LoadOptions(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrConfiguration, "LoadOptions(%q)", in)
	}
}
