// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distplot computes the drawing primitives for a two panel
// distribution chart: a categorical swarm panel showing every sample
// of each bin with mean and median reference lines, next to an
// empirical CDF panel with one series per bin.
//
// Build turns a table of (bin, value) observations into a Chart. A
// Chart is plain data: point sets, reference segments, ECDF series,
// axis limits, ticks and formatters, and marker sizes. A Renderer
// turns a Chart into pixels; see the ggrender and plotrender
// subpackages.
//
// Build is a pure function of its inputs. Every call constructs a
// fresh Chart and nothing is cached or shared between calls.
package distplot
