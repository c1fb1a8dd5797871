// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ggrender draws distplot Charts as SVG using go-gg.
//
// The output is a lighter-weight alternative to plotrender rather
// than an exact match. go-gg has no legends, free text or physical
// marker sizes, and it draws its own background grid. So:
//
//   - tick positions are chosen by go-gg; only their labels come from
//     the Chart's formatters;
//   - both facets get the same width;
//   - the Chart's notes become the swarm facet's label;
//   - there is no legend; ECDF series share the swarm colors by bin;
//   - SwarmY.Grid, SwarmMarkerSize and ECDFMarkerSize are ignored;
//   - reference lines are black.
package ggrender

import (
	"io"
	"math"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-distplot/distplot"
	"github.com/aclements/go-distplot/internal/swarm"
)

// Default image size in pixels.
const (
	DefaultWidth  = 1000
	DefaultHeight = 600
)

// Panel indexes in the "panel" column.
const (
	SwarmPanel = 0
	ECDFPanel  = 1
)

// Renderer writes Charts to W as SVG.
type Renderer struct {
	W io.Writer

	// Width and Height are the image size in pixels. If zero, they
	// default to DefaultWidth and DefaultHeight.
	Width, Height int
}

var _ distplot.Renderer = (*Renderer)(nil)

func (r *Renderer) size() (int, int) {
	w, h := r.Width, r.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	return w, h
}

// Render draws c and writes the SVG to r.W.
func (r *Renderer) Render(c *distplot.Chart) error {
	w, h := r.size()
	return NewPlot(c, w, h).WriteSVG(r.W, w, h)
}

// PanelLabels returns the facet labels of c's two panels.
func PanelLabels(c *distplot.Chart) [2]string {
	swarmLabel := "distribution"
	if len(c.Notes) > 0 {
		swarmLabel = strings.Join(c.Notes, "; ")
	}
	return [2]string{SwarmPanel: swarmLabel, ECDFPanel: "ECDF"}
}

// NewPlot returns a faceted gg.Plot of c laid out for a w by h pixel
// image.
func NewPlot(c *distplot.Chart, w, h int) *gg.Plot {
	labels := PanelLabels(c)
	p := gg.NewPlot(Table(c, w, h))
	p.Add(gg.Title(c.Title))
	p.Add(gg.AxisLabel("x", ""), gg.AxisLabel("y", c.SwarmY.Label))
	p.Add(gg.FacetX{
		Col:          "panel",
		SplitXScales: true,
		SplitYScales: true,
		Labeler:      func(v interface{}) string { return labels[v.(int)] },
	})

	// Fix the scales of each facet to the resolved axes.
	data := p.Data()
	for _, gid := range data.Tables() {
		switch data.Table(gid).MustColumn("panel").([]int)[0] {
		case SwarmPanel:
			p.SetScaleAt("x", axisScaler(&c.SwarmX), gid)
			p.SetScaleAt("y", axisScaler(&c.SwarmY), gid)
		case ECDFPanel:
			p.SetScaleAt("x", axisScaler(&c.ECDFX), gid)
			p.SetScaleAt("y", axisScaler(&c.ECDFY), gid)
		}
	}

	p.Save()
	p.SetData(table.FilterEq(p.Data(), "kind", "point"))
	p.Add(gg.LayerPoints{X: "x", Y: "y", Color: "series"})
	p.Restore()

	// Reference lines get no Color column. The color scale is
	// already trained on series labels.
	if len(c.RefLines) > 0 {
		p.Save()
		p.SetData(table.FilterEq(p.Data(), "kind", "ref"))
		p.GroupBy("segment")
		p.Add(gg.LayerPaths{X: "x", Y: "y"})
		p.Restore()
	}
	return p
}

func axisScaler(a *distplot.Axis) gg.ContinuousScaler {
	s := gg.NewLinearScaler().SetMin(a.Min).SetMax(a.Max)
	if a.Format != nil {
		s.SetFormatter((func(float64) string)(a.Format))
	}
	return s
}

// Table flattens c into a single table with columns
//
//	panel   SwarmPanel or ECDFPanel
//	kind    "point" or "ref"
//	x, y    position in data coordinates
//	series  bin label
//	segment reference line number, or -1 for points
//
// Swarm points come from c.Points, spread sideways assuming a w by h
// pixel image.
func Table(c *distplot.Chart, w, h int) *table.Table {
	var (
		panels   []int
		kinds    []string
		xs, ys   []float64
		series   []string
		segments []int
	)
	add := func(panel int, kind string, x, y float64, s string, seg int) {
		panels = append(panels, panel)
		kinds = append(kinds, kind)
		xs = append(xs, x)
		ys = append(ys, y)
		series = append(series, s)
		segments = append(segments, seg)
	}

	// gg draws points with a diameter of about 2% of the
	// smaller image dimension. Each facet gets about half the
	// width.
	marker := 0.02 * math.Min(float64(w), float64(h))
	dx := marker / (0.45 * float64(w)) * (c.SwarmX.Max - c.SwarmX.Min)
	dy := marker / (0.9 * float64(h)) * (c.SwarmY.Max - c.SwarmY.Min)
	for i, x := range swarm.Spread(c.Points, dx, dy, 0.4) {
		pt := c.Points[i]
		add(SwarmPanel, "point", x, pt.Value, pt.Bin, -1)
	}
	for i, rl := range c.RefLines {
		x := float64(rl.Index)
		add(SwarmPanel, "ref", x-rl.HalfWidth, rl.Y, rl.Bin, i)
		add(SwarmPanel, "ref", x+rl.HalfWidth, rl.Y, rl.Bin, i)
	}
	for _, s := range c.Series {
		for _, pt := range s.ECDF {
			add(ECDFPanel, "point", pt.X, pt.P, s.Bin, -1)
		}
	}

	return new(table.Builder).
		Add("panel", panels).
		Add("kind", kinds).
		Add("x", xs).
		Add("y", ys).
		Add("series", series).
		Add("segment", segments).
		Done()
}
