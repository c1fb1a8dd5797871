// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotrender draws distplot Charts with gonum/plot.
//
// The swarm panel takes the left 5/8 of the image and the ECDF panel
// the right 3/8.
package plotrender

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/aclements/go-distplot/distplot"
	"github.com/aclements/go-distplot/internal/swarm"
)

// Format is an output image format.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// Default image size.
const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// Renderer writes Charts to W as a single image.
type Renderer struct {
	W io.Writer

	// Format is the image format. The default is PNG.
	Format Format

	// Width and Height are the image size. If zero, they default
	// to DefaultWidth and DefaultHeight.
	Width, Height vg.Length
}

var _ distplot.Renderer = (*Renderer)(nil)

var (
	meanColor   = color.RGBA{0x44, 0x44, 0x55, 0xff}
	medianColor = color.RGBA{0x66, 0x66, 0x77, 0xff}
	gridColor   = color.Gray{0xdd}
)

// Render draws c and writes the encoded image to r.W.
func (r *Renderer) Render(c *distplot.Chart) error {
	w, h := r.Width, r.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	swarmW := w * 5 / 8

	sp, err := SwarmPlot(c, swarmW, h)
	if err != nil {
		return err
	}
	ep, err := ECDFPlot(c)
	if err != nil {
		return err
	}

	var canvas vg.CanvasWriterTo
	switch r.Format {
	case "", PNG:
		canvas = vgimg.PngCanvas{Canvas: vgimg.New(w, h)}
	case SVG:
		canvas = vgsvg.New(w, h)
	default:
		return fmt.Errorf("unknown image format %q", r.Format)
	}

	dc := draw.New(canvas)
	left := draw.Crop(dc, 0, swarmW-w, 0, 0)
	right := draw.Crop(dc, swarmW, 0, 0, 0)
	sp.Draw(left)
	ep.Draw(right)
	if err := drawNotes(left, c); err != nil {
		return err
	}

	_, err = canvas.WriteTo(r.W)
	return err
}

// SwarmPlot returns the swarm panel of c. Points are spread sideways
// assuming the panel is drawn w by h.
func SwarmPlot(c *distplot.Chart, w, h vg.Length) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = c.Title
	p.Title.Font.Size = vg.Points(c.Fonts.Title)
	setAxis(&p.X, &c.SwarmX, c.Fonts)
	setAxis(&p.Y, &c.SwarmY, c.Fonts)

	if c.SwarmY.Grid {
		g := plotter.NewGrid()
		g.Vertical.Width = 0
		g.Horizontal.Color = gridColor
		p.Add(g)
	}

	// Marker size in data units. The plot area is roughly 85%
	// of the panel.
	size := vg.Points(c.SwarmMarkerSize)
	dx := float64(size) / (0.85 * float64(w)) * (c.SwarmX.Max - c.SwarmX.Min)
	dy := float64(size) / (0.85 * float64(h)) * (c.SwarmY.Max - c.SwarmY.Min)

	// One scatter per category so each gets its own color.
	xs := swarm.Spread(c.Points, dx, dy, 0.4)
	byBin := make([]plotter.XYs, len(c.Bins))
	for i, pt := range c.Points {
		byBin[pt.Index] = append(byBin[pt.Index], plotter.XY{X: xs[i], Y: pt.Value})
	}
	for bi, xys := range byBin {
		if len(xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = size / 2
		s.GlyphStyle.Color = plotutil.Color(bi)
		p.Add(s)
	}

	for _, rl := range c.RefLines {
		l, err := plotter.NewLine(plotter.XYs{
			{X: float64(rl.Index) - rl.HalfWidth, Y: rl.Y},
			{X: float64(rl.Index) + rl.HalfWidth, Y: rl.Y},
		})
		if err != nil {
			return nil, err
		}
		switch rl.Kind {
		case distplot.MeanRef:
			l.LineStyle.Width = vg.Points(5)
			l.LineStyle.Color = meanColor
		case distplot.MedianRef:
			l.LineStyle.Width = vg.Points(4)
			l.LineStyle.Color = medianColor
			l.LineStyle.Dashes = []vg.Length{vg.Points(8), vg.Points(4)}
		}
		p.Add(l)
	}
	return p, nil
}

// ECDFPlot returns the ECDF panel of c, with one legend entry per
// series.
func ECDFPlot(c *distplot.Chart) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	setAxis(&p.X, &c.ECDFX, c.Fonts)
	setAxis(&p.Y, &c.ECDFY, c.Fonts)

	g := plotter.NewGrid()
	g.Vertical.Color = gridColor
	g.Horizontal.Color = gridColor
	p.Add(g)

	colors := make(map[string]int, len(c.Bins))
	for i := range c.Bins {
		colors[c.Bins[i].Label] = i
	}

	// ECDFMarkerSize is an area.
	radius := vg.Points(math.Sqrt(c.ECDFMarkerSize)) / 2
	p.Legend.Top, p.Legend.Left = true, true
	p.Legend.Font.Size = vg.Points(c.Fonts.Legend)
	for i, series := range c.Series {
		xys := make(plotter.XYs, len(series.ECDF))
		for j, pt := range series.ECDF {
			xys[j].X, xys[j].Y = pt.X, pt.P
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = radius
		s.GlyphStyle.Color = plotutil.Color(colors[series.Bin])
		p.Add(s)
		p.Legend.Add(c.Legend[i], s)
	}
	return p, nil
}

func setAxis(pa *plot.Axis, a *distplot.Axis, fonts distplot.FontSizes) {
	pa.Min, pa.Max = a.Min, a.Max
	pa.Label.Text = a.Label
	pa.Label.Font.Size = vg.Points(fonts.Axis)
	pa.Tick.Label.Font.Size = vg.Points(fonts.Tick)

	labels := a.TickLabels()
	ticks := make([]plot.Tick, len(a.Ticks))
	for i, x := range a.Ticks {
		ticks[i] = plot.Tick{Value: x, Label: labels[i]}
	}
	pa.Tick.Marker = plot.ConstantTicks(ticks)
}

// drawNotes writes c.Notes in the top left corner of dc.
func drawNotes(dc draw.Canvas, c *distplot.Chart) error {
	if len(c.Notes) == 0 {
		return nil
	}
	font, err := vg.MakeFont(plot.DefaultFont, vg.Points(c.Fonts.Note))
	if err != nil {
		return err
	}
	sty := draw.TextStyle{Color: meanColor, Font: font}
	x := dc.Min.X + (dc.Max.X-dc.Min.X)*0.12
	y := dc.Max.Y - vg.Points(c.Fonts.Title)*2.5
	for _, note := range c.Notes {
		y -= font.Extents().Height * 1.4
		dc.FillText(sty, vg.Point{X: x, Y: y}, note)
	}
	return nil
}
