// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/sirupsen/logrus"
)

// A Renderer draws a Chart. Renderers are responsible for jitter,
// colors, legend construction and everything else that turns the
// Chart's primitives into an image.
type Renderer interface {
	Render(c *Chart) error
}

// Chart is everything needed to draw a distribution chart.
type Chart struct {
	Title string
	Fonts FontSizes

	// Bins are the swarm panel categories, in display order.
	// There is a Bin for every label in the bin order, including
	// labels with no data.
	Bins []Bin

	// Points are the swarm panel samples in table order. Missing
	// values are omitted.
	Points []Point

	// RefLines are the mean and median segments drawn across the
	// swarm categories.
	RefLines []RefLine

	// Notes explain the reference lines.
	Notes []string

	// Series are the ECDF panel series, one per non-empty bin,
	// in bin order.
	Series []Series

	// Legend labels Series. Legend[i] is Series[i].Bin.
	Legend []string

	// SwarmX is the categorical axis of the swarm panel. Its ticks
	// are the category indexes.
	SwarmX Axis
	SwarmY Axis
	ECDFX  Axis
	ECDFY  Axis

	// SwarmMarkerSize is the diameter of swarm markers in points.
	SwarmMarkerSize float64

	// ECDFMarkerSize is the area of ECDF markers in square points.
	ECDFMarkerSize float64
}

// FontSizes are text sizes in points.
type FontSizes struct {
	Title, Axis, Tick, Legend, Note float64
}

func newFontSizes(largest float64) FontSizes {
	return FontSizes{
		Title:  largest,
		Axis:   largest * 0.85,
		Tick:   largest * 0.7,
		Legend: largest * 0.6,
		Note:   largest * 0.7,
	}
}

// Bin is one swarm category.
type Bin struct {
	Label string

	// Values are the non-missing samples of this bin in table
	// order.
	Values []float64

	// Summary is valid only if len(Values) > 0.
	Summary Summary
}

// Empty reports whether b has no samples.
func (b *Bin) Empty() bool {
	return len(b.Values) == 0
}

// Point is one swarm sample. Index is the position of Bin in
// Chart.Bins.
type Point struct {
	Bin   string
	Index int
	Value float64
}

// RefKind identifies what a reference line marks.
type RefKind int

const (
	MeanRef RefKind = iota
	MedianRef
)

func (k RefKind) String() string {
	switch k {
	case MeanRef:
		return "mean"
	case MedianRef:
		return "median"
	}
	return fmt.Sprintf("RefKind(%d)", int(k))
}

// RefLine is a horizontal segment from Index-HalfWidth to
// Index+HalfWidth at height Y in the swarm panel.
type RefLine struct {
	Kind      RefKind
	Bin       string
	Index     int
	Y         float64
	HalfWidth float64
}

// Series is one ECDF panel series.
type Series struct {
	Bin  string
	ECDF ECDF
}

// Axis is a resolved axis.
type Axis struct {
	Label    string
	Min, Max float64
	Ticks    []float64
	Format   Formatter

	// Grid requests gridlines at the ticks.
	Grid bool

	// Degenerate is set if the data gave nothing to size the axis
	// from, so Max is a placeholder.
	Degenerate bool
}

// TickLabels returns the formatted ticks of a.
func (a *Axis) TickLabels() []string {
	labels := make([]string, len(a.Ticks))
	for i, x := range a.Ticks {
		labels[i] = a.Format(x)
	}
	return labels
}

// Notes drawn in the swarm panel.
const (
	MeanNote   = "Solid Lines Indicate Bin Mean"
	MedianNote = "Dashed Lines Indicate Bin Median"
)

// Build computes the Chart for the observations in t, binned by
// column binCol, with sample values in column valueCol.
//
// Build fails with an error matching ErrConfiguration if either
// column is missing or opts is invalid, and with ErrDegenerateAxis
// if valueCol holds no values at all. Bins without values are kept
// as swarm categories but get no ECDF series; each one is logged.
func Build(t *table.Table, binCol, valueCol string, opts Options) (*Chart, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	log := opts.logger()

	labels, err := binColumn(t, binCol)
	if err != nil {
		return nil, err
	}
	values, err := valueColumn(t, valueCol)
	if err != nil {
		return nil, err
	}

	// Resolve the bin order.
	distinct := make(map[string]bool)
	for _, l := range labels {
		distinct[l] = true
	}
	var order []string
	if len(opts.BinOrder) == 0 {
		for l := range distinct {
			order = append(order, l)
		}
		sort.Strings(order)
	} else {
		order = append([]string(nil), opts.BinOrder...)
	}
	index := make(map[string]int, len(order))
	for i, l := range order {
		index[l] = i
	}
	for l := range distinct {
		if _, ok := index[l]; !ok {
			return nil, fmt.Errorf("%w: bin %q is not in the bin order", ErrConfiguration, l)
		}
	}

	c := &Chart{
		Title: opts.Title,
		Fonts: newFontSizes(opts.FontSize),
		Bins:  make([]Bin, len(order)),
	}
	for i, l := range order {
		c.Bins[i].Label = l
	}

	// Partition the samples.
	var all []float64
	for i, l := range labels {
		v := values[i]
		if math.IsNaN(v) {
			continue
		}
		bi := index[l]
		c.Bins[bi].Values = append(c.Bins[bi].Values, v)
		c.Points = append(c.Points, Point{l, bi, v})
		all = append(all, v)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: column %q has no values", ErrDegenerateAxis, valueCol)
	}

	// Per-bin statistics and ECDFs.
	half := opts.RefWidth.HalfWidth(len(distinct))
	var ecdfs []ECDF
	for i := range c.Bins {
		b := &c.Bins[i]
		if b.Empty() {
			log.WithField("bin", b.Label).Warn("bin has no values; leaving it out of the ECDF panel")
			continue
		}
		b.Summary, err = Summarize(b.Values)
		if err != nil {
			return nil, err
		}
		e := NewECDF(b.Values)
		ecdfs = append(ecdfs, e)
		c.Series = append(c.Series, Series{b.Label, e})
		c.Legend = append(c.Legend, b.Label)

		if opts.MeanLine {
			c.RefLines = append(c.RefLines, RefLine{MeanRef, b.Label, i, b.Summary.Mean, half})
		}
		if opts.MedianLine {
			c.RefLines = append(c.RefLines, RefLine{MedianRef, b.Label, i, b.Summary.Median, half})
		}
	}
	if opts.MeanLine {
		c.Notes = append(c.Notes, MeanNote)
	}
	if opts.MedianLine {
		c.Notes = append(c.Notes, MedianNote)
	}

	// Axes.
	c.SwarmX = categoryAxis(binCol, order)
	_, swarmMax := stats.Bounds(all)
	c.SwarmY, err = valueAxis(log, "swarm", valueCol, swarmMax, opts.SwarmYLim, opts.SwarmYTicks, opts.MaxResult)
	if err != nil {
		return nil, err
	}
	c.SwarmY.Grid = opts.Gridlines

	ecdfMax := math.Inf(-1)
	for _, e := range ecdfs {
		ecdfMax = math.Max(ecdfMax, e.Max())
	}
	c.ECDFX, err = valueAxis(log, "ecdf", valueCol, ecdfMax, opts.ECDFXLim, opts.ECDFXTicks, opts.MaxResult)
	if err != nil {
		return nil, err
	}
	c.ECDFX.Grid = true
	c.ECDFY = percentileAxis()

	// Marker sizes.
	c.SwarmMarkerSize, err = SwarmMarkerSize(t.Len(), len(distinct))
	if err != nil {
		return nil, err
	}
	c.ECDFMarkerSize, err = ECDFMarkerSize(ecdfs)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Plot builds the Chart for t and hands it to r.
func Plot(t *table.Table, binCol, valueCol string, opts Options, r Renderer) error {
	c, err := Build(t, binCol, valueCol, opts)
	if err != nil {
		return err
	}
	return r.Render(c)
}

func categoryAxis(label string, order []string) Axis {
	ticks := make([]float64, len(order))
	for i := range ticks {
		ticks[i] = float64(i)
	}
	return Axis{
		Label: label,
		Min:   -0.5,
		Max:   float64(len(order)) - 0.5,
		Ticks: ticks,
		Format: func(x float64) string {
			i := int(math.Round(x))
			if float64(i) != x || i < 0 || i >= len(order) {
				return ""
			}
			return order[i]
		},
	}
}

// valueAxis resolves a value axis. An explicit [min, max] limit wins
// over maxResult, which wins over rounding up the data maximum.
func valueAxis(log logrus.FieldLogger, name, label string, dataMax float64, lim, ticks []float64, maxResult float64) (Axis, error) {
	a := Axis{Label: label}
	switch {
	case len(lim) == 2:
		a.Min, a.Max = lim[0], lim[1]
	case maxResult != 0:
		a.Max = maxResult
	default:
		ub, err := UpperBound(dataMax)
		if err != nil {
			return Axis{}, fmt.Errorf("%s axis: %w", name, err)
		}
		a.Max = ub
		if !(dataMax > 0) {
			a.Degenerate = true
			log.WithFields(logrus.Fields{"axis": name, "max": dataMax}).
				Warnf("no positive values; using placeholder upper bound %g", ub)
		}
	}
	if len(ticks) > 0 {
		a.Ticks = append([]float64(nil), ticks...)
	} else {
		a.Ticks = DefaultTicks(a.Max)
	}
	a.Format = AxisFormatter(a.Max)
	return a, nil
}

// percentileAxis is the ECDF probability axis. Its labels are
// exceedance percentiles: 90% of samples exceed the P90 tick at 0.1.
func percentileAxis() Axis {
	ticks := make([]float64, 9)
	for i := range ticks {
		ticks[i] = float64(i+1) / 10
	}
	return Axis{
		Min:   0,
		Max:   1,
		Ticks: ticks,
		Grid:  true,
		Format: func(p float64) string {
			switch math.Round(p * 10) {
			case 1:
				return "P90"
			case 5:
				return "P50"
			case 9:
				return "P10"
			}
			return ""
		},
	}
}
