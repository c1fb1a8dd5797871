// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Options controls how Build lays out a Chart. Start from
// DefaultOptions; the zero Options draws no reference lines and uses
// a zero font size.
type Options struct {
	// Title is the chart title.
	Title string `yaml:"title"`

	// BinOrder is the left-to-right order of the swarm categories
	// and the order of the ECDF series. Labels in BinOrder with no
	// data still get a swarm category. If BinOrder is empty, the
	// sorted distinct bin labels are used.
	BinOrder []string `yaml:"bin_order"`

	// MaxResult, if not 0, is the upper bound of both value axes.
	MaxResult float64 `yaml:"max_result"`

	// SwarmYLim, if set, is the [min, max] of the swarm value
	// axis. It overrides MaxResult.
	SwarmYLim []float64 `yaml:"swarm_ylim"`

	// SwarmYTicks, if set, are the swarm value axis ticks.
	SwarmYTicks []float64 `yaml:"swarm_yticks"`

	// ECDFXLim, if set, is the [min, max] of the ECDF value axis.
	// It overrides MaxResult.
	ECDFXLim []float64 `yaml:"axis_xlim"`

	// ECDFXTicks, if set, are the ECDF value axis ticks.
	ECDFXTicks []float64 `yaml:"axis_xticks"`

	// MeanLine and MedianLine draw a reference line at each bin's
	// mean and median in the swarm panel.
	MeanLine   bool `yaml:"mean_line"`
	MedianLine bool `yaml:"median_line"`

	// Gridlines draws horizontal gridlines in the swarm panel.
	// The ECDF panel always has gridlines.
	Gridlines bool `yaml:"gridlines"`

	// RefWidth selects the reference line width.
	RefWidth RefWidth `yaml:"ref_width"`

	// FontSize is the title font size in points. Other text is
	// scaled from it.
	FontSize float64 `yaml:"font_size"`

	// Logger receives warnings about dropped bins and degenerate
	// axes. If nil, the logrus standard logger is used.
	Logger logrus.FieldLogger `yaml:"-"`
}

// DefaultFontSize is the default title font size in points.
const DefaultFontSize = 17

// DefaultOptions returns a new Options with the mean line on, median
// line and gridlines off, adaptive reference line width and the
// default font size.
func DefaultOptions() Options {
	return Options{
		Title:    "Distribution Plot",
		MeanLine: true,
		FontSize: DefaultFontSize,
	}
}

// LoadOptions reads YAML options from r on top of DefaultOptions.
// Unknown keys are an error.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if err := opts.validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// UnmarshalYAML accepts "adaptive" or "fixed".
func (w *RefWidth) UnmarshalYAML(n *yaml.Node) error {
	switch n.Value {
	case "adaptive", "":
		*w = RefWidthAdaptive
	case "fixed":
		*w = RefWidthFixed
	default:
		return fmt.Errorf("line %d: unknown ref_width %q", n.Line, n.Value)
	}
	return nil
}

func (o *Options) validate() error {
	for name, lim := range map[string][]float64{"swarm_ylim": o.SwarmYLim, "axis_xlim": o.ECDFXLim} {
		if lim != nil && len(lim) != 2 {
			return fmt.Errorf("%w: %s must be [min, max], got %v", ErrConfiguration, name, lim)
		}
		if len(lim) == 2 && !(lim[0] < lim[1]) {
			return fmt.Errorf("%w: %s min must be below max, got %v", ErrConfiguration, name, lim)
		}
	}
	if o.MaxResult < 0 {
		return fmt.Errorf("%w: max_result must not be negative, got %g", ErrConfiguration, o.MaxResult)
	}
	seen := make(map[string]bool, len(o.BinOrder))
	for _, b := range o.BinOrder {
		if seen[b] {
			return fmt.Errorf("%w: bin %q repeated in bin_order", ErrConfiguration, b)
		}
		seen[b] = true
	}
	return nil
}

func (o *Options) logger() logrus.FieldLogger {
	if o.Logger == nil {
		return logrus.StandardLogger()
	}
	return o.Logger
}
