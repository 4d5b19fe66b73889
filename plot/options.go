// SPDX-License-Identifier: MIT
// Package: lvplot/plot
//
// options.go — chart options and their defaults.

package plot

import (
	"fmt"

	"github.com/katalvlaran/lvplot/axis"
	"github.com/katalvlaran/lvplot/interpolation"
)

// AxisType selects the axis kind for one direction.
type AxisType int

const (
	// AxisDefault is AxisStep for X and AxisAuto for Y.
	AxisDefault AxisType = iota
	// AxisStep is axis.Step over the labels.
	AxisStep
	// AxisAuto is axis.AutoScale.
	AxisAuto
	// AxisFixed is axis.FixedScale.
	AxisFixed
)

var axisTypeNames = [...]string{"default", "step", "auto", "fixed"}

// String returns the configuration name of t.
func (t AxisType) String() string {
	if t < 0 || int(t) >= len(axisTypeNames) {
		return fmt.Sprintf("AxisType(%d)", int(t))
	}

	return axisTypeNames[t]
}

// AxisOptions configures one axis.
type AxisOptions struct {
	Type      AxisType
	Placement axis.Placement

	// Options are passed to the axis constructor.
	Options []axis.Option
}

// SeriesStyle configures how one series is drawn.
type SeriesStyle struct {
	// Interpolation renders the line; nil means interpolation.MonotoneCubic().
	Interpolation interpolation.Func

	ShowLine bool
	ShowArea bool

	// AreaBase is the value areas are closed against, clamped into the Y
	// axis range.
	AreaBase float64
}

// Options configures LineGeometry.
type Options struct {
	Width, Height float64
	Padding       axis.Padding

	AxisX, AxisY AxisOptions

	// FullWidth stretches a step X axis so the last label sits on the right edge.
	FullWidth bool

	// ReverseData reverses labels, series and values (Line only).
	ReverseData bool

	// Style applies to every series without an entry in SeriesStyles.
	Style        SeriesStyle
	SeriesStyles map[string]SeriesStyle
}

// Defaults of DefaultOptions.
var (
	DefaultPadding    = axis.Padding{Top: 15, Right: 15, Bottom: 5, Left: 10}
	DefaultAxisXPlace = axis.Placement{Offset: 30, Position: axis.End}
	DefaultAxisYPlace = axis.Placement{Offset: 40, Position: axis.Start}
)

// DefaultOptions returns the line chart defaults: a step X axis below the
// chart, an auto-scaled Y axis on the left, monotone cubic lines and no
// areas. Width and Height are left 0 and must be set by the caller.
func DefaultOptions() Options {
	return Options{
		Padding: DefaultPadding,
		AxisX:   AxisOptions{Type: AxisStep, Placement: DefaultAxisXPlace},
		AxisY:   AxisOptions{Type: AxisAuto, Placement: DefaultAxisYPlace},
		Style:   SeriesStyle{ShowLine: true},
	}
}

// styleFor returns the style of the series called name.
func (o Options) styleFor(name string) SeriesStyle {
	if s, ok := o.SeriesStyles[name]; ok && name != "" {
		return s
	}

	return o.Style
}
