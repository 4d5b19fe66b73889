// SPDX-License-Identifier: MIT
// Package: lvplot/axis
//
// rect.go — orientation units, padding and the chart rectangle.

package axis

import (
	"math"

	"github.com/katalvlaran/lvplot/series"
)

// Units is the orientation of an axis.
type Units int

const (
	// X is the horizontal axis.
	X Units = iota
	// Y is the vertical axis.
	Y
)

// String returns "x" or "y".
func (u Units) String() string { return u.Dim().String() }

// Dim returns the value dimension the axis reads.
func (u Units) Dim() series.Dim {
	if u == X {
		return series.DimX
	}

	return series.DimY
}

// Counter returns the perpendicular orientation.
func (u Units) Counter() Units {
	if u == X {
		return Y
	}

	return X
}

// Start returns the rectangle edge where projected offsets begin.
func (u Units) Start(r ChartRect) float64 {
	if u == X {
		return r.X1
	}

	return r.Y2
}

// End returns the rectangle edge where projected offsets end.
func (u Units) End(r ChartRect) float64 {
	if u == X {
		return r.X2
	}

	return r.Y1
}

// GridOffset returns the edge grid lines of this axis start from.
func (u Units) GridOffset(r ChartRect) float64 {
	if u == X {
		return r.Y2
	}

	return r.X1
}

// Length returns the axis length in pixels.
func (u Units) Length(r ChartRect) float64 { return u.End(r) - u.Start(r) }

// Padding is the space kept free on each side of the canvas.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding returns the same padding on every side.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// Position is the side an axis' labels are placed on.
type Position int

const (
	// Start places labels left of / above the chart area.
	Start Position = iota
	// End places labels right of / below the chart area.
	End
)

// String returns "start" or "end".
func (p Position) String() string {
	if p == End {
		return "end"
	}

	return "start"
}

// Placement reserves Offset pixels for an axis' labels on side Position.
type Placement struct {
	Offset   float64
	Position Position
}

// Layout is the input of CreateChartRect.
type Layout struct {
	Width, Height float64
	Padding       Padding

	// AxisX and AxisY are ignored when NoAxes is set.
	AxisX, AxisY Placement
	NoAxes       bool
}

// ChartRect is the drawable area in canvas pixels; Y grows downwards, so
// Y2 is the top edge and Y1 the bottom edge.
type ChartRect struct {
	X1, Y1, X2, Y2 float64
	Padding        Padding
}

// Width returns X2 − X1.
func (r ChartRect) Width() float64 { return r.X2 - r.X1 }

// Height returns Y1 − Y2.
func (r ChartRect) Height() float64 { return r.Y1 - r.Y2 }

// CreateChartRect subtracts padding and axis offsets from the canvas. The
// canvas is first grown to fit padding plus offsets; the resulting area is
// at least one pixel wide and high.
func CreateChartRect(l Layout) ChartRect {
	p := l.Padding
	var xOffset, yOffset float64
	if !l.NoAxes {
		xOffset, yOffset = l.AxisX.Offset, l.AxisY.Offset
	}
	width := math.Max(l.Width, yOffset+p.Left+p.Right)
	height := math.Max(l.Height, xOffset+p.Top+p.Bottom)

	r := ChartRect{Padding: p}
	switch {
	case l.NoAxes:
		r.Y2 = p.Top
		r.Y1 = math.Max(height-p.Bottom, r.Y2+1)
	case l.AxisX.Position == Start:
		r.Y2 = p.Top + xOffset
		r.Y1 = math.Max(height-p.Bottom, r.Y2+1)
	default:
		r.Y2 = p.Top
		r.Y1 = math.Max(height-p.Bottom-xOffset, r.Y2+1)
	}
	switch {
	case l.NoAxes:
		r.X1 = p.Left
		r.X2 = math.Max(width-p.Right, r.X1+1)
	case l.AxisY.Position == Start:
		r.X1 = p.Left + yOffset
		r.X2 = math.Max(width-p.Right, r.X1+1)
	default:
		r.X1 = p.Left
		r.X2 = math.Max(width-p.Right-yOffset, r.X1+1)
	}

	return r
}
