// SPDX-License-Identifier: MIT
// Package: lvplot/axis
//
// axis.go — the Axis and Scale interfaces and shared projection helpers.

package axis

import (
	"github.com/katalvlaran/lvplot/bounds"
	"github.com/katalvlaran/lvplot/series"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lvplot'.
func tracer() tracing.Trace {
	return tracing.Select("lvplot")
}

// Axis maps data values to pixel offsets along one side of a ChartRect.
//
// Offsets are measured from the axis start (Units.Start): to the right for
// X and upwards for Y. Callers turn them into canvas coordinates as
// rect.X1 + offset and rect.Y1 - offset. Implementations are immutable once
// built and safe for concurrent reads.
type Axis interface {
	// Units returns the orientation.
	Units() Units
	// Rect returns the chart rectangle the axis spans.
	Rect() ChartRect
	// Length returns the axis length in pixels.
	Length() float64
	// GridOffset returns the edge grid lines start from.
	GridOffset() float64
	// ProjectValue returns the offset of v (or of slot index) from the
	// axis start, in pixels.
	ProjectValue(v series.Value, index int) float64
	// TickPositions returns the offset of every tick from the axis start.
	TickPositions() []float64
}

// Scale is a continuous Axis with a numeric range and tick values.
type Scale interface {
	Axis
	Range() (min, max float64)
	Ticks() []float64
}

// base holds what every axis kind shares.
type base struct {
	units  Units
	rect   ChartRect
	length float64
}

func newBase(u Units, rect ChartRect) base {
	return base{units: u, rect: rect, length: u.Length(rect)}
}

func (b base) Units() Units        { return b.units }
func (b base) Rect() ChartRect     { return b.rect }
func (b base) Length() float64     { return b.length }
func (b base) GridOffset() float64 { return b.units.GridOffset(b.rect) }

// rangeOf resolves the value range for a continuous axis.
func rangeOf(u Units, values [][]series.Value, o options) bounds.HighLow {
	if o.fixed != nil {
		return *o.fixed
	}

	return bounds.GetHighLow(values, u.Dim(), o.highLow...)
}

// project is the linear continuous-axis projection:
// length × (v - min) / (max - min). Values outside [min, max] land outside
// the axis.
func project(length, v, min, max float64) float64 {
	return length * (v - min) / (max - min)
}

// positions projects every tick of s.
func positions(s Scale) []float64 {
	ticks := s.Ticks()
	out := make([]float64, len(ticks))
	for i, t := range ticks {
		out[i] = s.ProjectValue(series.Num(t), i)
	}

	return out
}

var (
	_ Scale = (*AutoScale)(nil)
	_ Scale = (*FixedScale)(nil)
	_ Axis  = (*Step)(nil)
)
