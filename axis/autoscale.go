// SPDX-License-Identifier: MIT
// Package: lvplot/axis
//
// autoscale.go — the bounds-driven continuous axis.

package axis

import (
	"fmt"

	"github.com/katalvlaran/lvplot/bounds"
	"github.com/katalvlaran/lvplot/series"
)

// AutoScale is a continuous axis whose ticks come from bounds.GetBounds.
type AutoScale struct {
	base
	bounds bounds.Bounds
}

// NewAutoScale detects the range of values along u (see bounds.GetHighLow)
// and computes a scale whose ticks are at least the configured
// scaleMinSpace apart.
//
// Options: WithScaleMinSpace, WithOnlyInteger, WithHigh, WithLow,
// WithReferenceValue, WithHighLow.
//
// Errors: bounds.ErrInvalidRange, bounds.ErrStepOptimization (wrapped).
func NewAutoScale(u Units, values [][]series.Value, rect ChartRect, opts ...Option) (*AutoScale, error) {
	o := gatherOptions(opts)
	a := &AutoScale{base: newBase(u, rect)}

	hl := rangeOf(u, values, o)
	b, err := bounds.GetBounds(a.length, hl, o.scaleMinSpace, o.onlyInteger)
	if err != nil {
		return nil, fmt.Errorf("NewAutoScale(%s): %w", u, err)
	}
	a.bounds = b
	tracer().Debugf("axis: auto %s over [%g, %g], %d ticks", u, b.Min, b.Max, len(b.Values))

	return a, nil
}

// Bounds returns the computed scale.
func (a *AutoScale) Bounds() bounds.Bounds { return a.bounds }

// Range returns the scale's min and max.
func (a *AutoScale) Range() (min, max float64) { return a.bounds.Min, a.bounds.Max }

// Ticks returns a copy of the tick values.
func (a *AutoScale) Ticks() []float64 { return append([]float64(nil), a.bounds.Values...) }

// ProjectValue projects the u component of v; index is ignored.
func (a *AutoScale) ProjectValue(v series.Value, _ int) float64 {
	return project(a.length, v.Multi(a.units.Dim()), a.bounds.Min, a.bounds.Min+a.bounds.Range)
}

// TickPositions returns the offset of every tick.
func (a *AutoScale) TickPositions() []float64 { return positions(a) }
