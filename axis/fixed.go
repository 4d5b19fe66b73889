// SPDX-License-Identifier: MIT
// Package: lvplot/axis
//
// fixed.go — continuous axis over the exact value range.

package axis

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvplot/series"
)

// FixedScale is a continuous axis spanning exactly the value range, with
// ticks at divisor equal intervals or at explicit positions.
type FixedScale struct {
	base
	min, max float64
	ticks    []float64
}

// NewFixedScale builds a continuous axis whose ends are exactly the value
// range, with no rounding to nice numbers.
//
// Steps:
//  1. The range is WithHighLow when given, otherwise bounds.GetHighLow over
//     the u component of values (honouring WithHigh, WithLow and
//     WithReferenceValue).
//  2. Ticks are the WithTicks values, sorted, when any were given.
//  3. Otherwise divisor+1 ticks are spaced evenly from low to high, both
//     ends included.
//
// Errors:
//   - ErrInvalidRange — the resolved range has high <= low.
//
// Complexity: O(n) for range detection plus O(t log t) for t ticks.
func NewFixedScale(u Units, values [][]series.Value, rect ChartRect, opts ...Option) (*FixedScale, error) {
	o := gatherOptions(opts)
	hl := rangeOf(u, values, o)
	if !(hl.High > hl.Low) {
		return nil, fmt.Errorf("NewFixedScale(%s): [%v, %v]: %w", u, hl.Low, hl.High, ErrInvalidRange)
	}

	f := &FixedScale{base: newBase(u, rect), min: hl.Low, max: hl.High}
	if len(o.ticks) > 0 {
		f.ticks = append([]float64(nil), o.ticks...)
		sort.Float64s(f.ticks)
	} else {
		f.ticks = make([]float64, o.divisor+1)
		for i := range f.ticks {
			f.ticks[i] = hl.Low + (hl.High-hl.Low)/float64(o.divisor)*float64(i)
		}
	}

	return f, nil
}

// Range returns low and high.
func (f *FixedScale) Range() (min, max float64) { return f.min, f.max }

// Ticks returns a copy of the tick values.
func (f *FixedScale) Ticks() []float64 { return append([]float64(nil), f.ticks...) }

// ProjectValue projects the u component of v; index is ignored.
func (f *FixedScale) ProjectValue(v series.Value, _ int) float64 {
	return project(f.length, v.Multi(f.units.Dim()), f.min, f.max)
}

// TickPositions returns the offset of every tick.
func (f *FixedScale) TickPositions() []float64 { return positions(f) }
