// SPDX-License-Identifier: MIT
// Package: lvplot/axis
//
// options.go — functional options for the axis constructors.
//
// Contract:
//   • Option constructors validate and panic on meaningless values.
//   • Each constructor reads only the options meaningful to its kind.

package axis

import (
	"math"

	"github.com/katalvlaran/lvplot/bounds"
)

const (
	// DefaultScaleMinSpace is the minimum pixel distance between AutoScale ticks.
	DefaultScaleMinSpace = 20.0

	// DefaultDivisor is the number of FixedScale intervals.
	DefaultDivisor = 1
)

const (
	panicScaleMinSpaceInvalid = "axis: WithScaleMinSpace: px must be a finite number >= 0"
	panicDivisorInvalid       = "axis: WithDivisor: divisor must be >= 1"
	panicTickInvalid          = "axis: WithTicks: ticks must be finite"
)

type options struct {
	scaleMinSpace float64
	onlyInteger   bool
	highLow       []bounds.HighLowOption
	fixed         *bounds.HighLow
	divisor       int
	ticks         []float64
	stretch       bool
}

func defaultOptions() options {
	return options{scaleMinSpace: DefaultScaleMinSpace, divisor: DefaultDivisor}
}

// Option customises an axis.
type Option func(*options)

// WithScaleMinSpace sets the minimum AutoScale tick distance in pixels.
// Panics on NaN, ±Inf or negative px.
func WithScaleMinSpace(px float64) Option {
	if math.IsNaN(px) || math.IsInf(px, 0) || px < 0 {
		panic(panicScaleMinSpaceInvalid)
	}

	return func(o *options) { o.scaleMinSpace = px }
}

// WithOnlyInteger restricts AutoScale ticks to whole numbers.
func WithOnlyInteger(only bool) Option {
	return func(o *options) { o.onlyInteger = only }
}

// WithHigh fixes the top of the detected range.
func WithHigh(v float64) Option {
	return func(o *options) { o.highLow = append(o.highLow, bounds.WithHigh(v)) }
}

// WithLow fixes the bottom of the detected range.
func WithLow(v float64) Option {
	return func(o *options) { o.highLow = append(o.highLow, bounds.WithLow(v)) }
}

// WithReferenceValue forces v into the detected range.
func WithReferenceValue(v float64) Option {
	return func(o *options) { o.highLow = append(o.highLow, bounds.WithReferenceValue(v)) }
}

// WithHighLow uses hl as the range and skips detection altogether.
func WithHighLow(hl bounds.HighLow) Option {
	return func(o *options) { o.fixed = &hl }
}

// WithDivisor sets the number of FixedScale intervals. Panics if n < 1.
func WithDivisor(n int) Option {
	if n < 1 {
		panic(panicDivisorInvalid)
	}

	return func(o *options) { o.divisor = n }
}

// WithTicks gives FixedScale explicit tick values; they are sorted.
// Panics on NaN or ±Inf.
func WithTicks(ticks ...float64) Option {
	for _, t := range ticks {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			panic(panicTickInvalid)
		}
	}
	cp := append([]float64(nil), ticks...)

	return func(o *options) { o.ticks = cp }
}

// WithStretch makes a Step axis place its last label on the far edge.
func WithStretch(stretch bool) Option {
	return func(o *options) { o.stretch = stretch }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
