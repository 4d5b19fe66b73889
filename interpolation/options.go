// SPDX-License-Identifier: MIT
// Package: lvplot/interpolation
//
// options.go — functional options shared by every strategy.
//
// Contract:
//   • Option constructors validate and panic on meaningless values.
//   • Options a strategy does not use are ignored (e.g. WithTension on Step).

package interpolation

import (
	"math"

	"github.com/katalvlaran/lvplot/svgpath"
)

const (
	// DefaultDivisor is the Simple handle divisor: handles reach half way.
	DefaultDivisor = 2.0

	// DefaultTension is the Cardinal tension (1 = full smoothing).
	DefaultTension = 1.0

	// DefaultPostpone draws Step risers after the horizontal run.
	DefaultPostpone = true
)

const (
	panicDivisorInvalid = "interpolation: WithDivisor: divisor must be a finite number"
	panicTensionInvalid = "interpolation: WithTension: tension must be a finite number"
)

// options is the resolved strategy configuration.
type options struct {
	fillHoles bool
	divisor   float64
	tension   float64
	postpone  bool
	pathOpts  []svgpath.Option
}

func defaultOptions() options {
	return options{
		divisor:  DefaultDivisor,
		tension:  DefaultTension,
		postpone: DefaultPostpone,
	}
}

// Option customises a strategy.
type Option func(*options)

// WithFillHoles bridges holes: the points on both sides are connected.
func WithFillHoles(fill bool) Option {
	return func(o *options) {
		o.fillHoles = fill
	}
}

// WithDivisor sets the Simple handle length to Δx/max(1, divisor).
// Panics on NaN or ±Inf.
func WithDivisor(divisor float64) Option {
	if math.IsNaN(divisor) || math.IsInf(divisor, 0) {
		panic(panicDivisorInvalid)
	}

	return func(o *options) {
		o.divisor = divisor
	}
}

// WithTension sets the Cardinal tension; it is clamped to [0, 1].
// Panics on NaN or ±Inf.
func WithTension(tension float64) Option {
	if math.IsNaN(tension) || math.IsInf(tension, 0) {
		panic(panicTensionInvalid)
	}

	return func(o *options) {
		o.tension = tension
	}
}

// WithPostpone chooses whether Step draws the riser after (true) or before
// (false) the horizontal run.
func WithPostpone(postpone bool) Option {
	return func(o *options) {
		o.postpone = postpone
	}
}

// WithPathOptions passes options (e.g. svgpath.WithAccuracy) to every path
// the strategy creates.
func WithPathOptions(opts ...svgpath.Option) Option {
	return func(o *options) {
		o.pathOpts = append(o.pathOpts, opts...)
	}
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
