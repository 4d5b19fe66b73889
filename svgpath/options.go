// SPDX-License-Identifier: MIT
// Package: lvplot/svgpath
//
// options.go — functional options for Path construction.
//
// Contract:
//   • Option constructors validate and panic on meaningless values.
//   • Path methods never panic on user input; Parse returns errors.

package svgpath

// DefaultAccuracy is the number of decimal digits Stringify rounds to.
const DefaultAccuracy = 3

// NoRounding disables rounding in Stringify; values are printed in full.
const NoRounding = -1

const panicAccuracyInvalid = "svgpath: WithAccuracy: digits must be >= 0 (use WithoutRounding)"

// options is the resolved Path configuration; copied by Clone/Split/Join.
type options struct {
	accuracy int
}

func defaultOptions() options {
	return options{accuracy: DefaultAccuracy}
}

// Option customises a Path.
type Option func(*options)

// WithAccuracy sets the number of decimal digits used by Stringify.
// Zero rounds to whole numbers; WithoutRounding turns rounding off.
// Panics on negative digits.
func WithAccuracy(digits int) Option {
	if digits < 0 {
		panic(panicAccuracyInvalid)
	}

	return func(o *options) {
		o.accuracy = digits
	}
}

// WithoutRounding makes Stringify print parameters unrounded.
func WithoutRounding() Option {
	return func(o *options) {
		o.accuracy = NoRounding
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
