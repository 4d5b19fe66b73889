// SPDX-License-Identifier: MIT
// Package: lvplot/series
//
// options.go — functional options for Normalize.

package series

// multiMode controls how primitives are lifted into (x?, y?) pairs.
type multiMode int

const (
	multiOff multiMode = iota
	multiY
	multiX
)

// options is the resolved Normalize configuration.
type options struct {
	reverse bool
	multi   multiMode
}

// Option customises Normalize.
type Option func(*options)

// WithReverse reverses labels, series order and every series' values.
func WithReverse() Option {
	return func(o *options) {
		o.reverse = true
	}
}

// WithMulti makes every value an (x?, y?) pair; primitives fill the y component.
func WithMulti() Option {
	return func(o *options) {
		o.multi = multiY
	}
}

// WithMultiDim makes every value an (x?, y?) pair; primitives fill dim.
// Horizontal bar layouts use WithMultiDim(DimX).
func WithMultiDim(dim Dim) Option {
	return func(o *options) {
		if dim == DimX {
			o.multi = multiX
		} else {
			o.multi = multiY
		}
	}
}

func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
