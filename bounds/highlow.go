// SPDX-License-Identifier: MIT
// Package: lvplot/bounds
//
// highlow.go — value range detection over normalised series.

package bounds

import (
	"math"

	"github.com/katalvlaran/lvplot/series"
)

// highLowOptions is the resolved GetHighLow configuration.
type highLowOptions struct {
	high, low, reference       float64
	hasHigh, hasLow, hasRefVal bool
}

// HighLowOption customises GetHighLow.
type HighLowOption func(*highLowOptions)

// WithHigh fixes the upper end of the range instead of detecting it.
func WithHigh(v float64) HighLowOption {
	return func(o *highLowOptions) { o.high, o.hasHigh = v, true }
}

// WithLow fixes the lower end of the range instead of detecting it.
func WithLow(v float64) HighLowOption {
	return func(o *highLowOptions) { o.low, o.hasLow = v, true }
}

// WithReferenceValue forces v into the range (e.g. 0 for bar baselines).
func WithReferenceValue(v float64) HighLowOption {
	return func(o *highLowOptions) { o.reference, o.hasRefVal = v, true }
}

// GetHighLow returns the range of the dim component over all values, skipping
// holes and missing components.
//
// Degenerate ranges (high <= low, including "no values at all") are widened:
//
//	low == 0 → high = 1
//	low < 0  → high = 0
//	high > 0 → low = 0
//	else     → high = 1, low = 0
//
// Complexity: O(total values).
func GetHighLow(values [][]series.Value, dim series.Dim, opts ...HighLowOption) HighLow {
	var o highLowOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	hl := HighLow{High: -math.MaxFloat64, Low: math.MaxFloat64}
	if o.hasHigh {
		hl.High = o.high
	}
	if o.hasLow {
		hl.Low = o.low
	}

	if !o.hasHigh || !o.hasLow {
		for _, vs := range values {
			for _, v := range vs {
				n, ok := v.Get(dim)
				if !ok {
					continue
				}
				if !o.hasHigh && n > hl.High {
					hl.High = n
				}
				if !o.hasLow && n < hl.Low {
					hl.Low = n
				}
			}
		}
	}

	if o.hasRefVal {
		hl.High = math.Max(o.reference, hl.High)
		hl.Low = math.Min(o.reference, hl.Low)
	}

	if hl.High <= hl.Low {
		switch {
		case hl.Low == 0:
			hl.High = 1
		case hl.Low < 0:
			hl.High = 0
		case hl.High > 0:
			hl.Low = 0
		default:
			hl.High, hl.Low = 1, 0
		}
	}

	return hl
}
