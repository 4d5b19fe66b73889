// SPDX-License-Identifier: MIT
// Package: lvplot/segment
//
// segment.go — splitting projected points into hole-free runs.

package segment

import (
	"github.com/katalvlaran/lvplot/series"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lvplot'.
func tracer() tracing.Trace {
	return tracing.Select("lvplot")
}

// Data carries the provenance of one point through every transformation:
// the normalised value, its index in the source series and optional user
// metadata.
type Data struct {
	Value      series.Value
	ValueIndex int
	Meta       string
}

// Segment is a maximal run of hole-free points.
type Segment struct {
	// Coordinates holds flat x,y pairs.
	Coordinates []float64
	// Data holds one entry per coordinate pair.
	Data []Data
}

// Len returns the number of points in s.
func (s Segment) Len() int { return len(s.Data) }

// options is the resolved Split configuration.
type options struct {
	fillHoles   bool
	increasingX bool
}

// Option customises Split.
type Option func(*options)

// WithFillHoles joins the points on both sides of a hole.
func WithFillHoles(fill bool) Option {
	return func(o *options) { o.fillHoles = fill }
}

// WithIncreasingX starts a new Segment whenever x does not strictly increase
// relative to the previous valid point.
func WithIncreasingX(increasing bool) Option {
	return func(o *options) { o.increasingX = increasing }
}

// Split partitions coords (flat x,y pairs) and data (one entry per pair) into
// Segments. Extra coordinates or data entries without a partner are ignored.
//
// Algorithm:
//  1. Walk the pairs in order. A pair whose value has no y component
//     (see series.Value.HasValue) is a hole: it marks the current run as
//     broken unless WithFillHoles is set, and is never emitted.
//  2. With WithIncreasingX, a point whose x is not greater than the previous
//     emitted point's x also breaks the run.
//  3. The first point after a break opens a new Segment; every other point
//     is appended to the last one.
//
// Runs of a single point are kept; callers decide whether to draw them.
// Complexity: O(n) time, O(n) space.
func Split(coords []float64, data []Data, opts ...Option) []Segment {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	n := min(len(coords)/2, len(data))
	var (
		segments []Segment
		hole     = true
		prevX    float64
	)
	for i := 0; i < n; i++ {
		d := data[i]
		if !d.Value.HasValue() {
			if !o.fillHoles {
				hole = true
			}
			continue
		}

		x, y := coords[2*i], coords[2*i+1]
		if o.increasingX && len(segments) > 0 && !hole && x <= prevX {
			hole = true
		}
		if hole {
			segments = append(segments, Segment{})
			hole = false
		}
		last := &segments[len(segments)-1]
		last.Coordinates = append(last.Coordinates, x, y)
		last.Data = append(last.Data, d)
		prevX = x
	}
	tracer().Debugf("segment: %d points split into %d segments", n, len(segments))

	return segments
}
