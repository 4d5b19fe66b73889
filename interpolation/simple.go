// SPDX-License-Identifier: MIT
// Package: lvplot/interpolation
//
// simple.go — horizontal-tangent cubic smoothing.

package interpolation

import (
	"math"

	"github.com/katalvlaran/lvplot/segment"
	"github.com/katalvlaran/lvplot/svgpath"
)

// Simple draws one cubic curve per pair of neighbouring points. Both control
// points sit at the height of their end point, moved horizontally towards
// the other end by Δx/max(1, divisor). No neighbour context is needed.
func Simple(opts ...Option) Func {
	o := gatherOptions(opts)
	d := 1 / math.Max(1, o.divisor)

	return func(coords []float64, data []segment.Data) *svgpath.Path {
		return render("simple", coords, data, o, false, func(seg segment.Segment) *svgpath.Path {
			p := svgpath.New(false, o.pathOpts...)
			var prevX, prevY float64
			for i, sd := range seg.Data {
				x, y := seg.Coordinates[2*i], seg.Coordinates[2*i+1]
				if i == 0 {
					p.Move(x, y, svgpath.WithData(sd))
				} else {
					length := (x - prevX) * d
					p.Curve(prevX+length, prevY, x-length, y, x, y, svgpath.WithData(sd))
				}
				prevX, prevY = x, y
			}

			return p
		})
	}
}
