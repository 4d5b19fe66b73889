// SPDX-License-Identifier: MIT
// Package: lvplot/interpolation
//
// step.go — staircase interpolation.

package interpolation

import (
	"github.com/katalvlaran/lvplot/segment"
	"github.com/katalvlaran/lvplot/svgpath"
)

// Step draws a staircase: for each pair of neighbouring points one
// horizontal and one vertical line. With postpone (the default) the
// horizontal run comes first and the corner carries the previous point's
// data; otherwise the riser comes first and the corner carries the current
// point's data.
func Step(opts ...Option) Func {
	o := gatherOptions(opts)

	return func(coords []float64, data []segment.Data) *svgpath.Path {
		return render("step", coords, data, o, false, func(seg segment.Segment) *svgpath.Path {
			p := svgpath.New(false, o.pathOpts...)
			var (
				prevX, prevY float64
				prevData     segment.Data
			)
			for i, sd := range seg.Data {
				x, y := seg.Coordinates[2*i], seg.Coordinates[2*i+1]
				switch {
				case i == 0:
					p.Move(x, y, svgpath.WithData(sd))
				case o.postpone:
					p.Line(x, prevY, svgpath.WithData(prevData))
					p.Line(x, y, svgpath.WithData(sd))
				default:
					p.Line(prevX, y, svgpath.WithData(sd))
					p.Line(x, y, svgpath.WithData(sd))
				}
				prevX, prevY, prevData = x, y, sd
			}

			return p
		})
	}
}
