// SPDX-License-Identifier: MIT
// Package: lvplot/interpolation
//
// cardinal.go — Catmull-Rom style cardinal spline.

package interpolation

import (
	"math"

	"github.com/katalvlaran/lvplot/segment"
	"github.com/katalvlaran/lvplot/svgpath"
)

// Cardinal draws a cardinal spline through every run. For the curve from
// p1 to p2 with neighbours p0 and p3 the control points are
//
//	c1 = t·(−p0 + 6·p1 + p2)/6 + (1−t)·p2
//	c2 = t·( p1 + 6·p2 − p3)/6 + (1−t)·p2
//
// with t the tension clamped to [0, 1]. At the ends of a run the missing
// neighbour is replaced by the end point itself. Runs of one or two points
// are drawn with straight lines.
//
// Complexity: O(n).
func Cardinal(opts ...Option) Func {
	o := gatherOptions(opts)
	t := math.Min(1, math.Max(0, o.tension))
	c := 1 - t

	return func(coords []float64, data []segment.Data) *svgpath.Path {
		return render("cardinal", coords, data, o, false, func(seg segment.Segment) *svgpath.Path {
			n := seg.Len()
			if n <= 2 {
				return straight(seg, o)
			}

			pt := func(i int) (float64, float64) {
				i = max(0, min(n-1, i))

				return seg.Coordinates[2*i], seg.Coordinates[2*i+1]
			}

			p := svgpath.New(false, o.pathOpts...)
			p.Move(seg.Coordinates[0], seg.Coordinates[1], svgpath.WithData(seg.Data[0]))
			for i := 0; i < n-1; i++ {
				x0, y0 := pt(i - 1)
				x1, y1 := pt(i)
				x2, y2 := pt(i + 1)
				x3, y3 := pt(i + 2)
				p.Curve(
					t*(-x0+6*x1+x2)/6+c*x2,
					t*(-y0+6*y1+y2)/6+c*y2,
					t*(x1+6*x2-x3)/6+c*x2,
					t*(y1+6*y2-y3)/6+c*y2,
					x2, y2,
					svgpath.WithData(seg.Data[i+1]),
				)
			}

			return p
		})
	}
}
