// SPDX-License-Identifier: MIT
// Package: lvplot/interpolation
//
// none.go — straight line segments.

package interpolation

import (
	"github.com/katalvlaran/lvplot/segment"
	"github.com/katalvlaran/lvplot/svgpath"
)

// None connects the points of every run with straight lines. Holes start a
// new run with M unless WithFillHoles is set.
func None(opts ...Option) Func {
	o := gatherOptions(opts)

	return func(coords []float64, data []segment.Data) *svgpath.Path {
		return render("none", coords, data, o, false, func(seg segment.Segment) *svgpath.Path {
			return straight(seg, o)
		})
	}
}
