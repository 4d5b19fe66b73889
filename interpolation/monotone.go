// SPDX-License-Identifier: MIT
// Package: lvplot/interpolation
//
// monotone.go — monotone cubic interpolation (Fritsch–Carlson).

package interpolation

import (
	"math"

	"github.com/katalvlaran/lvplot/segment"
	"github.com/katalvlaran/lvplot/svgpath"
)

// MonotoneCubic draws a cubic Hermite spline whose tangents are limited so
// the curve never overshoots between two points: where the secant slope
// changes sign or is flat, the tangent is 0; elsewhere it is the weighted
// harmonic mean of the neighbouring secants.
//
// The spline is only defined for strictly increasing x, so any x decrease
// starts a new run. Runs of one or two points are drawn with straight lines.
//
// Complexity: O(n).
func MonotoneCubic(opts ...Option) Func {
	o := gatherOptions(opts)

	return func(coords []float64, data []segment.Data) *svgpath.Path {
		return render("monotone", coords, data, o, true, func(seg segment.Segment) *svgpath.Path {
			n := seg.Len()
			if n <= 2 {
				return straight(seg, o)
			}

			xs := make([]float64, n)
			ys := make([]float64, n)
			for i := range xs {
				xs[i], ys[i] = seg.Coordinates[2*i], seg.Coordinates[2*i+1]
			}

			dxs := make([]float64, n-1)
			ds := make([]float64, n-1)
			for i := 0; i < n-1; i++ {
				dxs[i] = xs[i+1] - xs[i]
				ds[i] = (ys[i+1] - ys[i]) / dxs[i]
			}

			ms := make([]float64, n)
			ms[0], ms[n-1] = ds[0], ds[n-2]
			for i := 1; i < n-1; i++ {
				if ds[i] == 0 || ds[i-1] == 0 || (ds[i-1] > 0) != (ds[i] > 0) {
					continue
				}
				m := 3 * (dxs[i-1] + dxs[i]) /
					((2*dxs[i]+dxs[i-1])/ds[i-1] + (dxs[i]+2*dxs[i-1])/ds[i])
				if !math.IsNaN(m) && !math.IsInf(m, 0) {
					ms[i] = m
				}
			}

			p := svgpath.New(false, o.pathOpts...)
			p.Move(xs[0], ys[0], svgpath.WithData(seg.Data[0]))
			for i := 0; i < n-1; i++ {
				third := dxs[i] / 3
				p.Curve(
					xs[i]+third, ys[i]+ms[i]*third,
					xs[i+1]-third, ys[i+1]-ms[i+1]*third,
					xs[i+1], ys[i+1],
					svgpath.WithData(seg.Data[i+1]),
				)
			}

			return p
		})
	}
}
