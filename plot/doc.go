// Package plot assembles the geometry of a line chart: the chart
// rectangle, both axes, and per series the projected points, the
// interpolated line path and the area paths underneath it.
//
// Pipeline:
//
//	series.Normalize (multi mode)     raw input → (x?, y?) values and holes
//	axis.CreateChartRect              canvas − padding − axis offsets
//	axis.NewStep / NewAutoScale / …   one axis per direction
//	project                           x = X1 + axisX(v, i), y = Y1 − axisY(v, i)
//	interpolation.Func                points → line path, holes → new M
//	areas                             one closed path per solid run
//
// Areas are derived from the line path itself: it is split at every M,
// single-point runs are dropped, and each run is closed against the area
// base (clamped into the Y axis range) by replacing its leading M with
// M(first.x, base) L(first.x, first.y) and appending L(last.x, base).
// A Y axis without a numeric range (Step) produces no areas.
//
// Nothing here renders; the returned paths stringify to the d attributes a
// rendering layer needs and the points carry the segment.Data of their
// source values.
package plot
