// Package interpolation turns a stream of projected points into a path.
//
// Every strategy shares one signature, Func:
//
//	func(coords []float64, data []segment.Data) *svgpath.Path
//
// where coords holds flat x,y pairs and data one segment.Data per pair.
// Each strategy runs segment.Split first and renders every hole-free run
// on its own, so a hole always produces a fresh M command. The runs are
// then joined into one path.
//
// Strategies:
//
//	None           M to the first point, L to every following point.
//	Simple         C per pair, control points offset horizontally by Δx/divisor.
//	Cardinal       C per pair, control points from neighbouring points (tension).
//	MonotoneCubic  C per pair, Fritsch–Carlson slopes; never overshoots in y.
//	               Points must have strictly increasing x; a decrease starts a new run.
//	Step           two L per pair forming a staircase, riser after (postpone)
//	               or before the horizontal run.
//
// Cardinal and MonotoneCubic need neighbours to compute tangents; a run of
// one or two points is rendered as None does.
//
// Every emitted command carries the segment.Data of the point it draws to.
//
// New selects a strategy from a Kind, the closed set of strategy names used
// in chart configuration:
//
//	fn, err := interpolation.New(interpolation.KindMonotone, interpolation.WithFillHoles(true))
//	d := fn(coords, data).String()
package interpolation
