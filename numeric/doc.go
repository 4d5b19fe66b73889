// Package numeric holds the small, pure floating-point helpers the rest of
// lvplot is built on: order of magnitude, axis length projection, rounding
// with a fixed decimal precision, float-safe stepping, the Pollard's rho
// smallest-factor search used by integer-only scales and polar → cartesian
// conversion for radial layouts.
//
// Every function is total over its documented domain, allocates nothing and
// is safe for concurrent use.
//
//	import "github.com/katalvlaran/lvplot/numeric"
//
//	oom := numeric.OrderOfMagnitude(950)          // 2
//	px := numeric.ProjectLength(300, 10, 100)     // 30
//	v := numeric.RoundWithPrecision(0.1+0.2, 8)   // 0.3
package numeric
