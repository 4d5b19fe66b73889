// Package lvplot is the geometry and interpolation engine behind SVG line
// charts: it turns tabular series data into axis scales, projected points
// and path strings, and leaves drawing to whoever consumes them.
//
// 🚀 What is lvplot?
//
//	A pure, deterministic pipeline that brings together:
//		• Normalisation: numbers, {value}, {x, y} and {data} series → one model
//		• Scales: "nice" tick steps under a minimum pixel spacing
//		• Segmentation: hole-aware runs of points
//		• Interpolation: none, simple, cardinal, monotone cubic, step
//		• Paths: a cursor-addressable M/L/C/A model with parse & stringify
//		• Charts: line and area geometry from a YAML/JSON document
//
// ✨ Why choose lvplot?
//
//   - Byte-stable output – path strings are safe for golden files
//   - Provenance – every path command knows which datum it draws
//   - No shared state – every call builds fresh values, safe to run in parallel
//
// Packages, leaf first:
//
//	numeric/       — order of magnitude, rounding, Pollard's rho, polar → cartesian
//	bounds/        — GetBounds (tick scale) and GetHighLow (value range)
//	series/        — input variants and Normalize
//	segment/       — Split: points → hole-free runs
//	svgpath/       — Path: commands, cursor, Stringify / Parse, Scale / Translate
//	interpolation/ — the Func strategies and New(Kind)
//	axis/          — ChartRect, AutoScale / FixedScale / Step axes
//	plot/          — Line: the whole line chart pipeline
//	config/        — chart documents decoded with gopkg.in/yaml.v3
//
// Quick ASCII example (step interpolation, postponed risers):
//
//	        ┌───┐
//	    ┌───┘   └───
//	────┘
//
// Dive into examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/lvplot
package lvplot
