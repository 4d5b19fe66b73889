// Package series turns heterogeneous chart input into one uniform,
// hole-aware numeric representation.
//
// Raw input is modelled as a closed set of Datum variants:
//
//	Number, Text, Bool, Time   — primitives, converted to float64
//	Null                       — an explicit data hole
//	Point{X, Y}                — a multi-dimensional value
//	Wrapped{Value, Meta}       — a {value: …} wrapper carrying metadata
//	List                       — a plain array of data
//	Series{Name, Data, …}      — a {data: […]} series wrapper
//
// Normalize resolves every variant with a single recursive function:
// numbers, numeric strings, booleans (0/1) and times (epoch milliseconds)
// become numbers; Null, NaN, ±Inf and unparsable text become holes. In multi
// mode every value becomes an (x?, y?) pair, and a pair with both
// components missing is itself a hole.
//
// Labels are padded with empty strings up to the longest series. When
// WithReverse is given, labels, series order and every series' values are
// reversed once, before the result is returned.
//
// FromAny converts decoded JSON/YAML trees (map[string]any, []any, …) into
// Datum values, so documents read by package config normalise exactly like
// hand-built input.
package series
