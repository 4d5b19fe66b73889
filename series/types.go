// SPDX-License-Identifier: MIT
// Package: lvplot/series
//
// types.go — raw input variants and the normalised value model.

package series

import "time"

// Datum is one node of raw chart input. The set of implementations is closed:
// Number, Text, Bool, Time, Null, Point, Wrapped, List and Series.
type Datum interface {
	isDatum()
}

// Number is a numeric primitive.
type Number float64

// Text is a string primitive; it normalises to a number when it parses as one.
type Text string

// Bool is a boolean primitive (false → 0, true → 1).
type Bool bool

// Time is a point in time; it normalises to Unix epoch milliseconds.
type Time struct{ time.Time }

// Null is an explicit data hole.
type Null struct{}

// Point is a multi-dimensional {x, y} value. A nil component is missing.
type Point struct {
	X, Y Datum
	Meta string
}

// Wrapped is a {value: …} wrapper attaching metadata to a value.
type Wrapped struct {
	Value Datum
	Meta  string
}

// List is a plain array of data.
type List []Datum

// Series is a {data: […]} wrapper with optional presentation attributes.
type Series struct {
	Name      string
	ClassName string
	Meta      string
	Data      List
}

func (Number) isDatum()  {}
func (Text) isDatum()    {}
func (Bool) isDatum()    {}
func (Time) isDatum()    {}
func (Null) isDatum()    {}
func (Point) isDatum()   {}
func (Wrapped) isDatum() {}
func (List) isDatum()    {}
func (Series) isDatum()  {}

// Numbers is a convenience constructor for a List of plain numbers.
func Numbers(vs ...float64) List {
	l := make(List, len(vs))
	for i, v := range vs {
		l[i] = Number(v)
	}

	return l
}

// Data is the raw chart input: optional labels plus one Datum per series.
type Data struct {
	Labels []string
	Series []Datum
}

// Dim selects a value dimension.
type Dim int

const (
	// DimY is the value (vertical) dimension.
	DimY Dim = iota
	// DimX is the category / horizontal dimension.
	DimX
)

// String returns "x" or "y".
func (d Dim) String() string {
	if d == DimX {
		return "x"
	}

	return "y"
}

// Value is a normalised datum: a scalar number, an (x?, y?) pair or a hole.
// The zero Value is a hole.
type Value struct {
	x, y       float64
	hasX, hasY bool
	scalar     bool

	// Meta is the user metadata attached through a Wrapped, Point or Series.
	Meta string
}

// Num returns a scalar value.
func Num(v float64) Value { return Value{y: v, hasY: true, scalar: true} }

// XY returns a pair with both components present.
func XY(x, y float64) Value { return Value{x: x, y: y, hasX: true, hasY: true} }

// OnlyX returns a pair with only the x component present.
func OnlyX(x float64) Value { return Value{x: x, hasX: true} }

// OnlyY returns a pair with only the y component present.
func OnlyY(y float64) Value { return Value{y: y, hasY: true} }

// Hole returns the data-hole value.
func Hole() Value { return Value{} }

// WithMeta returns a copy of v carrying meta.
func (v Value) WithMeta(meta string) Value {
	v.Meta = meta

	return v
}

// IsHole reports whether v carries no number at all.
func (v Value) IsHole() bool { return !v.hasX && !v.hasY }

// HasValue reports whether v carries its value (y) component. A pair with
// only an x component has nothing to plot and is drawn as a hole.
func (v Value) HasValue() bool {
	_, ok := v.Get(DimY)

	return ok
}

// IsScalar reports whether v is a plain number rather than an (x, y) pair.
func (v Value) IsScalar() bool { return v.scalar }

// Scalar returns the number of a scalar value.
func (v Value) Scalar() (float64, bool) { return v.y, v.scalar && v.hasY }

// X returns the x component of a pair value.
func (v Value) X() (float64, bool) { return v.x, v.hasX }

// Y returns the y component of a pair value, or the number of a scalar.
func (v Value) Y() (float64, bool) { return v.y, v.hasY }

// Get returns the component for dim. A scalar answers for every dimension.
func (v Value) Get(dim Dim) (float64, bool) {
	if v.scalar {
		return v.y, v.hasY
	}
	if dim == DimX {
		return v.x, v.hasX
	}

	return v.y, v.hasY
}

// Multi returns the component for dim, or 0 when it is missing.
func (v Value) Multi(dim Dim) float64 {
	n, ok := v.Get(dim)
	if !ok {
		return 0
	}

	return n
}

// NormalizedSeries is one normalised input series.
type NormalizedSeries struct {
	Name      string
	ClassName string
	Meta      string

	// Values holds one entry per label. A series given as a single value
	// (pie-style input) has exactly one entry and Nested == false.
	Values []Value
	Nested bool
}

// Normalized is the uniform result of Normalize.
type Normalized struct {
	Labels []string
	Series []NormalizedSeries
}

// Meta returns the metadata of value valueIndex in series seriesIndex, or ""
// when either index is out of range.
func (n Normalized) Meta(seriesIndex, valueIndex int) string {
	if seriesIndex < 0 || seriesIndex >= len(n.Series) {
		return ""
	}
	vs := n.Series[seriesIndex].Values
	if valueIndex < 0 || valueIndex >= len(vs) {
		return ""
	}

	return vs[valueIndex].Meta
}

// Values returns the values of every series, in series order.
func (n Normalized) Values() [][]Value {
	out := make([][]Value, len(n.Series))
	for i, s := range n.Series {
		out[i] = s.Values
	}

	return out
}
