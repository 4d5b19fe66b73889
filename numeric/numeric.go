// SPDX-License-Identifier: MIT
// Package: lvplot/numeric
//
// numeric.go — magnitude, projection, rounding and stepping helpers.

package numeric

import "math"

// DefaultPrecision is the number of decimal digits tick values are rounded to.
const DefaultPrecision = 8

// Epsilon is the smallest step a scale may use. It also guards divisions on
// degenerate ranges.
const Epsilon = 2.221e-16

// OrderOfMagnitude returns ⌊log10(|v|)⌋, i.e. the exponent of the largest
// power of ten not exceeding |v|.
//
// OrderOfMagnitude(0) is math.MinInt because log10(0) = -Inf; callers are
// expected to pass non-zero ranges.
// Complexity: O(1).
func OrderOfMagnitude(v float64) int {
	l := math.Log10(math.Abs(v))
	if math.IsInf(l, -1) {
		return math.MinInt
	}

	return int(math.Floor(l))
}

// ProjectLength maps a length in data units onto an axis of axisLength pixels
// that spans rangeLen data units.
//
//	ProjectLength(axisLength, length, rangeLen) = length / rangeLen * axisLength
//
// Complexity: O(1).
func ProjectLength(axisLength, length, rangeLen float64) float64 {
	return length / rangeLen * axisLength
}

// RoundWithPrecision rounds v to the given number of decimal digits.
// Halves are rounded towards +Inf so that negative and positive ticks are
// rounded the same way on both sides of zero. A negative digits value is
// treated as DefaultPrecision.
// Complexity: O(1).
func RoundWithPrecision(v float64, digits int) float64 {
	if digits < 0 {
		digits = DefaultPrecision
	}
	p := math.Pow(10, float64(digits))

	return RoundHalfUp(v*p) / p
}

// RoundHalfUp rounds to the nearest integer, halves towards +Inf
// (RoundHalfUp(-2.5) == -2, RoundHalfUp(2.5) == 3).
func RoundHalfUp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	return math.Floor(v + 0.5)
}

// SafeIncrement returns value+increment, guaranteeing progress in the
// direction of increment even when increment is below the float resolution
// at value. In that case the result is the next representable float64 after
// value towards the sign of increment.
//
// A zero or NaN increment returns value unchanged.
// Complexity: O(1).
func SafeIncrement(value, increment float64) float64 {
	next := value + increment
	if next != value || increment == 0 || math.IsNaN(increment) {
		return next
	}
	if increment > 0 {
		return math.Nextafter(value, math.Inf(1))
	}

	return math.Nextafter(value, math.Inf(-1))
}

// IsInteger reports whether v is a finite whole number.
func IsInteger(v float64) bool {
	return !math.IsInf(v, 0) && v == math.Trunc(v)
}

// PolarToCartesian converts a point given by its distance r from the centre
// (cx, cy) and angle in degrees into cartesian coordinates. The angle is
// measured clockwise from 12 o'clock, which is what pie and donut layouts
// expect in a y-down coordinate system.
// Complexity: O(1).
func PolarToCartesian(cx, cy, r, angleDeg float64) (x, y float64) {
	rad := (angleDeg - 90) * math.Pi / 180.0

	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}

// Sum adds the given values, skipping NaN entries (data holes).
func Sum(values ...float64) float64 {
	var s float64
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		s += v
	}

	return s
}
