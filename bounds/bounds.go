// SPDX-License-Identifier: MIT
// Package: lvplot/bounds
//
// bounds.go — scale step optimisation and tick generation.

package bounds

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvplot/numeric"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lvplot'.
func tracer() tracing.Trace {
	return tracing.Select("lvplot")
}

const (
	// MaxIterations caps the step doubling/halving loop.
	MaxIterations = 1000

	// MaxTicks caps the number of tick values a scale may produce.
	MaxTicks = 100000

	// tickTolerance is the fraction of a step by which accumulated float
	// error may overshoot max and still produce the final tick.
	tickTolerance = 1e-9
)

// HighLow is a closed value range.
type HighLow struct {
	High float64
	Low  float64
}

// Bounds is a computed axis scale. It is created fresh per call and not
// modified afterwards.
//
// Invariants: Min <= Low <= High <= Max; Values is strictly increasing,
// starts at Min and advances by Step (up to rounding to
// numeric.DefaultPrecision digits).
type Bounds struct {
	High       float64
	Low        float64
	ValueRange float64
	OOM        int

	Step          float64
	Min           float64
	Max           float64
	Range         float64
	NumberOfSteps int

	Values []float64
}

// GetBounds computes a scale for an axis of axisLength pixels covering hl,
// with ticks at least scaleMinSpace pixels apart. With onlyInteger every tick
// is a whole number.
//
// Errors:
//   - ErrInvalidRange     — hl.High <= hl.Low, non-finite input, axisLength <= 0.
//   - ErrStepOptimization — MaxIterations or MaxTicks exceeded.
//
// Complexity: O(MaxIterations + number of ticks).
func GetBounds(axisLength float64, hl HighLow, scaleMinSpace float64, onlyInteger bool) (Bounds, error) {
	if err := validate(axisLength, hl); err != nil {
		return Bounds{}, fmt.Errorf("GetBounds: %w", err)
	}

	b := Bounds{High: hl.High, Low: hl.Low}
	b.ValueRange = b.High - b.Low
	b.OOM = numeric.OrderOfMagnitude(b.ValueRange)
	b.Step = math.Pow(10, float64(b.OOM))
	b.Min = math.Floor(b.Low/b.Step) * b.Step
	b.Max = math.Ceil(b.High/b.Step) * b.Step
	b.Range = b.Max - b.Min

	project := func(length float64) float64 {
		return numeric.ProjectLength(axisLength, length, b.Range)
	}

	scaleUp := project(b.Step) < scaleMinSpace
	var smallestFactor float64
	if onlyInteger && numeric.IsInteger(b.Range) && b.Range >= 1 && b.Range <= float64(math.MaxInt64) {
		smallestFactor = float64(numeric.Rho(uint64(b.Range)))
	}

	switch {
	case onlyInteger && project(1) >= scaleMinSpace:
		b.Step = 1
	case onlyInteger && smallestFactor > 0 && smallestFactor < b.Step && project(smallestFactor) >= scaleMinSpace:
		b.Step = smallestFactor
	default:
		if err := optimizeStep(&b, project, scaleUp, scaleMinSpace, onlyInteger); err != nil {
			return Bounds{}, fmt.Errorf("GetBounds: %w", err)
		}
	}

	if onlyInteger && !(numeric.IsInteger(b.Step) && numeric.IsInteger(b.Min) && numeric.IsInteger(b.Max)) {
		// A sub-unit order of magnitude leaves a fractional grid behind.
		b.Step = math.Max(1, math.Ceil(b.Step))
		b.Min = math.Floor(b.Low/b.Step) * b.Step
		b.Max = math.Ceil(b.High/b.Step) * b.Step
	}

	b.Step = math.Max(b.Step, numeric.Epsilon)
	if (b.Max-b.Min)/b.Step > MaxTicks {
		return Bounds{}, fmt.Errorf("GetBounds: %.0f ticks: %w", (b.Max-b.Min)/b.Step, ErrStepOptimization)
	}

	newMin, newMax := b.Min, b.Max
	for newMin+b.Step <= b.Low {
		newMin = numeric.SafeIncrement(newMin, b.Step)
	}
	for newMax-b.Step >= b.High {
		newMax = numeric.SafeIncrement(newMax, -b.Step)
	}
	b.Min, b.Max = newMin, newMax
	b.Range = b.Max - b.Min
	b.NumberOfSteps = int(numeric.RoundHalfUp(b.Range / b.Step))

	b.Values = ticks(b.Min, b.Max, b.Step)
	tracer().Debugf("bounds: [%g, %g] on %gpx → step %g, %d ticks", b.Low, b.High, axisLength, b.Step, len(b.Values))

	return b, nil
}

// optimizeStep doubles (scaleUp) or halves the step until the spacing
// constraint flips sides.
func optimizeStep(b *Bounds, project func(float64) float64, scaleUp bool, scaleMinSpace float64, onlyInteger bool) error {
	for i := 0; ; i++ {
		if i > MaxIterations {
			return ErrStepOptimization
		}
		switch {
		case scaleUp && project(b.Step) <= scaleMinSpace:
			b.Step *= 2
		case !scaleUp && project(b.Step/2) >= scaleMinSpace:
			b.Step /= 2
			if onlyInteger && !numeric.IsInteger(b.Step) {
				b.Step *= 2

				return nil
			}
		default:
			return nil
		}
	}
}

// ticks walks from min to max in step increments, rounding every value and
// skipping values that round onto their predecessor.
func ticks(min, max, step float64) []float64 {
	var values []float64
	limit := max + step*tickTolerance
	for v := min; v <= limit; v = numeric.SafeIncrement(v, step) {
		r := numeric.RoundWithPrecision(v, numeric.DefaultPrecision)
		if len(values) > 0 && values[len(values)-1] == r {
			continue
		}
		values = append(values, r)
	}

	return values
}

func validate(axisLength float64, hl HighLow) error {
	switch {
	case math.IsNaN(hl.High) || math.IsNaN(hl.Low) || math.IsInf(hl.High, 0) || math.IsInf(hl.Low, 0):
		return fmt.Errorf("non-finite range [%v, %v]: %w", hl.Low, hl.High, ErrInvalidRange)
	case hl.High <= hl.Low:
		return fmt.Errorf("high %v <= low %v: %w", hl.High, hl.Low, ErrInvalidRange)
	case !(axisLength > 0) || math.IsInf(axisLength, 0):
		return fmt.Errorf("axis length %v: %w", axisLength, ErrInvalidRange)
	}

	return nil
}
