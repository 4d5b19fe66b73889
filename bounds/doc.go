// Package bounds computes "nice" axis scales.
//
// GetBounds turns an arbitrary value range into a tick-aligned scale whose
// step, projected onto the axis, is at least scaleMinSpace pixels apart:
//
//  1. step starts at 10^⌊log10(range)⌋, min/max snap outwards to it.
//  2. If one step is narrower than scaleMinSpace the step doubles until it
//     is wide enough; otherwise it halves while the half still fits.
//     Integer-only scales prefer a step of 1, then the smallest factor of
//     the range, and never accept a fractional step.
//  3. min and max are pulled back towards low/high one step at a time.
//  4. Tick values are walked from min to max, rounded to
//     numeric.DefaultPrecision digits and de-duplicated.
//
// The step search is capped at MaxIterations; exceeding it (for example a
// zero scaleMinSpace that would halve the step forever) is reported as
// ErrStepOptimization rather than returning a wrong scale.
//
// GetHighLow finds the value range of normalised series for one dimension,
// honouring fixed high/low values and a reference value, and widens a
// zero-width range so GetBounds never sees one.
//
//	hl := bounds.GetHighLow(norm.Values(), series.DimY)
//	b, err := bounds.GetBounds(300, hl, 20, false)
//	// b.Min, b.Max, b.Step, b.Values
package bounds
