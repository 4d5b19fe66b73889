// SPDX-License-Identifier: MIT
// Package: lvplot/bounds
//
// errors.go — sentinel errors for the bounds package.

package bounds

import "errors"

// ErrStepOptimization indicates the step search exceeded MaxIterations, or
// the resulting scale would need more than MaxTicks ticks. Both mean the
// configuration is contradictory (e.g. scaleMinSpace <= 0).
var ErrStepOptimization = errors.New("bounds: exceeded maximum number of iterations while optimizing scale step")

// ErrInvalidRange indicates high <= low, a non-finite range, or a
// non-positive axis length. Degenerate ranges must be widened first
// (GetHighLow does this).
var ErrInvalidRange = errors.New("bounds: invalid value range")
