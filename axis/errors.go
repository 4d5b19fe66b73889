// SPDX-License-Identifier: MIT
// Package: lvplot/axis
//
// errors.go — sentinel errors for the axis package.

package axis

import "errors"

// ErrNoTicks indicates a Step axis was created without any labels.
var ErrNoTicks = errors.New("axis: step axis needs at least one tick")

// ErrInvalidRange indicates an explicit range with high <= low.
var ErrInvalidRange = errors.New("axis: invalid axis range")
