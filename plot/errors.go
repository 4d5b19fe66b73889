// SPDX-License-Identifier: MIT
// Package: lvplot/plot
//
// errors.go — sentinel errors for the plot package.

package plot

import "errors"

// ErrNoSeries indicates the chart data holds no series at all.
var ErrNoSeries = errors.New("plot: chart data has no series")

// ErrUnknownAxisType indicates an AxisType outside step, auto, fixed.
var ErrUnknownAxisType = errors.New("plot: unknown axis type")
