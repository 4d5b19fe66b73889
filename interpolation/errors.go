// SPDX-License-Identifier: MIT
// Package: lvplot/interpolation
//
// errors.go — sentinel errors for the interpolation package.

package interpolation

import "errors"

// ErrUnknownKind indicates a strategy name or Kind outside the closed set
// none, simple, cardinal, monotone, step.
var ErrUnknownKind = errors.New("interpolation: unknown interpolation kind")
