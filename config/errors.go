// SPDX-License-Identifier: MIT
// Package: lvplot/config
//
// errors.go — sentinel errors for the config package.

package config

import "errors"

var (
	// ErrDecode indicates the document is not valid YAML/JSON or does not
	// match the document schema.
	ErrDecode = errors.New("config: cannot decode chart document")

	// ErrUnknownInterpolation indicates a lineSmooth type outside none,
	// simple, cardinal, monotone, step.
	ErrUnknownInterpolation = errors.New("config: unknown interpolation")

	// ErrUnknownAxisType indicates an axis type outside step, auto, fixed.
	ErrUnknownAxisType = errors.New("config: unknown axis type")

	// ErrInvalidOption indicates an option value outside its domain
	// (negative accuracy, divisor < 1, unknown position, …).
	ErrInvalidOption = errors.New("config: invalid option value")
)
