// SPDX-License-Identifier: MIT
// Package: lvplot/svgpath
//
// errors.go — sentinel errors for the svgpath package.
//
// Callers branch with errors.Is; context is attached with %w at the failing
// call site ("Parse: ...: %w").

package svgpath

import "errors"

// ErrUnknownCommand indicates a command letter outside M, L, C, A (and a
// trailing Z) was found while parsing. The vocabulary is closed.
var ErrUnknownCommand = errors.New("svgpath: unknown path command")

// ErrBadParams indicates a command was not followed by its full parameter set,
// or a token that should be a number could not be read as one.
var ErrBadParams = errors.New("svgpath: malformed command parameters")
