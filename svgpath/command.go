// SPDX-License-Identifier: MIT
// Package: lvplot/svgpath
//
// command.go — command kinds, parameter layouts and the Command record.

package svgpath

import "github.com/katalvlaran/lvplot/segment"

// Kind is a path command letter in its absolute (upper-case) form.
type Kind byte

const (
	// Move starts a new subpath at (x, y).
	Move Kind = 'M'
	// Line draws a straight line to (x, y).
	Line Kind = 'L'
	// Curve draws a cubic Bézier to (x, y) with controls (x1, y1), (x2, y2).
	Curve Kind = 'C'
	// Arc draws an elliptical arc to (x, y).
	Arc Kind = 'A'
)

// Parameter names, in canonical order, per command kind.
var (
	pointParams = []string{"x", "y"}
	curveParams = []string{"x1", "y1", "x2", "y2", "x", "y"}
	arcParams   = []string{"rx", "ry", "xAr", "lAf", "sf", "x", "y"}
)

// Params returns the canonical parameter names of k, or nil for an unknown kind.
// The returned slice must not be modified.
func (k Kind) Params() []string {
	switch k {
	case Move, Line:
		return pointParams
	case Curve:
		return curveParams
	case Arc:
		return arcParams
	}

	return nil
}

// Arity returns the number of parameters of k.
func (k Kind) Arity() int { return len(k.Params()) }

// Valid reports whether k is one of M, L, C, A.
func (k Kind) Valid() bool { return k.Arity() > 0 }

// String returns the command letter.
func (k Kind) String() string { return string(rune(k)) }

// kindOf maps an upper- or lower-case letter to its Kind.
func kindOf(letter byte) (k Kind, relative bool, ok bool) {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
		relative = true
	}
	k = Kind(letter)

	return k, relative, k.Valid()
}

// Command is one path instruction. Params always holds exactly Kind.Arity()
// values in canonical order.
type Command struct {
	Kind     Kind
	Relative bool
	Params   []float64

	// Data is the provenance of the point this command draws to, if any.
	Data *segment.Data
}

// Letter returns the command letter, lower-case when relative.
func (c Command) Letter() byte {
	if c.Relative {
		return byte(c.Kind) + ('a' - 'A')
	}

	return byte(c.Kind)
}

// index returns the position of name in the parameter layout, or -1.
func (c Command) index(name string) int {
	for i, n := range c.Kind.Params() {
		if n == name {
			return i
		}
	}

	return -1
}

// Param returns the named parameter and whether the command has it.
func (c Command) Param(name string) (float64, bool) {
	i := c.index(name)
	if i < 0 || i >= len(c.Params) {
		return 0, false
	}

	return c.Params[i], true
}

// SetParam updates the named parameter; it reports false when the command has
// no such parameter.
func (c *Command) SetParam(name string, v float64) bool {
	i := c.index(name)
	if i < 0 || i >= len(c.Params) {
		return false
	}
	c.Params[i] = v

	return true
}

// End returns the end point (x, y) every command kind carries last.
func (c Command) End() (x, y float64) {
	n := len(c.Params)
	if n < 2 {
		return 0, 0
	}

	return c.Params[n-2], c.Params[n-1]
}

// clone returns a deep copy of c.
func (c Command) clone() Command {
	out := c
	out.Params = append([]float64(nil), c.Params...)
	if c.Data != nil {
		d := *c.Data
		out.Data = &d
	}

	return out
}

// CmdOption customises a single inserted command.
type CmdOption func(*Command)

// Relative marks the command as relative (rendered lower-case).
func Relative() CmdOption {
	return func(c *Command) { c.Relative = true }
}

// WithData attaches point provenance to the command.
func WithData(d segment.Data) CmdOption {
	return func(c *Command) { c.Data = &d }
}
