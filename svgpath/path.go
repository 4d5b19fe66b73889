// SPDX-License-Identifier: MIT
// Package: lvplot/svgpath
//
// path.go — the cursor-addressable command list and its operations.

package svgpath

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvplot/numeric"
)

// Path is an ordered, mutable list of Commands with an insertion cursor.
// The zero value is not ready for use; call New.
type Path struct {
	commands []Command
	pos      int
	opts     options

	// Close renders a trailing Z when set.
	Close bool
}

// New returns an empty Path with the cursor at 0.
func New(close bool, opts ...Option) *Path {
	return &Path{Close: close, opts: gatherOptions(opts)}
}

// Len returns the number of commands.
func (p *Path) Len() int { return len(p.commands) }

// Accuracy returns the rounding digits used by Stringify (NoRounding if off).
func (p *Path) Accuracy() int { return p.opts.accuracy }

// At returns a deep copy of command i. It panics if i is out of range, like
// slice indexing.
func (p *Path) At(i int) Command { return p.commands[i].clone() }

// Commands returns a deep copy of all commands.
func (p *Path) Commands() []Command {
	out := make([]Command, len(p.commands))
	for i, c := range p.commands {
		out[i] = c.clone()
	}

	return out
}

// Position returns the cursor.
func (p *Path) Position() int { return p.pos }

// SetPosition moves the cursor, clamped to [0, Len()].
func (p *Path) SetPosition(pos int) *Path {
	p.pos = max(0, min(len(p.commands), pos))

	return p
}

// Remove deletes up to count commands starting at the cursor. The cursor
// itself does not move.
func (p *Path) Remove(count int) *Path {
	if count <= 0 || p.pos >= len(p.commands) {
		return p
	}
	end := min(len(p.commands), p.pos+count)
	p.commands = append(p.commands[:p.pos], p.commands[end:]...)

	return p
}

// insert places cmds at the cursor and advances it past them.
func (p *Path) insert(cmds ...Command) {
	p.commands = append(p.commands[:p.pos], append(cmds, p.commands[p.pos:]...)...)
	p.pos += len(cmds)
}

func (p *Path) element(k Kind, params []float64, opts []CmdOption) *Path {
	c := Command{Kind: k, Params: params}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	p.insert(c)

	return p
}

// Move inserts an M command at the cursor.
func (p *Path) Move(x, y float64, opts ...CmdOption) *Path {
	return p.element(Move, []float64{x, y}, opts)
}

// Line inserts an L command at the cursor.
func (p *Path) Line(x, y float64, opts ...CmdOption) *Path {
	return p.element(Line, []float64{x, y}, opts)
}

// Curve inserts a C command at the cursor.
func (p *Path) Curve(x1, y1, x2, y2, x, y float64, opts ...CmdOption) *Path {
	return p.element(Curve, []float64{x1, y1, x2, y2, x, y}, opts)
}

// Arc inserts an A command at the cursor. xAr is the x-axis rotation in
// degrees, lAf and sf the large-arc and sweep flags (0 or 1).
func (p *Path) Arc(rx, ry, xAr, lAf, sf, x, y float64, opts ...CmdOption) *Path {
	return p.element(Arc, []float64{rx, ry, xAr, lAf, sf, x, y}, opts)
}

// Stringify renders the path in the path mini-language: each command's
// letter followed by its comma-separated parameters, commands concatenated,
// and a trailing Z when Close is set.
//
// Complexity: O(total parameters).
func (p *Path) Stringify() string {
	var b strings.Builder
	mult := 0.0
	if p.opts.accuracy != NoRounding {
		mult = math.Pow(10, float64(p.opts.accuracy))
	}
	for _, c := range p.commands {
		b.WriteByte(c.Letter())
		for i, v := range c.Params {
			if i > 0 {
				b.WriteByte(',')
			}
			if mult != 0 {
				v = numeric.RoundHalfUp(v*mult) / mult
			}
			b.WriteString(formatNumber(v))
		}
	}
	if p.Close {
		b.WriteByte('Z')
	}

	return b.String()
}

// String implements fmt.Stringer via Stringify.
func (p *Path) String() string { return p.Stringify() }

// formatNumber prints the shortest decimal representation of v; -0 prints as 0.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Transformer is called for every parameter of every command. Returning
// ok == true replaces the parameter with v.
type Transformer func(c *Command, param string, cmdIndex, paramIndex int) (v float64, ok bool)

// Transform visits every parameter in command order, then parameter order.
func (p *Path) Transform(fn Transformer) *Path {
	for ci := range p.commands {
		c := &p.commands[ci]
		for pi, name := range c.Kind.Params() {
			if pi >= len(c.Params) {
				break
			}
			if v, ok := fn(c, name, ci, pi); ok {
				c.Params[pi] = v
			}
		}
	}

	return p
}

// axisOf returns 'x' or 'y' for parameters named x* or y* (x, x1, x2, xAr,
// y, y1, y2) and 0 for every other parameter (rx, ry, lAf, sf).
func axisOf(name string) byte {
	if name == "" {
		return 0
	}
	switch name[0] {
	case 'x', 'y':
		return name[0]
	}

	return 0
}

// Scale multiplies every x*-named parameter by sx and every y*-named
// parameter by sy. Arc radii and flags are left alone.
func (p *Path) Scale(sx, sy float64) *Path {
	return p.Transform(func(c *Command, name string, _, pi int) (float64, bool) {
		switch axisOf(name) {
		case 'x':
			return c.Params[pi] * sx, true
		case 'y':
			return c.Params[pi] * sy, true
		}

		return 0, false
	})
}

// Translate adds tx to every x*-named parameter and ty to every y*-named
// parameter.
func (p *Path) Translate(tx, ty float64) *Path {
	return p.Transform(func(c *Command, name string, _, pi int) (float64, bool) {
		switch axisOf(name) {
		case 'x':
			return c.Params[pi] + tx, true
		case 'y':
			return c.Params[pi] + ty, true
		}

		return 0, false
	})
}

// Clone returns an independent deep copy with the same cursor, options and
// close flag.
func (p *Path) Clone() *Path {
	return p.CloneClosed(p.Close)
}

// CloneClosed is Clone with the close flag set to close || p.Close.
func (p *Path) CloneClosed(close bool) *Path {
	c := &Path{pos: p.pos, opts: p.opts, Close: close || p.Close}
	c.commands = p.Commands()

	return c
}

// SplitByCommand partitions the path into new paths, starting a new one each
// time a command of kind k occurs, except when the current part is still
// empty (so a leading k never produces an empty part). Parts inherit the
// options; their cursors sit at the end and Close is false.
//
// An empty path yields one empty part.
func (p *Path) SplitByCommand(k Kind) []*Path {
	parts := []*Path{{opts: p.opts}}
	for _, c := range p.commands {
		last := parts[len(parts)-1]
		if c.Kind == k && len(last.commands) != 0 {
			last = &Path{opts: p.opts}
			parts = append(parts, last)
		}
		last.commands = append(last.commands, c.clone())
		last.pos = len(last.commands)
	}

	return parts
}

// Join concatenates the commands of paths, in order, into a new path with the
// cursor at the end. Nil paths are skipped.
func Join(paths []*Path, close bool, opts ...Option) *Path {
	out := New(close, opts...)
	for _, p := range paths {
		if p == nil {
			continue
		}
		for _, c := range p.commands {
			out.commands = append(out.commands, c.clone())
		}
	}
	out.pos = len(out.commands)

	return out
}
