// SPDX-License-Identifier: MIT
// Package: lvplot/svgpath
//
// parse.go — path mini-language reader, the inverse of Stringify.

package svgpath

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// Parse reads path data into a new Path.
func Parse(s string, opts ...Option) (*Path, error) {
	p := New(false, opts...)
	if err := p.Parse(s); err != nil {
		return nil, err
	}

	return p, nil
}

// Parse reads path data and inserts its commands at the cursor, advancing it.
// A trailing Z sets Close instead of producing a command.
//
// Accepted input: M/L/C/A in either case, parameters separated by whitespace
// and/or commas, and repeated parameter sets after one letter (a repeated M
// continues as L, as in SVG). Anything else fails with ErrUnknownCommand or
// ErrBadParams and leaves the path unchanged.
//
// Complexity: O(len(s)).
func (p *Path) Parse(s string) error {
	cmds, closed, err := parseCommands([]byte(s))
	if err != nil {
		return fmt.Errorf("Parse: %w", err)
	}
	p.insert(cmds...)
	if closed {
		p.Close = true
	}

	return nil
}

func parseCommands(b []byte) ([]Command, bool, error) {
	var cmds []Command
	i := skipSeparators(b, 0)
	for i < len(b) {
		ch := b[i]
		if ch == 'Z' || ch == 'z' {
			if j := skipSeparators(b, i+1); j < len(b) {
				return nil, false, fmt.Errorf("%w: close at offset %d must terminate the path", ErrUnknownCommand, i)
			}

			return cmds, true, nil
		}
		if isNumberStart(ch) {
			return nil, false, fmt.Errorf("%w: expected a command letter at offset %d", ErrBadParams, i)
		}
		k, rel, ok := kindOf(ch)
		if !ok {
			return nil, false, fmt.Errorf("%w: %q at offset %d", ErrUnknownCommand, ch, i)
		}
		i = skipSeparators(b, i+1)

		for first := true; first || (i < len(b) && isNumberStart(b[i])); first = false {
			params := make([]float64, k.Arity())
			for j := range params {
				if i >= len(b) {
					return nil, false, fmt.Errorf("%w: %c needs %d numbers", ErrBadParams, ch, len(params))
				}
				v, n := strconv.ParseFloat(b[i:])
				if n == 0 {
					return nil, false, fmt.Errorf("%w: %c needs %d numbers, bad number at offset %d", ErrBadParams, ch, len(params), i)
				}
				params[j] = v
				i = skipSeparators(b, i+n)
			}
			cmds = append(cmds, Command{Kind: k, Relative: rel, Params: params})
			if k == Move {
				k = Line
			}
		}
	}

	return cmds, false, nil
}

func skipSeparators(b []byte, i int) int {
	for i < len(b) {
		switch b[i] {
		case ' ', ',', '\t', '\n', '\r', '\f':
			i++
		default:
			return i
		}
	}

	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}
