// Package svgpath is an abstract model of vector path data restricted to
// the commands charts need: move (M), line (L), cubic curve (C) and
// elliptical arc (A), plus a close flag rendered as a trailing Z.
//
// A Path owns an ordered list of Commands and a cursor. Builder methods
// (Move, Line, Curve, Arc, Parse) insert at the cursor and advance it, so a
// path can be edited in the middle:
//
//	p := svgpath.New(false).
//		Move(0, 0).
//		Line(10, 0).
//		SetPosition(1).
//		Line(5, 5) // inserted between the move and the first line
//
//	p.String() // "M0,0L5,5L10,0"
//
// Each Command may carry the segment.Data of the point it represents, so
// consumers of an interpolated path can trace every element back to its
// source datum.
//
// Stringify renders commands in canonical parameter order with values
// rounded to the configured accuracy (default 3 decimal digits). Output is
// byte-for-byte stable for a fixed input and accuracy, and Parse is its
// inverse.
//
// Parameter layout per command:
//
//	M, L  x, y
//	C     x1, y1, x2, y2, x, y
//	A     rx, ry, xAr, lAf, sf, x, y
//
// Paths are not safe for concurrent mutation; each one is owned by a
// single builder at a time. Clone, SplitByCommand and Join always produce
// fully independent copies.
package svgpath
