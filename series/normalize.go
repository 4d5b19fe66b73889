// SPDX-License-Identifier: MIT
// Package: lvplot/series
//
// normalize.go — recursive resolution of Datum trees into Values.

package series

import (
	"math"
	"strconv"
	"strings"
)

// Normalize converts raw chart input into its uniform representation.
//
// Algorithm:
//  1. Every top-level series is resolved: a Series or List becomes a nested
//     series with one Value per element; anything else becomes a single-value
//     series (pie-style input).
//  2. Each element is resolved recursively through Wrapped layers down to a
//     primitive or Point, see resolve.
//  3. The label count is the larger of len(data.Labels) and the longest
//     series when every series is nested, otherwise of len(data.Labels) and
//     the number of series. Labels are padded with "" and nested series
//     with holes up to that count, so every series lines up with the labels.
//  4. With WithReverse, everything is reversed once, after padding.
//
// The input is never modified; the result shares no memory with it.
// Complexity: O(total number of datums).
func Normalize(data Data, opts ...Option) Normalized {
	o := gatherOptions(opts)

	out := Normalized{Series: make([]NormalizedSeries, len(data.Series))}
	allNested := true
	labelCount := len(data.Labels)
	for i, d := range data.Series {
		s := normalizeSeries(d, o.multi)
		out.Series[i] = s
		if !s.Nested {
			allNested = false
		}
		labelCount = max(labelCount, len(s.Values))
	}
	if !allNested {
		labelCount = max(len(data.Labels), len(out.Series))
	}

	out.Labels = make([]string, len(data.Labels), labelCount)
	copy(out.Labels, data.Labels)
	for len(out.Labels) < labelCount {
		out.Labels = append(out.Labels, "")
	}
	if allNested {
		for i := range out.Series {
			for len(out.Series[i].Values) < labelCount {
				out.Series[i].Values = append(out.Series[i].Values, Hole())
			}
		}
	}

	if o.reverse {
		out.Reverse()
	}

	return out
}

// Reverse reverses labels, the order of series and the values of every
// nested series in place.
func (n *Normalized) Reverse() {
	reverse(n.Labels)
	reverse(n.Series)
	for i := range n.Series {
		if n.Series[i].Nested {
			reverse(n.Series[i].Values)
		}
	}
}

// normalizeSeries resolves one top-level series.
func normalizeSeries(d Datum, multi multiMode) NormalizedSeries {
	switch v := d.(type) {
	case Series:
		s := NormalizedSeries{Name: v.Name, ClassName: v.ClassName, Meta: v.Meta, Nested: true}
		s.Values = resolveList(v.Data, multi)

		return s
	case List:
		return NormalizedSeries{Values: resolveList(v, multi), Nested: true}
	case Wrapped:
		// A wrapper around a whole array is still a nested series.
		if inner, ok := v.Value.(List); ok {
			return NormalizedSeries{Meta: v.Meta, Values: resolveList(inner, multi), Nested: true}
		}
	}

	return NormalizedSeries{Values: []Value{resolve(d, multi, "")}}
}

func resolveList(l List, multi multiMode) []Value {
	vs := make([]Value, len(l))
	for i, d := range l {
		vs[i] = resolve(d, multi, "")
	}

	return vs
}

// resolve unwraps d down to a single Value. Meta from the outermost wrapper
// that sets one wins. Lists and Series in value position cannot be plotted as
// one point and resolve to holes.
func resolve(d Datum, multi multiMode, meta string) Value {
	switch v := d.(type) {
	case Wrapped:
		if meta == "" {
			meta = v.Meta
		}

		return resolve(v.Value, multi, meta)
	case Point:
		if meta == "" {
			meta = v.Meta
		}
		if multi == multiOff {
			return Hole().WithMeta(meta)
		}
		var out Value
		out.x, out.hasX = number(v.X)
		out.y, out.hasY = number(v.Y)

		return out.WithMeta(meta)
	case List, Series:
		return Hole().WithMeta(meta)
	}

	n, ok := number(d)
	if !ok {
		return Hole().WithMeta(meta)
	}
	switch multi {
	case multiY:
		return OnlyY(n).WithMeta(meta)
	case multiX:
		return OnlyX(n).WithMeta(meta)
	default:
		return Num(n).WithMeta(meta)
	}
}

// number converts a primitive Datum to a finite float64. Wrapped values are
// unwrapped so Point components may themselves be wrapped.
func number(d Datum) (float64, bool) {
	var f float64
	switch v := d.(type) {
	case nil, Null:
		return 0, false
	case Number:
		f = float64(v)
	case Text:
		s := strings.TrimSpace(string(v))
		if s == "" {
			return 0, false
		}
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = p
	case Bool:
		if v {
			f = 1
		}
	case Time:
		if v.IsZero() {
			return 0, false
		}
		f = float64(v.UnixMilli())
	case Wrapped:
		return number(v.Value)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

func reverse[T any](s []T) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
