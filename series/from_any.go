// SPDX-License-Identifier: MIT
// Package: lvplot/series
//
// from_any.go — decoded JSON/YAML trees → Datum.

package series

import (
	"encoding/json"
	"fmt"
	"time"
)

// FromAny converts a decoded JSON or YAML value into a Datum tree.
//
// Mapping:
//   - nil → Null; numbers → Number; string → Text; bool → Bool; time.Time → Time
//   - []any → List
//   - map with "value" → Wrapped (meta from "meta")
//   - map with "data"  → Series (name, className, meta)
//   - any other map    → Point from its "x" / "y" keys (meta from "meta")
//
// Values of any other type become Null.
// Complexity: O(size of the tree).
func FromAny(v any) Datum {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Datum:
		return t
	case float64:
		return Number(t)
	case float32:
		return Number(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case int32:
		return Number(t)
	case uint64:
		return Number(t)
	case uint:
		return Number(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Text(t.String())
		}

		return Number(f)
	case string:
		return Text(t)
	case bool:
		return Bool(t)
	case time.Time:
		return Time{t}
	case []any:
		l := make(List, len(t))
		for i, e := range t {
			l[i] = FromAny(e)
		}

		return l
	case []float64:
		return Numbers(t...)
	case map[string]any:
		return fromMap(t)
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = e
		}

		return fromMap(m)
	}

	return Null{}
}

func fromMap(m map[string]any) Datum {
	meta := stringOf(m["meta"])
	if v, ok := m["value"]; ok {
		return Wrapped{Value: FromAny(v), Meta: meta}
	}
	if d, ok := m["data"]; ok {
		s := Series{Name: stringOf(m["name"]), ClassName: stringOf(m["className"]), Meta: meta}
		switch inner := FromAny(d).(type) {
		case List:
			s.Data = inner
		default:
			s.Data = List{inner}
		}

		return s
	}

	p := Point{Meta: meta}
	if x, ok := m["x"]; ok {
		p.X = FromAny(x)
	}
	if y, ok := m["y"]; ok {
		p.Y = FromAny(y)
	}

	return p
}

// FromAnySlice converts a decoded series list.
func FromAnySlice(vs []any) []Datum {
	out := make([]Datum, len(vs))
	for i, v := range vs {
		out[i] = FromAny(v)
	}

	return out
}

func stringOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
