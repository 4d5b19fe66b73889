// SPDX-License-Identifier: MIT
// Package: lvplot/interpolation
//
// interpolation.go — the Func signature, strategy selection and the shared
// split-render-join driver.

package interpolation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvplot/segment"
	"github.com/katalvlaran/lvplot/svgpath"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lvplot'.
func tracer() tracing.Trace {
	return tracing.Select("lvplot")
}

// Func renders flat x,y pairs and their per-point data as a path.
type Func func(coords []float64, data []segment.Data) *svgpath.Path

// Kind names a strategy.
type Kind int

const (
	// KindNone selects None.
	KindNone Kind = iota
	// KindSimple selects Simple.
	KindSimple
	// KindCardinal selects Cardinal.
	KindCardinal
	// KindMonotone selects MonotoneCubic.
	KindMonotone
	// KindStep selects Step.
	KindStep
)

var kindNames = [...]string{"none", "simple", "cardinal", "monotone", "step"}

// String returns the configuration name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind maps a configuration name to its Kind. Matching ignores case;
// "monotoneCubic" and "monotone-cubic" are accepted for KindMonotone.
func ParseKind(name string) (Kind, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "monotonecubic", "monotone-cubic":
		return KindMonotone, nil
	default:
		for i, s := range kindNames {
			if s == n {
				return Kind(i), nil
			}
		}
	}

	return KindNone, fmt.Errorf("ParseKind: %q: %w", name, ErrUnknownKind)
}

// New returns the strategy for kind configured by opts.
func New(kind Kind, opts ...Option) (Func, error) {
	switch kind {
	case KindNone:
		return None(opts...), nil
	case KindSimple:
		return Simple(opts...), nil
	case KindCardinal:
		return Cardinal(opts...), nil
	case KindMonotone:
		return MonotoneCubic(opts...), nil
	case KindStep:
		return Step(opts...), nil
	}

	return nil, fmt.Errorf("New: %v: %w", kind, ErrUnknownKind)
}

// render splits the input into segments, renders each one with fn and
// joins the results. No segments yield an empty path.
func render(name string, coords []float64, data []segment.Data, o options, increasingX bool,
	fn func(seg segment.Segment) *svgpath.Path) *svgpath.Path {
	segs := segment.Split(coords, data,
		segment.WithFillHoles(o.fillHoles),
		segment.WithIncreasingX(increasingX))
	tracer().Debugf("interpolation: %s over %d points in %d segments", name, len(data), len(segs))

	switch len(segs) {
	case 0:
		return svgpath.New(false, o.pathOpts...)
	case 1:
		return fn(segs[0])
	}
	paths := make([]*svgpath.Path, len(segs))
	for i, s := range segs {
		paths[i] = fn(s)
	}

	return svgpath.Join(paths, false, o.pathOpts...)
}

// straight renders seg as a polyline: M to the first point, L to the rest.
func straight(seg segment.Segment, o options) *svgpath.Path {
	p := svgpath.New(false, o.pathOpts...)
	for i, d := range seg.Data {
		x, y := seg.Coordinates[2*i], seg.Coordinates[2*i+1]
		if i == 0 {
			p.Move(x, y, svgpath.WithData(d))
		} else {
			p.Line(x, y, svgpath.WithData(d))
		}
	}

	return p
}
