// SPDX-License-Identifier: MIT
// Package: lvplot/plot
//
// geometry.go — line chart projection and area construction.

package plot

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvplot/axis"
	"github.com/katalvlaran/lvplot/interpolation"
	"github.com/katalvlaran/lvplot/segment"
	"github.com/katalvlaran/lvplot/series"
	"github.com/katalvlaran/lvplot/svgpath"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lvplot'.
func tracer() tracing.Trace {
	return tracing.Select("lvplot")
}

// Point is a projected value that has a y component.
type Point struct {
	X, Y float64
	Data segment.Data
}

// SeriesGeometry is everything drawn for one series.
type SeriesGeometry struct {
	Index     int
	Name      string
	ClassName string
	Meta      string

	Points []Point

	// Line is the interpolated path, nil when the style hides it.
	Line *svgpath.Path
	// Areas holds one closed path per solid run of two or more points.
	Areas []*svgpath.Path
}

// Geometry is a fully projected line chart.
type Geometry struct {
	Rect   axis.ChartRect
	AxisX  axis.Axis
	AxisY  axis.Axis
	Labels []string
	Series []SeriesGeometry
}

// Line normalises data in multi mode (reversing it when opts.ReverseData
// is set) and computes its geometry.
func Line(data series.Data, opts Options) (Geometry, error) {
	nopts := []series.Option{series.WithMulti()}
	if opts.ReverseData {
		nopts = append(nopts, series.WithReverse())
	}

	return LineGeometry(series.Normalize(data, nopts...), opts)
}

// LineGeometry projects normalised data onto a chart of opts.Width ×
// opts.Height pixels.
//
// Errors:
//   - ErrNoSeries        — norm has no series.
//   - ErrUnknownAxisType — an AxisOptions.Type out of range.
//   - axis / bounds errors from the axis constructors (wrapped).
func LineGeometry(norm series.Normalized, opts Options) (Geometry, error) {
	if len(norm.Series) == 0 {
		return Geometry{}, fmt.Errorf("LineGeometry: %w", ErrNoSeries)
	}

	g := Geometry{Labels: append([]string(nil), norm.Labels...)}
	g.Rect = axis.CreateChartRect(axis.Layout{
		Width:   opts.Width,
		Height:  opts.Height,
		Padding: opts.Padding,
		AxisX:   opts.AxisX.Placement,
		AxisY:   opts.AxisY.Placement,
	})

	values := norm.Values()
	var err error
	if g.AxisX, err = newAxis(axis.X, opts.AxisX, AxisStep, norm.Labels, values, g.Rect, opts.FullWidth); err != nil {
		return Geometry{}, fmt.Errorf("LineGeometry: %w", err)
	}
	if g.AxisY, err = newAxis(axis.Y, opts.AxisY, AxisAuto, norm.Labels, values, g.Rect, false); err != nil {
		return Geometry{}, fmt.Errorf("LineGeometry: %w", err)
	}

	g.Series = make([]SeriesGeometry, len(norm.Series))
	for si, s := range norm.Series {
		g.Series[si] = seriesGeometry(si, s, g, opts.styleFor(s.Name))
	}
	tracer().Debugf("plot: %d series on %gx%g chart area", len(g.Series), g.Rect.Width(), g.Rect.Height())

	return g, nil
}

// newAxis builds the axis for direction u.
func newAxis(u axis.Units, ao AxisOptions, def AxisType, labels []string, values [][]series.Value,
	rect axis.ChartRect, stretch bool) (axis.Axis, error) {
	t := ao.Type
	if t == AxisDefault {
		t = def
	}
	switch t {
	case AxisStep:
		opts := append([]axis.Option{axis.WithStretch(stretch)}, ao.Options...)

		return axis.NewStep(u, labels, rect, opts...)
	case AxisAuto:
		return axis.NewAutoScale(u, values, rect, ao.Options...)
	case AxisFixed:
		return axis.NewFixedScale(u, values, rect, ao.Options...)
	}

	return nil, fmt.Errorf("axis %s: %v: %w", u, t, ErrUnknownAxisType)
}

// seriesGeometry projects one series and derives its paths.
func seriesGeometry(si int, s series.NormalizedSeries, g Geometry, style SeriesStyle) SeriesGeometry {
	sg := SeriesGeometry{Index: si, Name: s.Name, ClassName: s.ClassName, Meta: s.Meta}

	coords := make([]float64, 0, 2*len(s.Values))
	data := make([]segment.Data, 0, len(s.Values))
	for vi, v := range s.Values {
		x := g.Rect.X1 + g.AxisX.ProjectValue(v, vi)
		y := g.Rect.Y1 - g.AxisY.ProjectValue(v, vi)
		d := segment.Data{Value: v, ValueIndex: vi, Meta: v.Meta}
		coords = append(coords, x, y)
		data = append(data, d)
		if v.HasValue() {
			sg.Points = append(sg.Points, Point{X: x, Y: y, Data: d})
		}
	}

	smooth := style.Interpolation
	if smooth == nil {
		smooth = interpolation.MonotoneCubic()
	}
	path := smooth(coords, data)
	if style.ShowLine {
		sg.Line = path
	}

	if scale, ok := g.AxisY.(axis.Scale); ok && style.ShowArea {
		lo, hi := scale.Range()
		base := math.Max(math.Min(style.AreaBase, hi), lo)
		sg.Areas = areas(path, g.Rect.Y1-scale.ProjectValue(series.Num(base), 0))
	}

	return sg
}

// areas closes every solid run of path against the horizontal line y = baseY.
func areas(path *svgpath.Path, baseY float64) []*svgpath.Path {
	var out []*svgpath.Path
	for _, run := range path.SplitByCommand(svgpath.Move) {
		n := run.Len()
		if n <= 1 {
			continue
		}
		firstX, firstY := run.At(0).End()
		lastX, _ := run.At(n - 1).End()

		area := run.CloneClosed(true).
			SetPosition(0).
			Remove(1).
			Move(firstX, baseY).
			Line(firstX, firstY).
			SetPosition(n + 1).
			Line(lastX, baseY)
		out = append(out, area)
	}

	return out
}
