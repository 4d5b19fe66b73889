// SPDX-License-Identifier: MIT
// Package: lvplot/config
//
// chart.go — Document → series.Data + plot.Options.

package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvplot/axis"
	"github.com/katalvlaran/lvplot/interpolation"
	"github.com/katalvlaran/lvplot/plot"
	"github.com/katalvlaran/lvplot/series"
	"github.com/katalvlaran/lvplot/svgpath"
)

// Chart converts the document into plot.Line input. Absent options keep the
// plot.DefaultOptions values; lineSmooth defaults to monotone.
//
// Errors: ErrUnknownInterpolation, ErrUnknownAxisType, ErrInvalidOption.
func (d Document) Chart() (series.Data, plot.Options, error) {
	data := series.Data{
		Labels: append([]string(nil), d.Labels...),
		Series: series.FromAnySlice(d.Series),
	}

	o := d.Options
	po := plot.DefaultOptions()
	po.Width, po.Height = o.Width, o.Height
	po.ReverseData = o.ReverseData
	po.FullWidth = o.FullWidth
	if o.ChartPadding != nil {
		po.Padding = o.ChartPadding.resolve(po.Padding)
	}

	var pathOpts []svgpath.Option
	if o.Accuracy != nil {
		if *o.Accuracy < 0 {
			return series.Data{}, plot.Options{}, fmt.Errorf("Chart: accuracy %d: %w", *o.Accuracy, ErrInvalidOption)
		}
		pathOpts = append(pathOpts, svgpath.WithAccuracy(*o.Accuracy))
	}

	var err error
	if po.AxisX, err = o.AxisX.resolve(po.AxisX, nil, nil); err != nil {
		return series.Data{}, plot.Options{}, fmt.Errorf("Chart: axisX: %w", err)
	}
	if po.AxisY, err = o.AxisY.resolve(po.AxisY, o.High, o.Low); err != nil {
		return series.Data{}, plot.Options{}, fmt.Errorf("Chart: axisY: %w", err)
	}

	po.Style = plot.SeriesStyle{ShowLine: true, ShowArea: o.ShowArea, AreaBase: o.AreaBase}
	if o.ShowLine != nil {
		po.Style.ShowLine = *o.ShowLine
	}
	if po.Style.Interpolation, err = o.LineSmooth.build(pathOpts); err != nil {
		return series.Data{}, plot.Options{}, fmt.Errorf("Chart: lineSmooth: %w", err)
	}

	if len(o.Series) > 0 {
		po.SeriesStyles = make(map[string]plot.SeriesStyle, len(o.Series))
		for name, ss := range o.Series {
			style, err := ss.resolve(po.Style, pathOpts)
			if err != nil {
				return series.Data{}, plot.Options{}, fmt.Errorf("Chart: series %q: %w", name, err)
			}
			po.SeriesStyles[name] = style
		}
	}
	tracer().Debugf("config: chart %gx%g, axes %v/%v", po.Width, po.Height, po.AxisX.Type, po.AxisY.Type)

	return data, po, nil
}

// Geometry runs Chart and projects the result with plot.Line.
func (d Document) Geometry() (plot.Geometry, error) {
	data, opts, err := d.Chart()
	if err != nil {
		return plot.Geometry{}, err
	}

	return plot.Line(data, opts)
}

func (p Padding) resolve(def axis.Padding) axis.Padding {
	pick := func(v *float64, d float64) float64 {
		if v == nil {
			return d
		}

		return *v
	}

	return axis.Padding{
		Top:    pick(p.Top, def.Top),
		Right:  pick(p.Right, def.Right),
		Bottom: pick(p.Bottom, def.Bottom),
		Left:   pick(p.Left, def.Left),
	}
}

// build returns the interpolation s selects; nil s means monotone.
func (s *Smooth) build(pathOpts []svgpath.Option) (interpolation.Func, error) {
	sm := Smooth{Type: "monotone"}
	if s != nil {
		sm = *s
	}

	kind, err := interpolation.ParseKind(sm.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownInterpolation, err)
	}

	opts := []interpolation.Option{
		interpolation.WithFillHoles(sm.FillHoles),
		interpolation.WithPathOptions(pathOpts...),
	}
	if sm.Divisor != nil {
		if !finite(*sm.Divisor) {
			return nil, fmt.Errorf("divisor %v: %w", *sm.Divisor, ErrInvalidOption)
		}
		opts = append(opts, interpolation.WithDivisor(*sm.Divisor))
	}
	if sm.Tension != nil {
		if !finite(*sm.Tension) {
			return nil, fmt.Errorf("tension %v: %w", *sm.Tension, ErrInvalidOption)
		}
		opts = append(opts, interpolation.WithTension(*sm.Tension))
	}
	if sm.Postpone != nil {
		opts = append(opts, interpolation.WithPostpone(*sm.Postpone))
	}

	return interpolation.New(kind, opts...)
}

// resolve applies a onto def. high and low are the chart-wide overrides,
// which win over the axis' own values.
func (a Axis) resolve(def plot.AxisOptions, high, low *float64) (plot.AxisOptions, error) {
	out := def
	switch t := strings.ToLower(strings.TrimSpace(a.Type)); t {
	case "":
	case "step":
		out.Type = plot.AxisStep
	case "auto":
		out.Type = plot.AxisAuto
	case "fixed":
		out.Type = plot.AxisFixed
	default:
		return plot.AxisOptions{}, fmt.Errorf("%q: %w", a.Type, ErrUnknownAxisType)
	}

	if a.Offset != nil {
		if !finite(*a.Offset) || *a.Offset < 0 {
			return plot.AxisOptions{}, fmt.Errorf("offset %v: %w", *a.Offset, ErrInvalidOption)
		}
		out.Placement.Offset = *a.Offset
	}
	switch strings.ToLower(strings.TrimSpace(a.Position)) {
	case "":
	case "start":
		out.Placement.Position = axis.Start
	case "end":
		out.Placement.Position = axis.End
	default:
		return plot.AxisOptions{}, fmt.Errorf("position %q: %w", a.Position, ErrInvalidOption)
	}

	if high == nil {
		high = a.High
	}
	if low == nil {
		low = a.Low
	}

	var opts []axis.Option
	if a.ScaleMinSpace != nil {
		if !finite(*a.ScaleMinSpace) || *a.ScaleMinSpace < 0 {
			return plot.AxisOptions{}, fmt.Errorf("scaleMinSpace %v: %w", *a.ScaleMinSpace, ErrInvalidOption)
		}
		opts = append(opts, axis.WithScaleMinSpace(*a.ScaleMinSpace))
	}
	if a.OnlyInteger {
		opts = append(opts, axis.WithOnlyInteger(true))
	}
	if high != nil {
		opts = append(opts, axis.WithHigh(*high))
	}
	if low != nil {
		opts = append(opts, axis.WithLow(*low))
	}
	if a.ReferenceValue != nil {
		opts = append(opts, axis.WithReferenceValue(*a.ReferenceValue))
	}
	if a.Divisor != nil {
		if *a.Divisor < 1 {
			return plot.AxisOptions{}, fmt.Errorf("divisor %d: %w", *a.Divisor, ErrInvalidOption)
		}
		opts = append(opts, axis.WithDivisor(*a.Divisor))
	}
	if len(a.Ticks) > 0 {
		for _, t := range a.Ticks {
			if !finite(t) {
				return plot.AxisOptions{}, fmt.Errorf("tick %v: %w", t, ErrInvalidOption)
			}
		}
		opts = append(opts, axis.WithTicks(a.Ticks...))
	}
	out.Options = opts

	return out, nil
}

// resolve applies s onto the chart-wide style.
func (s SeriesStyle) resolve(def plot.SeriesStyle, pathOpts []svgpath.Option) (plot.SeriesStyle, error) {
	out := def
	if s.LineSmooth != nil {
		fn, err := s.LineSmooth.build(pathOpts)
		if err != nil {
			return plot.SeriesStyle{}, fmt.Errorf("lineSmooth: %w", err)
		}
		out.Interpolation = fn
	}
	if s.ShowLine != nil {
		out.ShowLine = *s.ShowLine
	}
	if s.ShowArea != nil {
		out.ShowArea = *s.ShowArea
	}
	if s.AreaBase != nil {
		out.AreaBase = *s.AreaBase
	}

	return out, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
