// SPDX-License-Identifier: MIT
// Package: lvplot/config
//
// document.go — the document schema and its decoders.

package config

import (
	"bytes"
	"fmt"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'lvplot'.
func tracer() tracing.Trace {
	return tracing.Select("lvplot")
}

// Document is a chart: labels, raw series and options.
type Document struct {
	Labels  []string `yaml:"labels"`
	Series  []any    `yaml:"series"`
	Options Options  `yaml:"options"`
}

// Options mirrors plot.Options in document form. Pointer fields
// distinguish "absent" from zero.
type Options struct {
	Width        float64  `yaml:"width"`
	Height       float64  `yaml:"height"`
	ChartPadding *Padding `yaml:"chartPadding"`

	ReverseData bool     `yaml:"reverseData"`
	FullWidth   bool     `yaml:"fullWidth"`
	ShowLine    *bool    `yaml:"showLine"`
	ShowArea    bool     `yaml:"showArea"`
	AreaBase    float64  `yaml:"areaBase"`
	Accuracy    *int     `yaml:"accuracy"`
	LineSmooth  *Smooth  `yaml:"lineSmooth"`
	High        *float64 `yaml:"high"`
	Low         *float64 `yaml:"low"`

	AxisX Axis `yaml:"axisX"`
	AxisY Axis `yaml:"axisY"`

	// Series overrides the style of series by name.
	Series map[string]SeriesStyle `yaml:"series"`
}

// Padding is the chart padding; missing sides keep their defaults.
// A single number sets all four sides.
type Padding struct {
	Top    *float64 `yaml:"top"`
	Right  *float64 `yaml:"right"`
	Bottom *float64 `yaml:"bottom"`
	Left   *float64 `yaml:"left"`
}

// Smooth selects and configures the line interpolation. In a document it
// is a bool (true = monotone, false = none), a strategy name, or a mapping.
type Smooth struct {
	Type      string   `yaml:"type"`
	FillHoles bool     `yaml:"fillHoles"`
	Divisor   *float64 `yaml:"divisor"`
	Tension   *float64 `yaml:"tension"`
	Postpone  *bool    `yaml:"postpone"`
}

// Axis configures one axis.
type Axis struct {
	Type           string    `yaml:"type"`
	Offset         *float64  `yaml:"offset"`
	Position       string    `yaml:"position"`
	ScaleMinSpace  *float64  `yaml:"scaleMinSpace"`
	OnlyInteger    bool      `yaml:"onlyInteger"`
	High           *float64  `yaml:"high"`
	Low            *float64  `yaml:"low"`
	ReferenceValue *float64  `yaml:"referenceValue"`
	Divisor        *int      `yaml:"divisor"`
	Ticks          []float64 `yaml:"ticks"`
}

// SeriesStyle overrides the style of one series.
type SeriesStyle struct {
	LineSmooth *Smooth  `yaml:"lineSmooth"`
	ShowLine   *bool    `yaml:"showLine"`
	ShowArea   *bool    `yaml:"showArea"`
	AreaBase   *float64 `yaml:"areaBase"`
}

// Load decodes a document from YAML or JSON bytes.
func Load(b []byte) (Document, error) {
	doc, err := Decode(bytes.NewReader(b))
	if err != nil {
		return Document{}, fmt.Errorf("Load: %w", err)
	}

	return doc, nil
}

// Decode reads one YAML or JSON document from r. Unknown keys are errors.
//
// Errors: ErrDecode (wrapping the decoder error).
func Decode(r io.Reader) (Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("Decode: %w: %w", ErrDecode, err)
	}
	tracer().Debugf("config: decoded %d labels, %d series", len(doc.Labels), len(doc.Series))

	return doc, nil
}

// UnmarshalYAML accepts a single number for all sides, or a mapping.
func (p *Padding) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		var v float64
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("line %d: chartPadding: %w", n.Line, err)
		}
		*p = Padding{Top: &v, Right: &v, Bottom: &v, Left: &v}

		return nil
	}
	type plain Padding

	return n.Decode((*plain)(p))
}

// UnmarshalYAML accepts a bool, a strategy name or a mapping.
func (s *Smooth) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var on bool
		if n.Tag == "!!bool" && n.Decode(&on) == nil {
			*s = Smooth{Type: "none"}
			if on {
				s.Type = "monotone"
			}

			return nil
		}
		*s = Smooth{}

		return n.Decode(&s.Type)
	case yaml.MappingNode:
		type plain Smooth

		return n.Decode((*plain)(s))
	}

	return fmt.Errorf("line %d: lineSmooth must be a bool, a name or a mapping", n.Line)
}
