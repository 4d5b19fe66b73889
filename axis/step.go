// SPDX-License-Identifier: MIT
// Package: lvplot/axis
//
// step.go — categorical axis with one slot per label.

package axis

import (
	"fmt"

	"github.com/katalvlaran/lvplot/series"
)

// Step is a categorical axis with one evenly spaced slot per label.
type Step struct {
	base
	labels     []string
	stepLength float64
}

// NewStep spreads labels over the axis.
//
// The step length is Length / max(1, n) for n labels, or
// Length / max(1, n-1) with WithStretch(true), which puts the last label on
// the far edge. Value i projects to i × step length whatever its value.
//
// Errors:
//   - ErrNoTicks — labels is empty.
//
// Complexity: O(n).
func NewStep(u Units, labels []string, rect ChartRect, opts ...Option) (*Step, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("NewStep(%s): %w", u, ErrNoTicks)
	}
	o := gatherOptions(opts)

	s := &Step{base: newBase(u, rect), labels: append([]string(nil), labels...)}
	slots := len(labels)
	if o.stretch {
		slots--
	}
	s.stepLength = s.length / float64(max(1, slots))

	return s, nil
}

// Labels returns a copy of the labels.
func (s *Step) Labels() []string { return append([]string(nil), s.labels...) }

// StepLength returns the distance between two slots in pixels.
func (s *Step) StepLength() float64 { return s.stepLength }

// ProjectValue returns the offset of slot index; v is ignored.
func (s *Step) ProjectValue(_ series.Value, index int) float64 {
	return s.stepLength * float64(index)
}

// TickPositions returns the offset of every slot.
func (s *Step) TickPositions() []float64 {
	out := make([]float64, len(s.labels))
	for i := range out {
		out[i] = s.stepLength * float64(i)
	}

	return out
}
