package axis_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvplot/axis"
	"github.com/katalvlaran/lvplot/bounds"
	"github.com/katalvlaran/lvplot/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square is a 100×100 chart area at the origin.
var square = axis.ChartRect{X1: 0, X2: 100, Y2: 0, Y1: 100}

func nums(vs ...float64) [][]series.Value {
	out := make([]series.Value, len(vs))
	for i, v := range vs {
		out[i] = series.Num(v)
	}

	return [][]series.Value{out}
}

// TestAutoScale projects through the computed bounds.
func TestAutoScale(t *testing.T) {
	t.Parallel()

	a, err := axis.NewAutoScale(axis.Y, nums(1, 4, 10, 7), square)
	require.NoError(t, err)

	min, max := a.Range()
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 10.0, max)
	assert.Equal(t, []float64{1, 3, 5, 7, 9}, a.Ticks())
	assert.Equal(t, 2.0, a.Bounds().Step)
	assert.Equal(t, 100.0, a.Length())
	assert.Equal(t, 0.0, a.GridOffset())

	assert.InDelta(t, 100, a.ProjectValue(series.Num(10), 0), 1e-9)
	assert.InDelta(t, 50, a.ProjectValue(series.Num(5.5), 3), 1e-9)
	assert.InDelta(t, 0, a.ProjectValue(series.Num(1), 0), 1e-9)

	pos := a.TickPositions()
	require.Len(t, pos, 5)
	assert.InDelta(t, 0, pos[0], 1e-9)
	assert.InDelta(t, 200.0/9, pos[1], 1e-9)
}

// TestAutoScale_Options covers fixed ends, reference values and errors.
func TestAutoScale_Options(t *testing.T) {
	t.Parallel()

	a, err := axis.NewAutoScale(axis.Y, nums(3, 8), square, axis.WithLow(0), axis.WithHigh(10), axis.WithScaleMinSpace(10), axis.WithOnlyInteger(true))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, a.Ticks())

	a, err = axis.NewAutoScale(axis.Y, nums(3, 8), square, axis.WithReferenceValue(0), axis.WithScaleMinSpace(10))
	require.NoError(t, err)
	min, _ := a.Range()
	assert.Equal(t, 0.0, min)

	a, err = axis.NewAutoScale(axis.X, [][]series.Value{{series.XY(2, 0), series.XY(12, 0)}}, square,
		axis.WithHighLow(bounds.HighLow{High: 10, Low: 0}), axis.WithOnlyInteger(true))
	require.NoError(t, err)
	assert.InDelta(t, 20, a.ProjectValue(series.XY(2, 99), 0), 1e-9)

	_, err = axis.NewAutoScale(axis.Y, nums(1, 2), square, axis.WithScaleMinSpace(0))
	assert.True(t, errors.Is(err, bounds.ErrStepOptimization))

	_, err = axis.NewAutoScale(axis.Y, nums(1, 2), square, axis.WithHighLow(bounds.HighLow{High: 1, Low: 1}))
	assert.True(t, errors.Is(err, bounds.ErrInvalidRange))
}

// TestFixedScale covers divisor and explicit ticks.
func TestFixedScale(t *testing.T) {
	t.Parallel()

	f, err := axis.NewFixedScale(axis.Y, nums(0, 3, 8), square, axis.WithDivisor(4))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4, 6, 8}, f.Ticks())
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, f.TickPositions())
	assert.Equal(t, 25.0, f.ProjectValue(series.Num(2), 0))

	f, err = axis.NewFixedScale(axis.Y, nums(0, 3, 8), square, axis.WithTicks(5, 1, 3))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 5}, f.Ticks())
	min, max := f.Range()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 8.0, max)

	_, err = axis.NewFixedScale(axis.Y, nil, square, axis.WithHighLow(bounds.HighLow{High: 0, Low: 4}))
	assert.True(t, errors.Is(err, axis.ErrInvalidRange))
}

// TestStep covers slot spacing with and without stretch.
func TestStep(t *testing.T) {
	t.Parallel()

	labels := []string{"a", "b", "c", "d", "e"}

	s, err := axis.NewStep(axis.X, labels, square)
	require.NoError(t, err)
	assert.Equal(t, 20.0, s.StepLength())
	assert.Equal(t, 60.0, s.ProjectValue(series.Hole(), 3))
	assert.Equal(t, []float64{0, 20, 40, 60, 80}, s.TickPositions())
	assert.Equal(t, labels, s.Labels())

	s, err = axis.NewStep(axis.X, labels, square, axis.WithStretch(true))
	require.NoError(t, err)
	assert.Equal(t, 100.0, s.ProjectValue(series.Num(1), 4))

	s, err = axis.NewStep(axis.X, labels[:1], square, axis.WithStretch(true))
	require.NoError(t, err)
	assert.Equal(t, 100.0, s.StepLength())

	_, err = axis.NewStep(axis.X, nil, square)
	assert.True(t, errors.Is(err, axis.ErrNoTicks))
}

// TestOptions_Panics covers option validation.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { axis.WithDivisor(0) })
	assert.Panics(t, func() { axis.WithScaleMinSpace(-1) })
	assert.Panics(t, func() { axis.WithTicks(1, 2, 3, 0/zero()) })
}

func zero() float64 { return 0 }
