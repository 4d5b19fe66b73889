package segment_test

import (
	"testing"

	"github.com/katalvlaran/lvplot/segment"
	"github.com/katalvlaran/lvplot/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// data builds per-point Data; NaN-free helper where nil marks a hole.
func data(vs ...*float64) []segment.Data {
	out := make([]segment.Data, len(vs))
	for i, v := range vs {
		out[i] = segment.Data{ValueIndex: i}
		if v != nil {
			out[i].Value = series.Num(*v)
		}
	}

	return out
}

func f(v float64) *float64 { return &v }

// TestSplit_Empty returns no segments for empty and all-hole input.
func TestSplit_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, segment.Split(nil, nil))
	assert.Empty(t, segment.Split([]float64{}, []segment.Data{}))
	assert.Empty(t, segment.Split([]float64{1, 2, 3, 4}, data(nil, nil)))
}

// TestSplit_HolesSeparateSegments reproduces the canonical three-run scenario.
func TestSplit_HolesSeparateSegments(t *testing.T) {
	t.Parallel()

	coords := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	segs := segment.Split(coords, data(f(1), nil, nil, f(4), nil, f(6)))

	require.Len(t, segs, 3)
	assert.Equal(t, []float64{1, 2}, segs[0].Coordinates)
	assert.Equal(t, []float64{7, 8}, segs[1].Coordinates)
	assert.Equal(t, []float64{11, 12}, segs[2].Coordinates)
	assert.Equal(t, 0, segs[0].Data[0].ValueIndex)
	assert.Equal(t, 3, segs[1].Data[0].ValueIndex)
	assert.Equal(t, 5, segs[2].Data[0].ValueIndex)
	for _, s := range segs {
		assert.Equal(t, 1, s.Len())
	}
}

// TestSplit_SingleHole yields exactly two segments around one interior hole.
func TestSplit_SingleHole(t *testing.T) {
	t.Parallel()

	coords := []float64{0, 0, 1, 1, 2, 2, 3, 3, 4, 4}
	segs := segment.Split(coords, data(f(0), f(1), nil, f(3), f(4)))

	require.Len(t, segs, 2)
	assert.Equal(t, []float64{0, 0, 1, 1}, segs[0].Coordinates)
	assert.Equal(t, []float64{3, 3, 4, 4}, segs[1].Coordinates)
}

// TestSplit_FillHoles collapses every valid point into one segment in order.
func TestSplit_FillHoles(t *testing.T) {
	t.Parallel()

	coords := []float64{0, 0, 1, 1, 2, 2, 3, 3, 4, 4}
	segs := segment.Split(coords, data(nil, f(1), nil, f(3), f(4)), segment.WithFillHoles(true))

	require.Len(t, segs, 1)
	assert.Equal(t, []float64{1, 1, 3, 3, 4, 4}, segs[0].Coordinates)
	idx := []int{}
	for _, d := range segs[0].Data {
		idx = append(idx, d.ValueIndex)
	}
	assert.Equal(t, []int{1, 3, 4}, idx)
}

// TestSplit_IncreasingX forces a new segment on every x decrease.
func TestSplit_IncreasingX(t *testing.T) {
	t.Parallel()

	coords := []float64{0, 0, 2, 1, 1, 2, 3, 3, 3, 4}
	d := data(f(0), f(1), f(2), f(3), f(4))

	assert.Len(t, segment.Split(coords, d), 1, "without the option x order is irrelevant")

	segs := segment.Split(coords, d, segment.WithIncreasingX(true))
	require.Len(t, segs, 3)
	assert.Equal(t, []float64{0, 0, 2, 1}, segs[0].Coordinates)
	assert.Equal(t, []float64{1, 2, 3, 3}, segs[1].Coordinates)
	assert.Equal(t, []float64{3, 4}, segs[2].Coordinates, "equal x also splits")
}

// TestSplit_IgnoresUnpairedTail drops coordinates without data and vice versa.
func TestSplit_IgnoresUnpairedTail(t *testing.T) {
	t.Parallel()

	segs := segment.Split([]float64{1, 1, 2, 2, 3}, data(f(1), f(2), f(3)))
	require.Len(t, segs, 1)
	assert.Equal(t, 2, segs[0].Len())
}

// TestSplit_MissingY splits on pairs that carry only an x component.
func TestSplit_MissingY(t *testing.T) {
	t.Parallel()

	coords := []float64{0, 0, 1, 1, 2, 2, 3, 3}
	d := []segment.Data{
		{Value: series.XY(0, 0), ValueIndex: 0},
		{Value: series.XY(1, 1), ValueIndex: 1},
		{Value: series.OnlyX(2), ValueIndex: 2},
		{Value: series.OnlyY(3), ValueIndex: 3},
	}

	segs := segment.Split(coords, d)
	require.Len(t, segs, 2)
	assert.Equal(t, []float64{0, 0, 1, 1}, segs[0].Coordinates)
	assert.Equal(t, []float64{3, 3}, segs[1].Coordinates)

	filled := segment.Split(coords, d, segment.WithFillHoles(true))
	require.Len(t, filled, 1)
	assert.Equal(t, 3, filled[0].Len())
}
