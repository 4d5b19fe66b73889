package series_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/lvplot/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalize_InputShapesAgree checks that flat numbers, value wrappers and
// series wrappers all normalise to the same numbers.
func TestNormalize_InputShapesAgree(t *testing.T) {
	t.Parallel()

	flat := series.Data{Series: []series.Datum{series.Numbers(1, 2, 3)}}
	wrapped := series.Data{Series: []series.Datum{series.List{
		series.Wrapped{Value: series.Number(1)},
		series.Wrapped{Value: series.Number(2)},
		series.Wrapped{Value: series.Number(3)},
	}}}
	seriesObj := series.Data{Series: []series.Datum{series.Series{Name: "a", Data: series.Numbers(1, 2, 3)}}}

	want := []series.Value{series.Num(1), series.Num(2), series.Num(3)}
	for name, d := range map[string]series.Data{"flat": flat, "wrapped": wrapped, "series": seriesObj} {
		n := series.Normalize(d)
		require.Lenf(t, n.Series, 1, "%s: one series", name)
		assert.Equalf(t, want, n.Series[0].Values, "%s: values", name)
		assert.Truef(t, n.Series[0].Nested, "%s: nested", name)
		assert.Equalf(t, []string{"", "", ""}, n.Labels, "%s: labels padded", name)
	}
}

// TestNormalize_Primitives covers numeric strings, booleans, times and holes.
func TestNormalize_Primitives(t *testing.T) {
	t.Parallel()

	ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	d := series.Data{Series: []series.Datum{series.List{
		series.Text(" 12.5 "),
		series.Bool(true),
		series.Bool(false),
		series.Time{Time: ts},
		series.Null{},
		series.Number(math.NaN()),
		series.Number(math.Inf(1)),
		series.Text("abc"),
		nil,
	}}}

	vs := series.Normalize(d).Series[0].Values
	require.Len(t, vs, 9)

	n, ok := vs[0].Scalar()
	assert.True(t, ok)
	assert.Equal(t, 12.5, n)
	assert.Equal(t, series.Num(1), vs[1])
	assert.Equal(t, series.Num(0), vs[2])
	assert.Equal(t, series.Num(float64(ts.UnixMilli())), vs[3])
	for i := 4; i < 9; i++ {
		assert.Truef(t, vs[i].IsHole(), "value %d must be a hole", i)
	}
}

// TestNormalize_Multi covers (x, y) pairs, partial pairs and hole collapse.
func TestNormalize_Multi(t *testing.T) {
	t.Parallel()

	d := series.Data{Series: []series.Datum{series.List{
		series.Point{X: series.Number(1), Y: series.Number(2)},
		series.Point{X: series.Number(3)},
		series.Point{X: series.Null{}, Y: series.Null{}},
		series.Number(7),
		series.Wrapped{Value: series.Point{X: series.Number(4), Y: series.Text("5")}, Meta: "m"},
	}}}

	vs := series.Normalize(d, series.WithMulti()).Series[0].Values
	require.Len(t, vs, 5)
	assert.Equal(t, series.XY(1, 2), vs[0])
	assert.Equal(t, series.OnlyX(3), vs[1])
	assert.True(t, vs[2].IsHole(), "both components missing is a hole")
	assert.Equal(t, series.OnlyY(7), vs[3])
	assert.Equal(t, series.XY(4, 5).WithMeta("m"), vs[4])

	// Primitives fill x for horizontal layouts.
	hx := series.Normalize(series.Data{Series: []series.Datum{series.Numbers(9)}}, series.WithMultiDim(series.DimX))
	assert.Equal(t, series.OnlyX(9), hx.Series[0].Values[0])

	// Without multi mode a point is not a plottable primitive.
	plain := series.Normalize(series.Data{Series: []series.Datum{series.List{series.Point{X: series.Number(1), Y: series.Number(2)}}}})
	assert.True(t, plain.Series[0].Values[0].IsHole())
}

// TestNormalize_LabelPadding pads to the longest nested series, or to the
// series count for single-value (pie) input.
func TestNormalize_LabelPadding(t *testing.T) {
	t.Parallel()

	n := series.Normalize(series.Data{
		Labels: []string{"a"},
		Series: []series.Datum{series.Numbers(1, 2), series.Numbers(1, 2, 3, 4)},
	})
	assert.Equal(t, []string{"a", "", "", ""}, n.Labels)
	for _, s := range n.Series {
		assert.Len(t, s.Values, 4)
	}

	pie := series.Normalize(series.Data{Series: []series.Datum{series.Number(5), series.Number(3), series.Wrapped{Value: series.Number(2), Meta: "x"}}})
	assert.Equal(t, []string{"", "", ""}, pie.Labels)
	require.Len(t, pie.Series, 3)
	assert.False(t, pie.Series[0].Nested)
	assert.Equal(t, "x", pie.Meta(2, 0))

	long := series.Normalize(series.Data{Labels: []string{"a", "b", "c"}, Series: []series.Datum{series.Numbers(1)}})
	assert.Equal(t, []string{"a", "b", "c"}, long.Labels, "labels are never truncated")
	assert.Equal(t, []series.Value{series.Num(1), series.Hole(), series.Hole()}, long.Series[0].Values)
}

// TestNormalize_PadsSeries pads every nested series with holes up to the
// label count, before any reversal.
func TestNormalize_PadsSeries(t *testing.T) {
	t.Parallel()

	uneven := series.Data{
		Labels: []string{"a", "b", "c", "d"},
		Series: []series.Datum{series.Numbers(1, 2, 3), series.Numbers(1)},
	}

	tests := []struct {
		name       string
		opts       []series.Option
		wantLabels []string
		want       [][]series.Value
	}{
		{"plain", nil, []string{"a", "b", "c", "d"}, [][]series.Value{
			{series.Num(1), series.Num(2), series.Num(3), series.Hole()},
			{series.Num(1), series.Hole(), series.Hole(), series.Hole()},
		}},
		{"reversed", []series.Option{series.WithReverse()}, []string{"d", "c", "b", "a"}, [][]series.Value{
			{series.Hole(), series.Hole(), series.Hole(), series.Num(1)},
			{series.Hole(), series.Num(3), series.Num(2), series.Num(1)},
		}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			n := series.Normalize(uneven, tc.opts...)
			assert.Equal(t, tc.wantLabels, n.Labels)
			assert.Equal(t, tc.want, n.Values())
		})
	}

	// A value keeps its label through reversal.
	short := series.Normalize(series.Data{
		Labels: []string{"a", "b", "c"},
		Series: []series.Datum{series.Numbers(1, 2, 3), series.Numbers(9)},
	}, series.WithReverse())
	require.Len(t, short.Series[0].Values, 3)
	assert.Equal(t, "a", short.Labels[2])
	assert.Equal(t, series.Num(9), short.Series[0].Values[2])
	assert.True(t, short.Series[0].Values[0].IsHole())
}

// TestNormalize_Reverse reverses labels, series and values once.
func TestNormalize_Reverse(t *testing.T) {
	t.Parallel()

	in := series.Data{
		Labels: []string{"a", "b", "c"},
		Series: []series.Datum{
			series.Series{Name: "first", Data: series.Numbers(1, 2, 3)},
			series.Numbers(4, 5, 6),
		},
	}
	n := series.Normalize(in, series.WithReverse())

	assert.Equal(t, []string{"c", "b", "a"}, n.Labels)
	require.Len(t, n.Series, 2)
	assert.Equal(t, []series.Value{series.Num(6), series.Num(5), series.Num(4)}, n.Series[0].Values)
	assert.Equal(t, "first", n.Series[1].Name)
	assert.Equal(t, []series.Value{series.Num(3), series.Num(2), series.Num(1)}, n.Series[1].Values)

	// The raw input is untouched.
	assert.Equal(t, []string{"a", "b", "c"}, in.Labels)
	assert.Equal(t, series.Numbers(1, 2, 3), in.Series[0].(series.Series).Data)
}

// TestNormalize_Idempotent re-normalises already-normalised numbers.
func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	first := series.Normalize(series.Data{Series: []series.Datum{series.Numbers(3, 1, 4, 1, 5)}})

	again := make(series.List, 0, 5)
	for _, v := range first.Series[0].Values {
		n, _ := v.Scalar()
		again = append(again, series.Number(n))
	}
	second := series.Normalize(series.Data{Series: []series.Datum{again}})

	assert.Equal(t, first, second)
}

// TestValue_Accessors covers Get / Multi across scalar and pair values.
func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	s := series.Num(4)
	assert.Equal(t, 4.0, s.Multi(series.DimX), "scalar answers for x")
	assert.Equal(t, 4.0, s.Multi(series.DimY), "scalar answers for y")

	p := series.OnlyX(2)
	assert.Equal(t, 2.0, p.Multi(series.DimX))
	assert.Equal(t, 0.0, p.Multi(series.DimY), "missing component reads as 0")
	_, ok := p.Get(series.DimY)
	assert.False(t, ok)

	assert.False(t, p.HasValue(), "an x-only pair has nothing to plot")
	assert.True(t, s.HasValue())
	assert.True(t, series.OnlyY(0).HasValue())
	assert.False(t, series.Hole().HasValue())

	assert.True(t, series.Hole().IsHole())
	assert.Equal(t, "x", series.DimX.String())
	assert.Equal(t, "y", series.DimY.String())
}
