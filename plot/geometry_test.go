package plot_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvplot/axis"
	"github.com/katalvlaran/lvplot/bounds"
	"github.com/katalvlaran/lvplot/interpolation"
	"github.com/katalvlaran/lvplot/plot"
	"github.com/katalvlaran/lvplot/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bare returns options for a 100×100 chart area at the origin with straight
// lines and a stretched step X axis: x = 25·i, y = 100 − 12.5·v for data in [0, 8].
func bare() plot.Options {
	o := plot.DefaultOptions()
	o.Width, o.Height = 100, 100
	o.Padding = axis.Padding{}
	o.AxisX.Placement = axis.Placement{Position: axis.End}
	o.AxisY.Placement = axis.Placement{Position: axis.Start}
	o.FullWidth = true
	o.Style.Interpolation = interpolation.None()

	return o
}

func oneSeries(l series.List) series.Data {
	return series.Data{Labels: []string{"a", "b", "c", "d", "e"}, Series: []series.Datum{l}}
}

// TestLine_Golden pins line and area paths.
func TestLine_Golden(t *testing.T) {
	t.Parallel()

	hole := series.List{series.Number(0), series.Null{}, series.Number(8), series.Number(4), series.Number(0)}

	tests := []struct {
		name      string
		data      series.List
		areaBase  float64
		wantLine  string
		wantAreas []string
	}{
		{"solid", series.Numbers(0, 4, 8, 4, 0), 0,
			"M0,100L25,50L50,0L75,50L100,100",
			[]string{"M0,100L0,100L25,50L50,0L75,50L100,100L100,100Z"}},
		{"hole drops single point run", hole, 0,
			"M0,100M50,0L75,50L100,100",
			[]string{"M50,100L50,0L75,50L100,100L100,100Z"}},
		{"area base inside range", hole, 5,
			"M0,100M50,0L75,50L100,100",
			[]string{"M50,37.5L50,0L75,50L100,100L100,37.5Z"}},
		{"area base clamped", hole, -3,
			"M0,100M50,0L75,50L100,100",
			[]string{"M50,100L50,0L75,50L100,100L100,100Z"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			o := bare()
			o.Style.ShowArea = true
			o.Style.AreaBase = tc.areaBase

			g, err := plot.Line(oneSeries(tc.data), o)
			require.NoError(t, err)
			require.Len(t, g.Series, 1)

			s := g.Series[0]
			require.NotNil(t, s.Line)
			assert.Equal(t, tc.wantLine, s.Line.String())

			var areas []string
			for _, a := range s.Areas {
				areas = append(areas, a.String())
			}
			assert.Equal(t, tc.wantAreas, areas)
		})
	}
}

// TestLine_Points checks projection and provenance of every non-hole value.
func TestLine_Points(t *testing.T) {
	t.Parallel()

	data := oneSeries(series.List{
		series.Number(0),
		series.Wrapped{Value: series.Number(4), Meta: "peak"},
		series.Null{},
		series.Number(8),
	})
	g, err := plot.Line(data, bare())
	require.NoError(t, err)

	pts := g.Series[0].Points
	require.Len(t, pts, 3)
	assert.Equal(t, []float64{0, 25, 75}, []float64{pts[0].X, pts[1].X, pts[2].X})
	assert.Equal(t, []float64{100, 50, 0}, []float64{pts[0].Y, pts[1].Y, pts[2].Y})
	assert.Equal(t, []int{0, 1, 3}, []int{pts[0].Data.ValueIndex, pts[1].Data.ValueIndex, pts[2].Data.ValueIndex})
	assert.Equal(t, "peak", pts[1].Data.Meta)

	for _, c := range g.Series[0].Line.Commands() {
		require.NotNil(t, c.Data)
	}
}

// TestLine_DefaultLayout checks the default rectangle and smoothing.
func TestLine_DefaultLayout(t *testing.T) {
	t.Parallel()

	o := plot.DefaultOptions()
	o.Width, o.Height = 400, 240

	g, err := plot.Line(series.Data{
		Labels: []string{"Mon", "Tue", "Wed"},
		Series: []series.Datum{series.Series{Name: "visits", Data: series.Numbers(1, 5, 3)}},
	}, o)
	require.NoError(t, err)

	assert.Equal(t, axis.ChartRect{X1: 50, X2: 385, Y2: 15, Y1: 205, Padding: plot.DefaultPadding}, g.Rect)
	assert.IsType(t, &axis.Step{}, g.AxisX)
	assert.IsType(t, &axis.AutoScale{}, g.AxisY)
	assert.Equal(t, "visits", g.Series[0].Name)
	assert.Nil(t, g.Series[0].Areas)

	cmds := g.Series[0].Line.Commands()
	require.Len(t, cmds, 3)
	assert.Equal(t, byte('M'), cmds[0].Letter())
	assert.Equal(t, byte('C'), cmds[1].Letter())
	assert.Equal(t, byte('C'), cmds[2].Letter())
}

// TestLine_SeriesStyles applies per-series overrides by name.
func TestLine_SeriesStyles(t *testing.T) {
	t.Parallel()

	o := bare()
	o.SeriesStyles = map[string]plot.SeriesStyle{
		"filled": {Interpolation: interpolation.None(), ShowArea: true},
	}
	g, err := plot.Line(series.Data{Series: []series.Datum{
		series.Series{Name: "plain", Data: series.Numbers(0, 8)},
		series.Series{Name: "filled", Data: series.Numbers(8, 0)},
	}}, o)
	require.NoError(t, err)

	assert.NotNil(t, g.Series[0].Line)
	assert.Empty(t, g.Series[0].Areas)
	assert.Nil(t, g.Series[1].Line)
	require.Len(t, g.Series[1].Areas, 1)
	assert.Equal(t, "M0,100L0,0L100,100L100,100Z", g.Series[1].Areas[0].String())
}

// TestLine_ContinuousX projects x components through a fixed X scale.
func TestLine_ContinuousX(t *testing.T) {
	t.Parallel()

	o := bare()
	o.AxisX = plot.AxisOptions{
		Type:      plot.AxisFixed,
		Placement: axis.Placement{Position: axis.End},
		Options:   []axis.Option{axis.WithHighLow(bounds.HighLow{High: 10, Low: 0})},
	}
	pt := func(x, y float64) series.Datum { return series.Point{X: series.Number(x), Y: series.Number(y)} }

	g, err := plot.Line(series.Data{Series: []series.Datum{series.List{pt(0, 0), pt(5, 8), pt(10, 0)}}}, o)
	require.NoError(t, err)
	assert.Equal(t, "M0,100L50,0L100,100", g.Series[0].Line.String())
}

// TestLine_MissingY treats a pair without a y component as a hole.
func TestLine_MissingY(t *testing.T) {
	t.Parallel()

	o := bare()
	o.AxisX = plot.AxisOptions{
		Type:      plot.AxisFixed,
		Placement: axis.Placement{Position: axis.End},
		Options:   []axis.Option{axis.WithHighLow(bounds.HighLow{High: 10, Low: 0})},
	}
	pt := func(x, y float64) series.Datum { return series.Point{X: series.Number(x), Y: series.Number(y)} }
	data := series.List{pt(0, 0), pt(2, 8), series.Point{X: series.Number(5)}, pt(8, 8), pt(10, 0)}

	g, err := plot.Line(series.Data{Series: []series.Datum{data}}, o)
	require.NoError(t, err)

	s := g.Series[0]
	assert.Equal(t, "M0,100L20,0M80,0L100,100", s.Line.String())
	require.Len(t, s.Points, 4)
	for _, p := range s.Points {
		assert.NotEqual(t, 2, p.Data.ValueIndex)
		assert.GreaterOrEqual(t, p.Y, g.Rect.Y2)
		assert.LessOrEqual(t, p.Y, g.Rect.Y1)
	}
}

// TestLine_Reverse reverses labels and values before projection.
func TestLine_Reverse(t *testing.T) {
	t.Parallel()

	o := bare()
	o.ReverseData = true
	g, err := plot.Line(oneSeries(series.Numbers(0, 4, 8, 4, 8)), o)
	require.NoError(t, err)

	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, g.Labels)
	assert.Equal(t, "M0,0L25,50L50,0L75,50L100,100", g.Series[0].Line.String())
}

// TestLine_Errors covers missing series and bad axis configuration.
func TestLine_Errors(t *testing.T) {
	t.Parallel()

	_, err := plot.Line(series.Data{}, bare())
	assert.True(t, errors.Is(err, plot.ErrNoSeries))

	o := bare()
	o.AxisY.Type = plot.AxisType(9)
	_, err = plot.Line(oneSeries(series.Numbers(1, 2)), o)
	assert.True(t, errors.Is(err, plot.ErrUnknownAxisType))

	o = bare()
	o.AxisY.Options = []axis.Option{axis.WithScaleMinSpace(0)}
	_, err = plot.Line(oneSeries(series.Numbers(1, 2)), o)
	assert.True(t, errors.Is(err, bounds.ErrStepOptimization))

	_, err = plot.Line(series.Data{Series: []series.Datum{series.List{}}}, bare())
	assert.True(t, errors.Is(err, axis.ErrNoTicks))
}
