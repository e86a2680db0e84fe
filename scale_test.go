package linechart

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/linechart/data"
)

var nan = math.NaN()

var intervallUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervallUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestIntervalDegenerate(t *testing.T) {
	assert.True(t, Interval{nan, nan}.Degenerate())
	assert.True(t, Interval{3, 3}.Degenerate())
	assert.False(t, Interval{3, 4}.Degenerate())
	assert.False(t, Interval{3, 4}.Equal(Interval{3, nan}))
}

// growthMapper maps the dashboard's growth series into a 600x300
// container padded by {20, 20, 40, 50}.
func growthMapper(t *testing.T) (Mapper, []Point) {
	t.Helper()
	s := data.Growth()
	vp := NewViewport(600, 300, Padding{Top: 20, Right: 20, Bottom: 40, Left: 50}, 1)
	min, max, ok := s.Range()
	require.True(t, ok)
	m, err := NewMapper(vp.Plot, Interval{min, max}, s.Len())
	require.NoError(t, err)
	return m, m.Map(s.Values)
}

func TestMapperGrowthScenario(t *testing.T) {
	m, pts := growthMapper(t)
	require.Len(t, pts, 12)
	assert.Equal(t, 530.0, m.Plot.Dx())
	assert.Equal(t, 240.0, m.Plot.Dy())

	for i, pt := range pts {
		assert.InDelta(t, 50+530.0/11*float64(i), pt.X, 1e-9, "x of point %d", i)
	}
	assert.InDelta(t, 260, pts[0].Y, 1e-9) // Jan is the minimum
	dec := pts[11]
	assert.InDelta(t, 580, dec.X, 1e-9)
	assert.InDelta(t, 20, dec.Y, 1e-9)
	for _, pt := range pts[:11] {
		assert.Greater(t, pt.Y, dec.Y)
		assert.Less(t, pt.X, dec.X)
	}
}

var mapperSeries = [][]float64{
	data.Growth().Values,
	{1, 2},
	{-5, 3, 0, 3, -5},
	{1e-9, 2e-9, 1.5e-9},
	{-1e12, 1e12, 0},
}

func TestMapperProperties(t *testing.T) {
	plot := NewViewport(600, 300, Padding{Top: 20, Right: 20, Bottom: 40, Left: 50}, 2).Plot
	for i, values := range mapperSeries {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			r := Interval{nan, nan}
			r.Update(values...)
			m, err := NewMapper(plot, r, len(values))
			require.NoError(t, err)
			pts := m.Map(values)

			for j, pt := range pts {
				assert.GreaterOrEqual(t, pt.X, plot.Min.X)
				assert.LessOrEqual(t, pt.X, plot.Max.X)
				assert.GreaterOrEqual(t, pt.Y, plot.Min.Y-1e-9)
				assert.LessOrEqual(t, pt.Y, plot.Max.Y+1e-9)
				if j > 0 {
					assert.Less(t, pts[j-1].X, pt.X, "x not increasing")
				}
				for k := range pts {
					if values[j] > values[k] {
						assert.LessOrEqual(t, pt.Y, pts[k].Y, "y not order reversing")
					}
				}
			}
		})
	}
}

func TestMapperDegenerateRange(t *testing.T) {
	plot := Rect{Min: Point{50, 20}, Max: Point{580, 260}}
	m, err := NewMapper(plot, Interval{7, 7}, 4)
	require.NoError(t, err)
	for _, pt := range m.Map([]float64{7, 7, 7, 7}) {
		assert.Equal(t, 140.0, pt.Y)
	}
}

func TestMapperZeroArea(t *testing.T) {
	plot := NewViewport(0, 0, Padding{Top: 20, Right: 20, Bottom: 40, Left: 50}, 1).Plot
	m, err := NewMapper(plot, Interval{1, 9}, 3)
	require.NoError(t, err)
	for _, pt := range m.Map([]float64{1, 5, 9}) {
		assert.False(t, math.IsNaN(pt.X) || math.IsNaN(pt.Y))
		assert.Equal(t, Point{50, 20}, pt)
	}
}

func TestMapperNeedsTwoPoints(t *testing.T) {
	for n := -1; n < 2; n++ {
		_, err := NewMapper(Rect{}, Interval{0, 1}, n)
		assert.ErrorIs(t, err, data.ErrTooFewPoints)
	}
}
