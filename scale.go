package linechart

import (
	"fmt"
	"math"

	"github.com/vdobler/linechart/data"
)

// ----------------------------------------------------------------------------
// Mapper

// Mapper maps series indices and values to points in the plot rectangle.
// Coordinates are device-independent pixels with y growing downwards.
type Mapper struct {
	// Plot is the rectangle the series is mapped into.
	Plot Rect

	// Values is the range of the series values. If it is degenerate all
	// values map to the vertical center of Plot.
	Values Interval

	// N is the number of points in the series.
	N int
}

// NewMapper returns a Mapper for n points with values in r. The mapping of
// indices is undefined for less than two points and NewMapper fails.
func NewMapper(plot Rect, r Interval, n int) (Mapper, error) {
	if n < 2 {
		return Mapper{}, fmt.Errorf("linechart: cannot map %d points: %w", n, data.ErrTooFewPoints)
	}
	return Mapper{Plot: plot, Values: r, N: n}, nil
}

// X maps the index i to a horizontal pixel position.
func (m Mapper) X(i int) float64 {
	from := Interval{0, float64(m.N - 1)}
	to := Interval{m.Plot.Min.X, m.Plot.Max.X}
	return LinearTrans.Trans(from, to, float64(i))
}

// Y maps the value v to a vertical pixel position. Larger values are
// closer to the top of the plot.
func (m Mapper) Y(v float64) float64 {
	if m.Values.Degenerate() {
		return m.Plot.Min.Y + m.Plot.Dy()/2
	}
	to := Interval{m.Plot.Max.Y, m.Plot.Min.Y}
	return LinearTrans.Trans(m.Values, to, v)
}

// Map maps all values to points, preserving their order.
func (m Mapper) Map(values []float64) []Point {
	pts := make([]Point, len(values))
	for i, v := range values {
		pts[i] = Point{X: m.X(i), Y: m.Y(v)}
	}
	return pts
}

// ----------------------------------------------------------------------------
// Intervall

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) != math.IsNaN(j.Min) || math.IsNaN(i.Max) != math.IsNaN(j.Max) {
		return false
	}
	return (math.IsNaN(i.Min) || i.Min == j.Min) && (math.IsNaN(i.Max) || i.Max == j.Max)
}

// IsSet reports whether both edges of i are known.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Degenerate reports whether i has zero length or is unset.
func (i Interval) Degenerate() bool {
	return !i.IsSet() || i.Min == i.Max
}

// Len returns Max-Min.
func (i Interval) Len() float64 { return i.Max - i.Min }

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}
