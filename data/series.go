// Package data contains the series type drawn by a line chart.
package data

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
)

// ErrInvalid is wrapped by all reasons a Series cannot be drawn as a line.
var ErrInvalid = errors.New("invalid series")

var (
	ErrTooFewPoints   = fmt.Errorf("%w: fewer than 2 points", ErrInvalid)
	ErrLengthMismatch = fmt.Errorf("%w: label and value count differ", ErrInvalid)
	ErrNonFinite      = fmt.Errorf("%w: non-finite value", ErrInvalid)
)

// Series is an ordered sequence of (label, value) pairs. The order of the
// pairs is the order along the x-axis.
//
// A Series must not be modified while it is being drawn. Charts detect new
// data by comparing *Series pointers, so a changed data set should come in
// a new Series.
type Series struct {
	Labels []string
	Values []float64
}

// New returns a series of the given labels and values. The slices are
// used as is, not copied.
func New(labels []string, values []float64) *Series {
	return &Series{Labels: labels, Values: values}
}

// Len returns the number of values in s.
func (s *Series) Len() int { return len(s.Values) }

// XY returns the index and the value of the i'th point so that a Series
// can be used as a plotter.XYer.
func (s *Series) XY(i int) (x, y float64) { return float64(i), s.Values[i] }

// Validate reports whether s can be drawn as a line. The returned error
// wraps ErrInvalid.
func (s *Series) Validate() error {
	if s == nil {
		return ErrTooFewPoints
	}
	if len(s.Labels) != len(s.Values) {
		return ErrLengthMismatch
	}
	if len(s.Values) < 2 {
		return ErrTooFewPoints
	}
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w at index %d", ErrNonFinite, i)
		}
	}
	return nil
}

// Range returns the smallest and largest finite value of s. If s has no
// finite value ok is false.
func (s *Series) Range() (min, max float64, ok bool) {
	if s == nil {
		return 0, 0, false
	}
	finite := make(plotter.XYs, 0, len(s.Values))
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		finite = append(finite, plotter.XY{X: float64(i), Y: v})
	}
	if len(finite) == 0 {
		return 0, 0, false
	}
	_, _, min, max = plotter.XYRange(finite)
	return min, max, true
}

// Growth returns the monthly active user series of the dashboard demo.
func Growth() *Series {
	return New(
		[]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		[]float64{4200, 5100, 4800, 6200, 7500, 8100, 7800, 9200, 10500, 11200, 10800, 12400},
	)
}
