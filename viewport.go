package linechart

import "math"

// Point is a position in device-independent pixels. The origin is the top
// left corner of the container, y grows downwards.
type Point struct {
	X, Y float64
}

// Rect is an axis aligned rectangle with Min the top left and Max the
// bottom right corner.
type Rect struct {
	Min, Max Point
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Padding is the space between the container edges and the plot rectangle.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Viewport describes the container a chart is drawn into and the plot
// rectangle derived from it.
type Viewport struct {
	// Width and Height are the container size in device-independent pixels.
	Width, Height float64

	// DPR is the device pixel ratio, the number of backing store pixels
	// per device-independent pixel.
	DPR float64

	// Padding is the padding used to derive Plot.
	Padding Padding

	// Plot is the padded plot rectangle. Its width and height are never
	// negative: a too small container yields an empty plot.
	Plot Rect
}

// NewViewport computes the viewport of a width x height container.
// Negative or NaN sizes are treated as 0, a non-positive or NaN dpr as 1.
func NewViewport(width, height float64, pad Padding, dpr float64) Viewport {
	width, height = nonNegative(width), nonNegative(height)
	if !(dpr > 0) || math.IsInf(dpr, 0) {
		dpr = 1
	}
	pad = Padding{
		Top:    nonNegative(pad.Top),
		Right:  nonNegative(pad.Right),
		Bottom: nonNegative(pad.Bottom),
		Left:   nonNegative(pad.Left),
	}

	plotWidth := math.Max(0, width-pad.Left-pad.Right)
	plotHeight := math.Max(0, height-pad.Top-pad.Bottom)

	return Viewport{
		Width:   width,
		Height:  height,
		DPR:     dpr,
		Padding: pad,
		Plot: Rect{
			Min: Point{X: pad.Left, Y: pad.Top},
			Max: Point{X: pad.Left + plotWidth, Y: pad.Top + plotHeight},
		},
	}
}

// BackingSize returns the size of the backing store in pixels.
func (v Viewport) BackingSize() (w, h int) {
	return int(math.Floor(v.Width * v.DPR)), int(math.Floor(v.Height * v.DPR))
}

// Empty reports whether the backing store has no pixels.
func (v Viewport) Empty() bool {
	w, h := v.BackingSize()
	return w == 0 || h == 0
}

func nonNegative(x float64) float64 {
	if !(x > 0) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
