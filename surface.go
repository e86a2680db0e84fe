package linechart

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoSurface is returned by a Target which cannot provide a surface,
// e.g. because it has been disposed.
var ErrNoSurface = errors.New("linechart: drawing surface unavailable")

// A Surface is a drawing target whose backing store can be reset.
type Surface interface {
	vg.Canvas

	// Clear sets every pixel of the backing store to col, ignoring the
	// current transformation.
	Clear(col color.Color)
}

// A Target provides the surface for one render pass.
type Target interface {
	// Surface returns a surface whose backing store matches vp. The
	// returned error wraps ErrNoSurface if nothing can be drawn.
	Surface(vp Viewport) (Surface, error)
}

// Geom is one layer of a chart.
type Geom interface {
	Draw(p *Panel)
}

// canvasFor returns a draw.Canvas covering the whole container of vp in
// device-independent units. The backing store scaling must already be
// applied to c.
func canvasFor(c vg.Canvas, vp Viewport) draw.Canvas {
	return draw.Canvas{
		Canvas: c,
		Rectangle: vg.Rectangle{
			Max: vg.Point{X: vg.Length(vp.Width), Y: vg.Length(vp.Height)},
		},
	}
}
