package linechart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// VectorTarget paints into a vector document. One vg unit is one
// device-independent pixel, so it is meant to be driven with a device
// pixel ratio of 1.
type VectorTarget struct {
	// Format is one of "svg", "pdf" or "eps".
	Format string

	canvas   vg.CanvasWriterTo
	disposed bool
}

// Surface implements Target. Every call starts a new document.
func (t *VectorTarget) Surface(vp Viewport) (Surface, error) {
	if t.disposed {
		return nil, fmt.Errorf("vector target disposed: %w", ErrNoSurface)
	}
	w, h := vg.Length(vp.Width), vg.Length(vp.Height)
	switch t.Format {
	case "svg":
		t.canvas = vgsvg.New(w, h)
	case "pdf":
		t.canvas = vgpdf.New(w, h)
	case "eps":
		t.canvas = vgeps.New(w, h)
	default:
		return nil, fmt.Errorf("linechart: unsupported vector format %q", t.Format)
	}
	return &vector{CanvasWriterTo: t.canvas, w: w, h: h}, nil
}

// WriteTo writes the document of the last pass to w.
func (t *VectorTarget) WriteTo(w io.Writer) (int64, error) {
	if t.canvas == nil {
		return 0, ErrEmptyFrame
	}
	return t.canvas.WriteTo(w)
}

// Dispose drops the document. All later calls to Surface fail.
func (t *VectorTarget) Dispose() {
	t.disposed = true
	t.canvas = nil
}

type vector struct {
	vg.CanvasWriterTo
	w, h vg.Length
}

// Clear paints the page in col. Transparent colors leave the page blank.
func (v *vector) Clear(col color.Color) {
	if col == nil {
		return
	}
	if _, _, _, a := col.RGBA(); a == 0 {
		return
	}
	page := vg.Rectangle{Max: vg.Point{X: v.w, Y: v.h}}
	v.SetColor(col)
	v.Fill(page.Path())
}
