package linechart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	"io"

	"github.com/fogleman/gg"
	"gonum.org/v1/plot/vg/recorder"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrEmptyFrame is returned when encoding a frame without pixels.
var ErrEmptyFrame = errors.New("linechart: frame has no pixels")

// RasterTarget paints into an in-memory RGBA image. The image is
// reallocated whenever the backing size changes, like a resized HTML
// canvas.
//
// One vg unit is one backing pixel, the device pixel ratio is applied by
// the render pass.
type RasterTarget struct {
	img      *image.RGBA
	canvas   *vgimg.Canvas
	disposed bool
}

// NewRasterTarget returns a target without a backing store. The store is
// allocated by the first call to Surface.
func NewRasterTarget() *RasterTarget {
	return &RasterTarget{}
}

// Surface implements Target.
func (t *RasterTarget) Surface(vp Viewport) (Surface, error) {
	if t.disposed {
		return nil, fmt.Errorf("raster target disposed: %w", ErrNoSurface)
	}
	w, h := vp.BackingSize()
	if t.img == nil || t.img.Bounds().Dx() != w || t.img.Bounds().Dy() != h {
		t.img = image.NewRGBA(image.Rect(0, 0, w, h))
		t.canvas = nil
		if w > 0 && h > 0 {
			// The context must draw into t.img, not into a copy of it.
			t.canvas = vgimg.NewWith(
				vgimg.UseImageWithContext(t.img, gg.NewContextForRGBA(t.img)),
				vgimg.UseDPI(72),
				vgimg.UseBackgroundColor(color.Transparent),
			)
		}
	}
	if t.canvas == nil {
		return &discard{}, nil
	}
	return &raster{Canvas: t.canvas, img: t.img}, nil
}

// Image returns the backing store. It is nil before the first pass and
// after Dispose.
func (t *RasterTarget) Image() *image.RGBA {
	return t.img
}

// Encode writes the backing store to w. Format is one of "png", "jpeg"
// or "tiff".
func (t *RasterTarget) Encode(w io.Writer, format string) error {
	if t.canvas == nil {
		return ErrEmptyFrame
	}
	var wt io.WriterTo
	switch format {
	case "png":
		wt = vgimg.PngCanvas{Canvas: t.canvas}
	case "jpg", "jpeg":
		wt = vgimg.JpegCanvas{Canvas: t.canvas}
	case "tif", "tiff":
		wt = vgimg.TiffCanvas{Canvas: t.canvas}
	default:
		return fmt.Errorf("linechart: unsupported raster format %q", format)
	}
	_, err := wt.WriteTo(w)
	return err
}

// Dispose releases the backing store. All later calls to Surface fail.
func (t *RasterTarget) Dispose() {
	t.disposed = true
	t.img, t.canvas = nil, nil
}

type raster struct {
	*vgimg.Canvas
	img *image.RGBA
}

func (r *raster) Clear(col color.Color) {
	if col == nil {
		col = color.Transparent
	}
	stddraw.Draw(r.img, r.img.Bounds(), image.NewUniform(col), image.Point{}, stddraw.Src)
}

// discard is the surface of a backing store without pixels.
type discard struct {
	recorder.Canvas
}

func (*discard) Clear(color.Color) {}
