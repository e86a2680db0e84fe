package linechart

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/linechart/data"
)

// ----------------------------------------------------------------------------
// Panel

// A Panel is the plan of a single render pass: the canvas, the geometry
// and the mapped series. It is rebuilt for every pass and never reused.
type Panel struct {
	// Canvas covers the whole container in device-independent units with
	// the origin in the bottom left corner (the vg convention).
	Canvas   draw.Canvas
	Viewport Viewport
	Style    *Style
	Series   *data.Series

	// Invalid is the reason Series cannot be drawn as a line or nil.
	Invalid error

	// Range covers the finite values of Series. It is unset if there
	// are none.
	Range Interval

	// Mapper and Points are only set if Invalid is nil.
	Mapper Mapper
	Points []Point
}

// NewPanel plans drawing s onto c. The device pixel ratio of vp must
// already be applied to c.
func NewPanel(c vg.Canvas, vp Viewport, sty *Style, s *data.Series) *Panel {
	p := &Panel{
		Canvas:   canvasFor(c, vp),
		Viewport: vp,
		Style:    sty,
		Series:   s,
		Range:    unsetInterval(),
	}
	if min, max, ok := s.Range(); ok {
		p.Range = Interval{min, max}
	}

	p.Invalid = s.Validate()
	if p.Invalid != nil {
		return p
	}
	m, err := NewMapper(vp.Plot, p.Range, s.Len())
	if err != nil {
		p.Invalid = err
		return p
	}
	p.Mapper = m
	p.Points = m.Map(s.Values)
	return p
}

// Drawable reports whether the series line, area and markers can be drawn.
func (p *Panel) Drawable() bool {
	return p.Invalid == nil
}

// VG converts the container point pt to a canvas point.
func (p *Panel) VG(pt Point) vg.Point {
	return vg.Point{X: vg.Length(pt.X), Y: vg.Length(p.Viewport.Height - pt.Y)}
}

// VGs converts all pts to canvas points.
func (p *Panel) VGs(pts []Point) []vg.Point {
	vgs := make([]vg.Point, len(pts))
	for i, pt := range pts {
		vgs[i] = p.VG(pt)
	}
	return vgs
}
