// Package chart paints line charts and decides when to repaint them.
//
// Render is a single, complete and synchronous render pass. A Chart
// coordinates passes: it repaints on mount, on a new series and on a
// container resize, and on nothing else.
package chart

import (
	"github.com/vdobler/linechart"
	"github.com/vdobler/linechart/data"
	"github.com/vdobler/linechart/geom"
)

// Layers returns the geoms of a chart in painting order.
func Layers() []linechart.Geom {
	return []linechart.Geom{
		geom.Grid{},
		geom.Area{},
		geom.Line{},
		geom.Marker{},
		geom.XLabel{},
		geom.Header{},
	}
}

// Render paints series onto s. The backing store is cleared first, then
// the device pixel ratio of vp is applied as one scale transformation
// and all layers are painted in device-independent pixels.
//
// A series which cannot be drawn as a line is not an error: only the
// background layers are painted. The returned Panel describes the pass.
func Render(s linechart.Surface, vp linechart.Viewport, series *data.Series, sty *linechart.Style) *linechart.Panel {
	s.Clear(sty.Background)

	s.Push()
	defer s.Pop()
	s.Scale(vp.DPR, vp.DPR)

	p := linechart.NewPanel(s, vp, sty, series)
	for _, g := range Layers() {
		g.Draw(p)
	}
	return p
}
