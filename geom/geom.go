// Package geom provides the layers a line chart is painted from.
//
// Each geom draws one layer of a *linechart.Panel and does not depend on
// anything a previous frame left on the canvas. The chart package paints
// them in a fixed order: Grid, Area, Line, Marker, XLabel and Header.
//
// Area, Line and Marker draw nothing for a series which is not drawable
// (see linechart.Panel.Drawable); Grid and XLabel still do.
package geom

import (
	"math"

	"golang.org/x/text/message"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/linechart"
)

type point = linechart.Point

// ----------------------------------------------------------------------------
// Grid

// Grid draws the horizontal grid lines and their value labels. Lines are
// evenly spaced from the top to the bottom of the plot; the labels
// interpolate the value range from its max down to its min.
type Grid struct{}

// Draw implements linechart.Geom.Draw.
func (Grid) Draw(p *linechart.Panel) {
	sty := p.Style.Grid
	k := sty.Lines
	if k < 1 {
		k = 1
	}
	plot := p.Viewport.Plot
	printer := message.NewPrinter(sty.Locale)

	for i := 0; i <= k; i++ {
		y := plot.Min.Y + plot.Dy()/float64(k)*float64(i)
		left, right := p.VG(point{X: plot.Min.X, Y: y}), p.VG(point{X: plot.Max.X, Y: y})
		if sty.Color != nil {
			p.Canvas.StrokeLine2(sty.LineStyle, left.X, left.Y, right.X, right.Y)
		}

		if !p.Range.IsSet() {
			continue // No finite value, nothing to label.
		}
		v := p.Range.Max - p.Range.Len()/float64(k)*float64(i)
		at := vg.Point{X: left.X - sty.Gap, Y: left.Y}
		p.Canvas.FillText(sty.Label, at, formatValue(printer, v))
	}
}

// ----------------------------------------------------------------------------
// Area

// Area fills the region between the line and the bottom of the plot with
// a vertical gradient.
//
// The gradient is painted as horizontal bands, each the area polygon
// clipped to the band and filled with the gradient color at the band's
// center.
type Area struct {
	// Bands is the number of bands. If 0 there is one band per row of
	// backing store pixels.
	Bands int
}

// maxBands limits the number of fill operations for tall plots.
const maxBands = 1024

// Draw implements linechart.Geom.Draw.
func (a Area) Draw(p *linechart.Panel) {
	if !p.Drawable() {
		return
	}
	plot := p.Viewport.Plot
	if plot.Dy() <= 0 || plot.Dx() <= 0 {
		return
	}

	pts := p.Points
	poly := make([]point, 0, len(pts)+2)
	poly = append(poly, point{X: pts[0].X, Y: plot.Max.Y})
	poly = append(poly, pts...)
	poly = append(poly, point{X: pts[len(pts)-1].X, Y: plot.Max.Y})
	outline := p.VGs(poly)

	n := a.Bands
	if n <= 0 {
		n = int(math.Ceil(plot.Dy() * p.Viewport.DPR))
	}
	if n > maxBands {
		n = maxBands
	}

	h := plot.Dy() / float64(n)
	for i := 0; i < n; i++ {
		top, bottom := plot.Min.Y+h*float64(i), plot.Min.Y+h*float64(i+1)
		band := p.Canvas
		band.Min.Y = p.VG(point{Y: bottom}).Y
		band.Max.Y = p.VG(point{Y: top}).Y

		clipped := band.ClipPolygonY(outline)
		if len(clipped) < 3 {
			continue
		}
		t := (float64(i) + 0.5) / float64(n)
		band.FillPolygon(Lerp(p.Style.Area.Top, p.Style.Area.Bottom, t), clipped)
	}
}

// ----------------------------------------------------------------------------
// Line

// Line strokes the polyline through all points with round joins and caps.
type Line struct{}

// Draw implements linechart.Geom.Draw.
func (Line) Draw(p *linechart.Panel) {
	sty := p.Style.Line
	if !p.Drawable() || sty.Color == nil || sty.Width <= 0 {
		return
	}
	pts := p.VGs(p.Points)
	p.Canvas.StrokeLines(sty, pts)

	// vg.Canvas has no cap or join styles: round them with discs.
	p.Canvas.SetColor(sty.Color)
	for _, pt := range pts {
		p.Canvas.Fill(Circle(pt, sty.Width/2))
	}
}

// ----------------------------------------------------------------------------
// Marker

// Marker draws a filled and outlined circle at each point.
type Marker struct{}

// Draw implements linechart.Geom.Draw.
func (Marker) Draw(p *linechart.Panel) {
	sty := p.Style.Marker
	if !p.Drawable() || sty.Radius <= 0 {
		return
	}
	for _, pt := range p.VGs(p.Points) {
		c := Circle(pt, sty.Radius)
		if sty.Fill != nil {
			p.Canvas.SetColor(sty.Fill)
			p.Canvas.Fill(c)
		}
		if sty.Stroke.Color != nil && sty.Stroke.Width > 0 {
			p.Canvas.SetLineStyle(sty.Stroke)
			p.Canvas.Stroke(c)
		}
	}
}

// ----------------------------------------------------------------------------
// XLabel

// XLabel centers each series label below its x position. A series with
// a single point gets its label below the center of the plot.
type XLabel struct{}

// Draw implements linechart.Geom.Draw.
func (XLabel) Draw(p *linechart.Panel) {
	s := p.Series
	if s == nil {
		return
	}
	sty := p.Style.XAxis
	plot := p.Viewport.Plot
	y := plot.Max.Y + float64(sty.Offset)

	switch {
	case p.Drawable():
		for i, label := range s.Labels {
			p.Canvas.FillText(sty.Label, p.VG(point{X: p.Mapper.X(i), Y: y}), label)
		}
	case len(s.Labels) == 1 && len(s.Values) == 1:
		p.Canvas.FillText(sty.Label, p.VG(point{X: plot.Min.X + plot.Dx()/2, Y: y}), s.Labels[0])
	}
}

// ----------------------------------------------------------------------------
// Header

// Header draws the title and subtitle left aligned above the plot and the
// legend entry right aligned next to the title.
type Header struct{}

// Draw implements linechart.Geom.Draw.
func (Header) Draw(p *linechart.Panel) {
	if !p.Style.HasHeader() {
		return
	}
	sty := p.Style.Header
	plot := p.Viewport.Plot
	// The band is the top Height pixels of the container.
	pad := float64(sty.Height) / 6
	titleSize := float64(sty.TitleStyle.Font.Size)

	if sty.Title != "" {
		p.Canvas.FillText(sty.TitleStyle, p.VG(point{X: plot.Min.X, Y: pad}), sty.Title)
	}
	if sty.Subtitle != "" {
		at := point{X: plot.Min.X, Y: pad + titleSize + pad/2}
		p.Canvas.FillText(sty.SubtitleStyle, p.VG(at), sty.Subtitle)
	}
	if sty.Legend != "" {
		mid := pad + titleSize/2
		p.Canvas.FillText(sty.LegendStyle, p.VG(point{X: plot.Max.X, Y: mid}), sty.Legend)

		font := sty.LegendStyle.Font
		dot := point{
			X: plot.Max.X - float64(font.Width(sty.Legend)) - float64(sty.DotRadius)*2,
			Y: mid,
		}
		if c := p.Style.Line.Color; c != nil && sty.DotRadius > 0 {
			p.Canvas.SetColor(c)
			p.Canvas.Fill(Circle(p.VG(dot), sty.DotRadius))
		}
	}
}
