package geom

import (
	"image/color"
	"math"
	"strconv"

	"golang.org/x/text/message"
	"gonum.org/v1/plot/vg"
)

// Circle returns the closed path of a circle around c.
func Circle(c vg.Point, r vg.Length) vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: c.X + r, Y: c.Y})
	p.Arc(c, r, 0, 2*math.Pi)
	p.Close()
	return p
}

// Lerp interpolates between a (t=0) and b (t=1) in premultiplied RGBA,
// the way canvas gradients do. A nil color is fully transparent.
func Lerp(a, b color.Color, t float64) color.Color {
	if a == nil {
		a = color.Transparent
	}
	if b == nil {
		b = color.Transparent
	}
	t = math.Max(0, math.Min(1, t))
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	mix := func(u, v uint32) uint16 {
		return uint16(math.Round(float64(u) + t*(float64(v)-float64(u))))
	}
	return color.RGBA64{
		R: mix(ar, br),
		G: mix(ag, bg),
		B: mix(ab, bb),
		A: mix(aa, ba),
	}
}

// formatValue rounds v half up to an integer and groups its digits the
// way p's locale does.
func formatValue(p *message.Printer, v float64) string {
	r := math.Floor(v + 0.5)
	if math.Abs(r) >= 1<<62 {
		return strconv.FormatFloat(r, 'g', -1, 64)
	}
	return p.Sprintf("%d", int64(r))
}
