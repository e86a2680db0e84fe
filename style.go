package linechart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"golang.org/x/text/language"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a chart is drawn. All lengths are device-independent
// pixels.
type Style struct {
	// Background is used to clear the backing store. The default is
	// fully transparent.
	Background color.Color

	Padding Padding

	Grid struct {
		// Lines is the number of intervals between horizontal grid
		// lines; Lines+1 lines are drawn from the top to the bottom of
		// the plot.
		Lines int
		draw.LineStyle

		// Label is used for the value labels left of the grid lines.
		Label draw.TextStyle
		// Gap is the distance between a label and the plot.
		Gap vg.Length
		// Locale determines the digit grouping of the labels.
		Locale language.Tag
	}

	// Area is the gradient below the line, from Top at the top of the
	// plot to Bottom at its bottom.
	Area struct {
		Top, Bottom color.Color
	}

	// Line is used to stroke the series line.
	Line draw.LineStyle

	Marker struct {
		Radius vg.Length
		Fill   color.Color
		Stroke draw.LineStyle
	}

	XAxis struct {
		Label draw.TextStyle
		// Offset is the distance between the bottom of the plot and the
		// baseline of the labels.
		Offset vg.Length
	}

	// Header is an optional band above the plot. It is only drawn if
	// Title or Legend is not empty.
	Header struct {
		Title, Subtitle, Legend string

		Height        vg.Length
		TitleStyle    draw.TextStyle
		SubtitleStyle draw.TextStyle
		LegendStyle   draw.TextStyle
		// DotRadius is the radius of the colored dot in front of the
		// legend text. The dot uses the line color.
		DotRadius vg.Length
	}
}

// DefaultStyle returns the style of the dashboard's user growth chart.
// The baseFontSize is the font size of axis labels, titles are a bit
// bigger.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	slate := color.NRGBA{0x64, 0x74, 0x8b, 0xff}
	indigo := color.NRGBA{0x63, 0x66, 0xf1, 0xff}

	s := Style{}
	s.Background = color.Transparent
	s.Padding = Padding{Top: 20, Right: 20, Bottom: 40, Left: 50}

	s.Grid.Lines = 5
	s.Grid.Color = color.NRGBA{0xe2, 0xe8, 0xf0, 0xff}
	s.Grid.Width = 1
	s.Grid.Label.Color = slate
	s.Grid.Label.XAlign = draw.XRight
	s.Grid.Label.YAlign = -0.3 // draw.YCenter
	s.Grid.Gap = 10
	s.Grid.Locale = language.English

	s.Area.Top = color.NRGBA{0x63, 0x66, 0xf1, 0x4c}
	s.Area.Bottom = color.NRGBA{0x63, 0x66, 0xf1, 0x00}

	s.Line.Color = indigo
	s.Line.Width = 3

	s.Marker.Radius = 4
	s.Marker.Fill = color.White
	s.Marker.Stroke.Color = indigo
	s.Marker.Stroke.Width = 2

	s.XAxis.Label.Color = slate
	s.XAxis.Label.XAlign = draw.XCenter
	s.XAxis.Label.YAlign = draw.YBottom
	s.XAxis.Offset = 20

	s.Header.Height = scale(baseFontSize, 4)
	s.Header.TitleStyle.Color = color.NRGBA{0x1e, 0x29, 0x3b, 0xff}
	s.Header.TitleStyle.XAlign = draw.XLeft
	s.Header.TitleStyle.YAlign = draw.YTop
	s.Header.SubtitleStyle.Color = slate
	s.Header.SubtitleStyle.XAlign = draw.XLeft
	s.Header.SubtitleStyle.YAlign = draw.YTop
	s.Header.LegendStyle.Color = slate
	s.Header.LegendStyle.XAlign = draw.XRight
	s.Header.LegendStyle.YAlign = -0.3 // draw.YCenter
	s.Header.DotRadius = scale(baseFontSize, 0.33)

	if err := s.SetFont("Helvetica", baseFontSize); err != nil {
		panic(err)
	}
	return s
}

// SetFont changes the typeface of all text. Titles are set in the bold
// variant of name (if there is one) and 1.33 times bigger.
func (s *Style) SetFont(name string, size vg.Length) error {
	base, err := vg.MakeFont(name, size)
	if err != nil {
		return fmt.Errorf("linechart: font %q: %w", name, err)
	}
	title, err := vg.MakeFont(name+"-Bold", vg.Length(math.Round(1.33*float64(size))))
	if err != nil {
		title = base
		title.Size = vg.Length(math.Round(1.33 * float64(size)))
	}
	s.Grid.Label.Font = base
	s.XAxis.Label.Font = base
	s.Header.TitleStyle.Font = title
	s.Header.SubtitleStyle.Font = base
	s.Header.LegendStyle.Font = base
	return nil
}

// HasHeader reports whether the header band is drawn.
func (s *Style) HasHeader() bool {
	return s.Header.Title != "" || s.Header.Legend != ""
}

// Viewport returns the viewport of a width x height container drawn in s.
// The header band, if any, is added to the top padding.
func (s *Style) Viewport(width, height, dpr float64) Viewport {
	pad := s.Padding
	if s.HasHeader() {
		pad.Top += float64(s.Header.Height)
	}
	return NewViewport(width, height, pad, dpr)
}

// Validate reports the problems in s which prevent drawing.
func (s *Style) Validate() error {
	var errs []error
	if s.Grid.Lines < 1 {
		errs = append(errs, fmt.Errorf("grid lines must be at least 1, got %d", s.Grid.Lines))
	}
	if !(s.Line.Width > 0) {
		errs = append(errs, fmt.Errorf("stroke width must be positive, got %v", s.Line.Width))
	}
	if s.Marker.Radius < 0 {
		errs = append(errs, fmt.Errorf("marker radius must not be negative, got %v", s.Marker.Radius))
	}
	if s.Grid.Label.Font.Name() == "" || s.XAxis.Label.Font.Name() == "" {
		errs = append(errs, errors.New("no font set"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("linechart: bad style: %w", errors.Join(errs...))
	}
	return nil
}
