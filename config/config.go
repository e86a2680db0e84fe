// Package config reads chart files.
//
// A chart file describes the container, the style and the series of a
// chart. It may be written in TOML, YAML or JSON; the format is chosen by
// the file extension. All settings are optional, unset ones keep the
// value of linechart.DefaultStyle. An example in TOML:
//
//	width = 600
//	height = 300
//	dpr = 2
//	data = "growth.csv"
//
//	[style]
//	grid_lines = 5
//	locale = "de"
//	title = "User Growth Over Time"
//	legend = "Active Users"
//
//	[style.colors]
//	line = "#6366f1"
//	fill_start = "rgba(99, 102, 241, 0.3)"
//	fill_end = "rgba(99, 102, 241, 0)"
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/vdobler/linechart"
	"github.com/vdobler/linechart/chart"
	"github.com/vdobler/linechart/data"
)

// ErrFormat is returned for files in an unknown format.
var ErrFormat = errors.New("config: unknown format")

// Defaults for unset values.
const (
	DefaultWidth    = 600
	DefaultHeight   = 300
	DefaultFontSize = 12
)

// File is the content of a chart file.
type File struct {
	Width  float64 `toml:"width" yaml:"width" json:"width"`
	Height float64 `toml:"height" yaml:"height" json:"height"`
	DPR    float64 `toml:"dpr" yaml:"dpr" json:"dpr"`

	Style Style `toml:"style" yaml:"style" json:"style"`

	// Series is given inline or as a CSV file in Data. A Data path is
	// relative to the chart file.
	Series *Series `toml:"series,omitempty" yaml:"series,omitempty" json:"series,omitempty"`
	Data   string  `toml:"data,omitempty" yaml:"data,omitempty" json:"data,omitempty"`

	dir string
}

type Series struct {
	Labels []string  `toml:"labels" yaml:"labels" json:"labels"`
	Values []float64 `toml:"values" yaml:"values" json:"values"`
}

type Padding struct {
	Top    float64 `toml:"top" yaml:"top" json:"top"`
	Right  float64 `toml:"right" yaml:"right" json:"right"`
	Bottom float64 `toml:"bottom" yaml:"bottom" json:"bottom"`
	Left   float64 `toml:"left" yaml:"left" json:"left"`
}

type Style struct {
	Padding *Padding `toml:"padding,omitempty" yaml:"padding,omitempty" json:"padding,omitempty"`

	GridLines         int     `toml:"grid_lines" yaml:"grid_lines" json:"grid_lines"`
	StrokeWidth       float64 `toml:"stroke_width" yaml:"stroke_width" json:"stroke_width"`
	MarkerRadius      float64 `toml:"marker_radius" yaml:"marker_radius" json:"marker_radius"`
	MarkerStrokeWidth float64 `toml:"marker_stroke_width" yaml:"marker_stroke_width" json:"marker_stroke_width"`

	Font     string  `toml:"font" yaml:"font" json:"font"`
	FontSize float64 `toml:"font_size" yaml:"font_size" json:"font_size"`
	// Locale is a BCP 47 tag like "en" or "de-CH" used to group the
	// digits of grid labels.
	Locale string `toml:"locale" yaml:"locale" json:"locale"`

	Title    string `toml:"title" yaml:"title" json:"title"`
	Subtitle string `toml:"subtitle" yaml:"subtitle" json:"subtitle"`
	Legend   string `toml:"legend" yaml:"legend" json:"legend"`

	Colors Colors `toml:"colors" yaml:"colors" json:"colors"`
}

// Colors are CSS color strings like "#e2e8f0", "slategray" or
// "rgba(99, 102, 241, 0.3)".
type Colors struct {
	Background   string `toml:"background" yaml:"background" json:"background"`
	Grid         string `toml:"grid" yaml:"grid" json:"grid"`
	Text         string `toml:"text" yaml:"text" json:"text"`
	Line         string `toml:"line" yaml:"line" json:"line"`
	FillStart    string `toml:"fill_start" yaml:"fill_start" json:"fill_start"`
	FillEnd      string `toml:"fill_end" yaml:"fill_end" json:"fill_end"`
	MarkerFill   string `toml:"marker_fill" yaml:"marker_fill" json:"marker_fill"`
	MarkerStroke string `toml:"marker_stroke" yaml:"marker_stroke" json:"marker_stroke"`
}

// Load reads the chart file path.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(b, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// Parse decodes b in the given format: "toml", "yaml", "yml" or "json".
// Unknown keys are an error in all formats.
func Parse(b []byte, format string) (*File, error) {
	f := &File{}
	var err error
	switch strings.ToLower(format) {
	case "toml":
		err = toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(f)
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err = dec.Decode(f); errors.Is(err, io.EOF) {
			err = nil // empty document
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(f)
	default:
		return nil, fmt.Errorf("%w %q", ErrFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", format, err)
	}
	return f, nil
}

// Size returns the container size with defaults for unset values.
func (f *File) Size() chart.Size {
	sz := chart.Size{Width: f.Width, Height: f.Height, DPR: f.DPR}
	if sz.Width == 0 {
		sz.Width = DefaultWidth
	}
	if sz.Height == 0 {
		sz.Height = DefaultHeight
	}
	if sz.DPR == 0 {
		sz.DPR = 1
	}
	return sz
}

// DataPath returns the path of the CSV file in Data or "".
func (f *File) DataPath() string {
	if f.Data == "" || filepath.IsAbs(f.Data) {
		return f.Data
	}
	return filepath.Join(f.dir, f.Data)
}

// DataSeries returns the series of f: the CSV file in Data, the inline
// series or, if neither is given, the demo series. Every call returns a
// new Series.
func (f *File) DataSeries() (*data.Series, error) {
	switch {
	case f.Data != "":
		return LoadCSV(f.DataPath())
	case f.Series != nil:
		return data.New(f.Series.Labels, f.Series.Values), nil
	}
	return data.Growth(), nil
}

// ChartStyle returns the style described by f. It fails for unknown
// fonts, locales or colors and for styles which cannot be drawn.
func (f *File) ChartStyle() (*linechart.Style, error) {
	cs := f.Style
	size := vg.Length(cs.FontSize)
	if size <= 0 {
		size = DefaultFontSize
	}
	sty := linechart.DefaultStyle(size)

	if cs.Font != "" {
		if err := sty.SetFont(cs.Font, size); err != nil {
			return nil, err
		}
	}
	if p := cs.Padding; p != nil {
		sty.Padding = linechart.Padding{Top: p.Top, Right: p.Right, Bottom: p.Bottom, Left: p.Left}
	}
	if cs.GridLines != 0 {
		sty.Grid.Lines = cs.GridLines
	}
	if cs.StrokeWidth != 0 {
		sty.Line.Width = vg.Length(cs.StrokeWidth)
	}
	if cs.MarkerRadius != 0 {
		sty.Marker.Radius = vg.Length(cs.MarkerRadius)
	}
	if cs.MarkerStrokeWidth != 0 {
		sty.Marker.Stroke.Width = vg.Length(cs.MarkerStrokeWidth)
	}
	if cs.Locale != "" {
		tag, err := language.Parse(cs.Locale)
		if err != nil {
			return nil, fmt.Errorf("config: locale %q: %w", cs.Locale, err)
		}
		sty.Grid.Locale = tag
	}
	sty.Header.Title = cs.Title
	sty.Header.Subtitle = cs.Subtitle
	sty.Header.Legend = cs.Legend

	if err := cs.Colors.apply(&sty); err != nil {
		return nil, err
	}
	if err := sty.Validate(); err != nil {
		return nil, err
	}
	return &sty, nil
}

func (c Colors) apply(sty *linechart.Style) error {
	set := []struct {
		css string
		to  []*color.Color
	}{
		{c.Background, []*color.Color{&sty.Background}},
		{c.Grid, []*color.Color{&sty.Grid.Color}},
		{c.Text, []*color.Color{
			&sty.Grid.Label.Color, &sty.XAxis.Label.Color,
			&sty.Header.SubtitleStyle.Color, &sty.Header.LegendStyle.Color,
		}},
		{c.Line, []*color.Color{&sty.Line.Color, &sty.Marker.Stroke.Color}},
		{c.FillStart, []*color.Color{&sty.Area.Top}},
		{c.FillEnd, []*color.Color{&sty.Area.Bottom}},
		{c.MarkerFill, []*color.Color{&sty.Marker.Fill}},
		{c.MarkerStroke, []*color.Color{&sty.Marker.Stroke.Color}},
	}
	for _, s := range set {
		if s.css == "" {
			continue
		}
		col, err := ParseColor(s.css)
		if err != nil {
			return err
		}
		for _, to := range s.to {
			*to = col
		}
	}
	return nil
}

// ParseColor parses a CSS color.
func ParseColor(css string) (color.Color, error) {
	c, err := csscolorparser.Parse(css)
	if err != nil {
		return nil, fmt.Errorf("config: color %q: %w", css, err)
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
