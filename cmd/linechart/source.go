package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vdobler/linechart"
	"github.com/vdobler/linechart/chart"
	"github.com/vdobler/linechart/config"
	"github.com/vdobler/linechart/data"
)

// source are the inputs of a chart: a chart file and command line
// overrides.
type source struct {
	config string
	data   string
	width  float64
	height float64
	dpr    float64
}

func (src *source) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&src.config, "config", "c", "", "Chart file (.toml, .yaml, .yml or .json)")
	cmd.Flags().StringVar(&src.data, "data", "", "CSV file with label,value rows")
	cmd.Flags().Float64Var(&src.width, "width", 0, "Container width in device-independent pixels")
	cmd.Flags().Float64Var(&src.height, "height", 0, "Container height in device-independent pixels")
	cmd.Flags().Float64Var(&src.dpr, "dpr", 0, "Device pixel ratio")
}

type loaded struct {
	file   *config.File
	style  *linechart.Style
	series *data.Series
}

func (src *source) load() (loaded, error) {
	f := &config.File{}
	if src.config != "" {
		var err error
		if f, err = config.Load(src.config); err != nil {
			return loaded{}, err
		}
	}
	if src.data != "" {
		abs, err := filepath.Abs(src.data)
		if err != nil {
			return loaded{}, err
		}
		f.Data = abs
	}
	if src.width > 0 {
		f.Width = src.width
	}
	if src.height > 0 {
		f.Height = src.height
	}
	if src.dpr > 0 {
		f.DPR = src.dpr
	}

	sty, err := f.ChartStyle()
	if err != nil {
		return loaded{}, err
	}
	s, err := f.DataSeries()
	if err != nil {
		return loaded{}, err
	}
	return loaded{file: f, style: sty, series: s}, nil
}

// files returns the files the chart is read from.
func (l loaded) files(src *source) []string {
	var fs []string
	if src.config != "" {
		fs = append(fs, src.config)
	}
	if p := l.file.DataPath(); p != "" {
		fs = append(fs, p)
	}
	return fs
}

// ----------------------------------------------------------------------------
// Output

// output is the file a chart is written to.
type output struct {
	path   string
	format string
	raster *linechart.RasterTarget
	vector *linechart.VectorTarget
}

func newOutput(path string) (*output, error) {
	o := &output{
		path:   path,
		format: strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")),
	}
	switch o.format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		o.raster = linechart.NewRasterTarget()
	case "svg", "pdf", "eps":
		o.vector = &linechart.VectorTarget{Format: o.format}
	default:
		return nil, fmt.Errorf("unsupported output format %q", o.format)
	}
	return o, nil
}

func (o *output) target() linechart.Target {
	if o.raster != nil {
		return o.raster
	}
	return o.vector
}

// size adapts sz to the target. Vector formats are resolution
// independent and always drawn at a device pixel ratio of 1.
func (o *output) size(sz chart.Size) chart.Size {
	if o.vector != nil {
		sz.DPR = 1
	}
	return sz
}

func (o *output) write() error {
	f, err := os.Create(o.path)
	if err != nil {
		return err
	}
	if o.raster != nil {
		err = o.raster.Encode(f, o.format)
	} else {
		_, err = o.vector.WriteTo(f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func (o *output) dispose() {
	if o.raster != nil {
		o.raster.Dispose()
	} else {
		o.vector.Dispose()
	}
}
