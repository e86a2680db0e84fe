package main

import (
	"github.com/spf13/cobra"

	"github.com/vdobler/linechart/chart"
	"github.com/vdobler/linechart/log"
)

func newRenderCmd() *cobra.Command {
	src := &source{}
	var out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart once",
		Example: `  linechart render -o growth.png --dpr 2
  linechart render -c chart.toml --data users.csv -o users.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd, src, out)
		},
	}
	src.addFlags(cmd)
	cmd.Flags().StringVarP(&out, "output", "o", "chart.png", "Output file; the extension selects the format (png, jpg, tif, svg, pdf or eps)")
	return cmd
}

func render(cmd *cobra.Command, src *source, out string) error {
	lg := log.Get(cmd.Context())

	l, err := src.load()
	if err != nil {
		return err
	}
	o, err := newOutput(out)
	if err != nil {
		return err
	}
	defer o.dispose()

	c, err := chart.New(o.target(), l.style, chart.WithLogger(*lg))
	if err != nil {
		return err
	}
	defer c.Dispose()

	if err := c.SetSeries(l.series); err != nil {
		return err
	}
	if err := c.Resize(o.size(l.file.Size())); err != nil {
		return err
	}
	if err := c.Ready(); err != nil {
		return err
	}
	if err := l.series.Validate(); err != nil {
		lg.Warn().Err(err).Msg("series drawn without line")
	}
	if err := o.write(); err != nil {
		return err
	}
	lg.Info().Str("file", out).Msg("chart written")
	return nil
}
