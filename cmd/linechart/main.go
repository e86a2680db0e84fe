// Command linechart renders line charts from chart files.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vdobler/linechart/log"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "linechart",
		Short: "Render time-series line charts",
		Long: `linechart renders a single series as a line chart with a gradient area,
point markers, a value grid and x-axis labels.

Charts are described by chart files in TOML, YAML or JSON. Without a chart
file the default style and a demo series are used.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lg := log.New(cmd.ErrOrStderr(), verbose)
			cmd.SetContext(log.Set(cmd.Context(), &lg))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every redraw")
	root.AddCommand(newRenderCmd(), newWatchCmd())
	return root
}
