package main

import (
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vdobler/linechart/chart"
	"github.com/vdobler/linechart/data"
	"github.com/vdobler/linechart/log"
)

func newWatchCmd() *cobra.Command {
	src := &source{}
	var (
		out      string
		delay    time.Duration
		debounce time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Render a chart and redraw it whenever its files change",
		Long: `watch keeps a chart alive and rewrites the output file whenever the chart
file or the data file changes. The first frame is drawn after --delay, the
time a dashboard takes to load its data.`,
		Example: `  linechart watch -c chart.toml -o growth.png`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := &watcher{src: src, delay: delay, debounce: debounce}
			return w.run(cmd, out)
		},
	}
	src.addFlags(cmd)
	cmd.Flags().StringVarP(&out, "output", "o", "chart.png", "Output file; the extension selects the format")
	cmd.Flags().DurationVar(&delay, "delay", 600*time.Millisecond, "Delay before the first frame")
	cmd.Flags().DurationVar(&debounce, "debounce", 100*time.Millisecond, "Quiet time after a change before reloading")
	return cmd
}

type watcher struct {
	src      *source
	delay    time.Duration
	debounce time.Duration

	lg      *zerolog.Logger
	out     *output
	chart   *chart.Chart
	watched map[string]bool
}

func (w *watcher) run(cmd *cobra.Command, out string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	w.lg = log.Get(ctx)

	l, err := w.src.load()
	if err != nil {
		return err
	}
	if w.out, err = newOutput(out); err != nil {
		return err
	}
	defer w.out.dispose()
	if w.chart, err = chart.New(w.out.target(), l.style, chart.WithLogger(*w.lg)); err != nil {
		return err
	}
	defer w.chart.Dispose()

	// Not drawn before the ready timer fires.
	w.apply(l.series, l.file.Size())

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()
	if err := w.watch(fsw, l.files(w.src)); err != nil {
		return err
	}

	ready := time.NewTimer(w.delay)
	defer ready.Stop()
	var reload <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.lg.Info().Msg("stopped")
			return nil

		case <-ready.C:
			frames := w.chart.Frames()
			if err := w.chart.Ready(); err != nil {
				w.lg.Warn().Err(err).Msg("first frame")
			}
			w.written(frames)

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.watched[filepath.Clean(ev.Name)] || ev.Op == fsnotify.Chmod {
				continue
			}
			w.lg.Debug().Str("file", ev.Name).Stringer("op", ev.Op).Msg("changed")
			reload = time.After(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.lg.Error().Err(err).Msg("watch")

		case <-reload:
			reload = nil
			l, err := w.src.load()
			if err != nil {
				w.lg.Warn().Err(err).Msg("reload failed, keeping last chart")
				continue
			}
			if err := w.chart.SetStyle(l.style); err != nil {
				w.lg.Warn().Err(err).Msg("style rejected")
			}
			frames := w.chart.Frames()
			w.apply(l.series, l.file.Size())
			w.written(frames)
			if err := w.watch(fsw, l.files(w.src)); err != nil {
				w.lg.Warn().Err(err).Msg("watch")
			}
		}
	}
}

// apply hands a loaded series and size to the chart. Both are triggers if
// they changed.
func (w *watcher) apply(s *data.Series, sz chart.Size) {
	if err := w.chart.SetSeries(s); err != nil && !errors.Is(err, chart.ErrDisposed) {
		w.lg.Warn().Err(err).Msg("data change")
	}
	if err := w.chart.Resize(w.out.size(sz)); err != nil && !errors.Is(err, chart.ErrDisposed) {
		w.lg.Warn().Err(err).Msg("resize")
	}
}

// written writes the output if the chart was redrawn since frames.
func (w *watcher) written(frames int) {
	if w.chart.Frames() == frames {
		return
	}
	if err := w.out.write(); err != nil {
		w.lg.Error().Err(err).Msg("write")
		return
	}
	w.lg.Info().Str("file", w.out.path).Int("frame", w.chart.Frames()).Msg("chart written")
}

// watch watches the directories of files. Editors often replace a file
// on save, so the directory is watched and events are filtered by name.
func (w *watcher) watch(fsw *fsnotify.Watcher, files []string) error {
	watched := make(map[string]bool, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		watched[abs] = true
		if err := fsw.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}
	w.watched = watched
	return nil
}
