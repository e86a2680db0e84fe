package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg/recorder"

	"github.com/vdobler/linechart"
	"github.com/vdobler/linechart/data"
)

// recSurface records all drawing operations.
type recSurface struct {
	recorder.Canvas
	cleared []color.Color
}

func (s *recSurface) Clear(col color.Color) { s.cleared = append(s.cleared, col) }

// fakeTarget counts the surfaces it hands out.
type fakeTarget struct {
	err       error
	viewports []linechart.Viewport
	last      *recSurface
	onSurface func()
}

func (t *fakeTarget) Surface(vp linechart.Viewport) (linechart.Surface, error) {
	t.viewports = append(t.viewports, vp)
	if t.onSurface != nil {
		t.onSurface()
	}
	if t.err != nil {
		return nil, t.err
	}
	t.last = &recSurface{}
	return t.last, nil
}

func (t *fakeTarget) calls() int { return len(t.viewports) }

func newChart(t *testing.T, target linechart.Target) *Chart {
	t.Helper()
	sty := linechart.DefaultStyle(12)
	c, err := New(target, &sty)
	require.NoError(t, err)
	return c
}

func TestChartWaitsForReady(t *testing.T) {
	target := &fakeTarget{}
	c := newChart(t, target)

	require.NoError(t, c.SetSeries(data.Growth()))
	require.NoError(t, c.Resize(Size{600, 300, 1}))
	assert.Equal(t, 0, target.calls())

	require.NoError(t, c.Ready())
	assert.Equal(t, 1, target.calls())
	assert.Equal(t, 1, c.Frames())
	assert.Equal(t, 600.0, target.viewports[0].Width)

	require.NoError(t, c.Ready())
	assert.Equal(t, 1, target.calls(), "second Ready")
}

func TestChartTriggers(t *testing.T) {
	target := &fakeTarget{}
	c := newChart(t, target)
	s := data.Growth()
	require.NoError(t, c.SetSeries(s))
	require.NoError(t, c.Resize(Size{600, 300, 1}))
	require.NoError(t, c.Ready())

	steps := []struct {
		name  string
		do    func() error
		calls int
	}{
		{"same series", func() error { return c.SetSeries(s) }, 1},
		{"same size", func() error { return c.Resize(Size{600, 300, 1}) }, 1},
		{"equal but new series", func() error { return c.SetSeries(data.Growth()) }, 2},
		{"new width", func() error { return c.Resize(Size{800, 300, 1}) }, 3},
		{"new dpr", func() error { return c.Resize(Size{800, 300, 2}) }, 4},
		{"style", func() error {
			sty := linechart.DefaultStyle(14)
			return c.SetStyle(&sty)
		}, 4},
		{"nil series", func() error { return c.SetSeries(nil) }, 5},
	}
	for _, step := range steps {
		require.NoError(t, step.do(), step.name)
		assert.Equal(t, step.calls, target.calls(), step.name)
	}
	assert.Equal(t, 5, c.Frames())
	assert.Equal(t, Idle, c.State())
}

func TestChartRepaintsCompletely(t *testing.T) {
	target := &fakeTarget{}
	c := newChart(t, target)
	require.NoError(t, c.SetSeries(data.Growth()))
	require.NoError(t, c.Resize(Size{600, 300, 1}))
	require.NoError(t, c.Ready())
	first := target.last

	require.NoError(t, c.Resize(Size{601, 300, 1}))
	second := target.last
	require.NotSame(t, first, second)

	assert.Len(t, second.cleared, 1)
	assert.Equal(t, len(first.Actions), len(second.Actions))
}

func TestChartDispose(t *testing.T) {
	target := &fakeTarget{}
	c := newChart(t, target)
	require.NoError(t, c.Resize(Size{600, 300, 1}))
	require.NoError(t, c.Ready())
	c.Dispose()

	assert.ErrorIs(t, c.Resize(Size{700, 300, 1}), ErrDisposed)
	assert.ErrorIs(t, c.SetSeries(data.Growth()), ErrDisposed)
	assert.ErrorIs(t, c.Ready(), ErrDisposed)
	assert.Equal(t, 1, target.calls())
}

func TestChartWithoutSurface(t *testing.T) {
	target := &fakeTarget{err: fmt.Errorf("detached: %w", linechart.ErrNoSurface)}
	c := newChart(t, target)
	require.NoError(t, c.Resize(Size{600, 300, 1}))

	err := c.Ready()
	assert.ErrorIs(t, err, linechart.ErrNoSurface)
	assert.Equal(t, 0, c.Frames())
	assert.Equal(t, Idle, c.State())

	// The next trigger tries again.
	target.err = nil
	require.NoError(t, c.SetSeries(data.Growth()))
	assert.Equal(t, 1, c.Frames())
	assert.Equal(t, 2, target.calls())
}

func TestChartQueuesNestedTriggers(t *testing.T) {
	target := &fakeTarget{}
	c := newChart(t, target)
	require.NoError(t, c.Resize(Size{600, 300, 1}))

	var states []State
	target.onSurface = func() {
		states = append(states, c.State())
		if target.calls() == 1 {
			require.NoError(t, c.Resize(Size{300, 150, 1}))
			assert.Equal(t, 1, target.calls(), "nested trigger ran immediately")
		}
	}
	require.NoError(t, c.Ready())

	assert.Equal(t, 2, target.calls())
	assert.Equal(t, []State{Rendering, Rendering}, states)
	assert.Equal(t, 300.0, target.viewports[1].Width)
	assert.Equal(t, Idle, c.State())
}

func TestChartRejectsBadStyle(t *testing.T) {
	sty := linechart.DefaultStyle(12)
	sty.Grid.Lines = 0
	_, err := New(&fakeTarget{}, &sty)
	assert.Error(t, err)

	good := linechart.DefaultStyle(12)
	c, err := New(&fakeTarget{}, &good)
	require.NoError(t, err)
	assert.Error(t, c.SetStyle(&sty))
}

func TestChartLogsRedraws(t *testing.T) {
	buf := &bytes.Buffer{}
	target := &fakeTarget{}
	sty := linechart.DefaultStyle(12)
	c, err := New(target, &sty, WithLogger(zerolog.New(buf).Level(zerolog.DebugLevel)))
	require.NoError(t, err)

	require.NoError(t, c.Resize(Size{600, 300, 2}))
	require.NoError(t, c.Ready())
	assert.Contains(t, buf.String(), `"trigger":"mount"`)
	assert.Contains(t, buf.String(), `"message":"redraw"`)
	assert.Contains(t, buf.String(), `"invalid"`, "nil series is logged as invalid")

	target.err = linechart.ErrNoSurface
	err = c.SetSeries(data.Growth())
	assert.True(t, errors.Is(err, linechart.ErrNoSurface))
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestStringers(t *testing.T) {
	tests := []struct {
		s    fmt.Stringer
		want string
	}{
		{Mount, "mount"},
		{DataChange, "data-change"},
		{Resize, "resize"},
		{Trigger(7), "Trigger(7)"},
		{Trigger(-1), "Trigger(-1)"},
		{Idle, "idle"},
		{Rendering, "rendering"},
		{State(5), "State(5)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.s.String())
	}
}
