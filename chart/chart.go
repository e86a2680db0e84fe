package chart

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vdobler/linechart"
	"github.com/vdobler/linechart/data"
)

// ErrDisposed is returned for triggers arriving after Dispose.
var ErrDisposed = errors.New("chart: disposed")

// Size is the size of the container a chart is shown in.
type Size struct {
	Width, Height float64 // device-independent pixels
	DPR           float64 // device pixel ratio
}

// Trigger is the reason for a redraw.
type Trigger int

const (
	Mount Trigger = iota
	DataChange
	Resize
)

func (t Trigger) String() string {
	switch t {
	case Mount:
		return "mount"
	case DataChange:
		return "data-change"
	case Resize:
		return "resize"
	}
	return fmt.Sprintf("Trigger(%d)", int(t))
}

// State is the state of a Chart.
type State int

const (
	Idle State = iota
	Rendering
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Rendering:
		return "rendering"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Chart keeps a line chart painted on a Target.
//
// Every trigger repaints the whole chart synchronously: nothing of a
// previous pass is kept apart from the last series and the last size,
// which are needed to tell whether a trigger fired at all.
//
// A Chart is not safe for concurrent use; the host must deliver triggers
// one at a time.
type Chart struct {
	target linechart.Target
	style  *linechart.Style
	log    zerolog.Logger

	series   *data.Series
	size     Size
	ready    bool
	disposed bool

	state   State
	pending []Trigger
	frames  int
}

// Option configures a Chart.
type Option func(*Chart)

// WithLogger makes the chart log its passes to lg.
func WithLogger(lg zerolog.Logger) Option {
	return func(c *Chart) { c.log = lg }
}

// New returns a chart painting onto t in style sty. It fails if sty
// cannot be drawn.
func New(t linechart.Target, sty *linechart.Style, opts ...Option) (*Chart, error) {
	if err := sty.Validate(); err != nil {
		return nil, err
	}
	c := &Chart{
		target: t,
		style:  sty,
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Ready signals that the data is ready and triggers the first paint.
// Later calls do nothing.
func (c *Chart) Ready() error {
	if c.disposed {
		return ErrDisposed
	}
	if c.ready {
		return nil
	}
	c.ready = true
	return c.trigger(Mount)
}

// SetSeries triggers a redraw if s is not the series drawn last.
func (c *Chart) SetSeries(s *data.Series) error {
	if c.disposed {
		return ErrDisposed
	}
	if s == c.series {
		return nil
	}
	c.series = s
	return c.trigger(DataChange)
}

// Resize triggers a redraw if sz differs from the last known size.
func (c *Chart) Resize(sz Size) error {
	if c.disposed {
		return ErrDisposed
	}
	if sz == c.size {
		return nil
	}
	c.size = sz
	return c.trigger(Resize)
}

// SetStyle replaces the style. It is no trigger: the new style is used by
// the next redraw.
func (c *Chart) SetStyle(sty *linechart.Style) error {
	if err := sty.Validate(); err != nil {
		return err
	}
	c.style = sty
	return nil
}

// Dispose detaches c from its target. Later triggers are discarded.
func (c *Chart) Dispose() {
	c.disposed = true
	c.pending = nil
}

// State returns the current state of c.
func (c *Chart) State() State { return c.state }

// Frames returns the number of completed redraws.
func (c *Chart) Frames() int { return c.frames }

// trigger redraws c unless it is waiting for Ready. A trigger raised while
// a redraw is running is run right after it.
func (c *Chart) trigger(t Trigger) error {
	if !c.ready {
		c.log.Debug().Stringer("trigger", t).Msg("not ready, redraw postponed")
		return nil
	}
	if c.state == Rendering {
		c.pending = append(c.pending, t)
		return nil
	}

	var errs []error
	for {
		if err := c.redraw(t); err != nil {
			errs = append(errs, err)
		}
		if len(c.pending) == 0 || c.disposed {
			break
		}
		t, c.pending = c.pending[0], c.pending[1:]
	}
	return errors.Join(errs...)
}

func (c *Chart) redraw(t Trigger) error {
	c.state = Rendering
	defer func() { c.state = Idle }()

	vp := c.style.Viewport(c.size.Width, c.size.Height, c.size.DPR)
	s, err := c.target.Surface(vp)
	if err != nil {
		c.log.Warn().Err(err).Stringer("trigger", t).Msg("no surface, frame skipped")
		return fmt.Errorf("chart: %s: %w", t, err)
	}

	p := Render(s, vp, c.series, c.style)
	c.frames++

	ev := c.log.Debug().
		Stringer("trigger", t).
		Float64("width", vp.Width).
		Float64("height", vp.Height).
		Float64("dpr", vp.DPR).
		Int("points", len(p.Points))
	if p.Invalid != nil {
		ev = ev.AnErr("invalid", p.Invalid)
	}
	ev.Msg("redraw")
	return nil
}
