// Package player owns the lifecycle of the activity overlay: opening an
// activity, driving its countdown, and reporting completion exactly once.
package player

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/unwind/celebrate"
	"github.com/ayoisaiah/unwind/countdown"
	"github.com/ayoisaiah/unwind/internal/content"
)

// Phase is a step of the overlay lifecycle.
type Phase int

const (
	Closed Phase = iota
	Idle
	Running
	Paused
	Completed
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case Idle:
		return "ready"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	}

	return "unknown"
}

// Session is one run of the overlay against a single activity.
type Session struct {
	OpenedAt time.Time
	ID       string
	Activity content.Activity
}

// Snapshot is a read-only view of the controller.
type Snapshot struct {
	Activity  content.Activity
	Phase     Phase
	Remaining int
	Total     int
	Progress  float64
	IsOpen    bool
}

// Options configures a Controller.
type Options struct {
	Clock      countdown.Clock
	Celebrator celebrate.Celebrator
	// OnComplete runs once per session when its countdown reaches zero.
	OnComplete    func(Session)
	Burst         celebrate.Burst
	ReducedMotion bool
}

// Controller mediates between the countdown and its completion side
// effects. It is driven from a single goroutine.
type Controller struct {
	opts    Options
	timer   *countdown.Timer
	session *Session
	loop    *countdown.Loop
	phase   Phase
	// notified is set once OnComplete has run for the current session.
	notified bool
}

// New returns a closed controller.
func New(opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = countdown.System
	}

	if opts.Burst.Count == 0 {
		opts.Burst = celebrate.Default
	}

	c := &Controller{
		opts:  opts,
		phase: Closed,
	}

	c.timer = countdown.New(opts.Clock, c.expire)

	return c
}

// cancelLoop stops any in-flight sampling loop.
func (c *Controller) cancelLoop() {
	if c.loop != nil {
		c.loop.Cancel()
		c.loop = nil
	}
}

// Open starts a new session for a. Any session already open is discarded
// without completing.
func (c *Controller) Open(a content.Activity) {
	c.cancelLoop()

	c.session = &Session{
		ID:       uuid.NewString(),
		Activity: a,
		OpenedAt: c.opts.Clock.Now(),
	}

	c.timer.Reset(a.Seconds())
	c.phase = Idle
	c.notified = false

	slog.Debug(
		"session opened",
		slog.String("id", c.session.ID),
		slog.String("activity", a.Key),
	)
}

// Start begins or resumes the countdown and returns the handle of the new
// sampling loop. It returns false when the session is not ready or paused.
func (c *Controller) Start() (*countdown.Loop, bool) {
	if c.phase != Idle && c.phase != Paused {
		return nil, false
	}

	c.cancelLoop()

	c.timer.Start()
	c.phase = Running
	c.loop = countdown.NewLoop()

	return c.loop, true
}

// Pause freezes a running countdown and cancels its loop.
func (c *Controller) Pause() {
	if c.phase != Running {
		return
	}

	c.cancelLoop()
	c.timer.Pause()
	c.phase = Paused
}

// Toggle pauses a running countdown or starts a ready or paused one. The
// returned loop is non-nil only when the countdown was started.
func (c *Controller) Toggle() (*countdown.Loop, bool) {
	if c.phase == Running {
		c.Pause()

		return nil, false
	}

	return c.Start()
}

// Close ends the session from any phase.
func (c *Controller) Close() {
	c.cancelLoop()

	if c.session != nil {
		slog.Debug(
			"session closed",
			slog.String("id", c.session.ID),
			slog.String("phase", c.phase.String()),
		)
	}

	c.session = nil
	c.phase = Closed
	c.timer.Reset(countdown.DefaultSeconds)
}

// Sample advances the countdown for one frame of loop. It reports whether
// the caller should schedule another frame. Frames of a stale or cancelled
// loop are ignored.
func (c *Controller) Sample(loop *countdown.Loop) bool {
	if loop == nil || loop != c.loop || !loop.Active() {
		return false
	}

	c.timer.Sample()

	return c.phase == Running && c.loop == loop
}

// expire runs when the countdown reaches zero.
func (c *Controller) expire() {
	if c.phase != Running || c.session == nil {
		return
	}

	c.cancelLoop()
	c.phase = Completed

	if !c.opts.ReducedMotion && c.opts.Celebrator != nil {
		c.opts.Celebrator.Celebrate(c.opts.Burst)
	}

	if c.notified {
		return
	}

	c.notified = true

	sess := *c.session

	slog.Info(
		"session completed",
		slog.String("id", sess.ID),
		slog.String("activity", sess.Activity.Key),
	)

	if c.opts.OnComplete != nil {
		c.opts.OnComplete(sess)
	}
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Session returns the open session, if any.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}

	return *c.session, true
}

// Loop returns the active sampling loop, or nil.
func (c *Controller) Loop() *countdown.Loop {
	return c.loop
}

// Snapshot reports the current state.
func (c *Controller) Snapshot() Snapshot {
	if c.session == nil {
		return Snapshot{Phase: Closed}
	}

	return Snapshot{
		IsOpen:    true,
		Activity:  c.session.Activity,
		Phase:     c.phase,
		Remaining: c.timer.Display(),
		Total:     c.session.Activity.Seconds(),
		Progress:  c.timer.Progress(),
	}
}

// Animation returns the visual for the open activity.
func (c *Controller) Animation() Visual {
	if c.session == nil {
		return GradientStrip
	}

	return VisualFor(c.session.Activity.Animation)
}
