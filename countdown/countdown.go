// Package countdown converts a duration and a running/paused flag into a
// monotonically decreasing remaining time. Time is sampled from a clock on
// every frame rather than counted in fixed ticks, so a late or dropped frame
// never skews the result.
package countdown

import (
	"time"

	"github.com/ayoisaiah/unwind/internal/timeutil"
)

// DefaultSeconds replaces a duration that is zero or negative.
const DefaultSeconds = 60

// Clock reports the current time. Values returned by time.Now carry a
// monotonic reading, which is what the timer relies on.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System is the wall clock.
var System Clock = systemClock{}

// Timer is a pausable countdown. It is not safe for concurrent use; the
// owning component drives it from a single goroutine.
type Timer struct {
	clock    Clock
	onExpire func()
	started  time.Time
	total    time.Duration
	// elapsed holds the time accumulated by run segments that have ended.
	elapsed time.Duration
	running bool
	expired bool
}

// New returns a stopped timer. onExpire may be nil.
func New(clock Clock, onExpire func()) *Timer {
	if clock == nil {
		clock = System
	}

	t := &Timer{
		clock:    clock,
		onExpire: onExpire,
	}

	t.Reset(DefaultSeconds)

	return t
}

// Reset stops the timer and rearms it for the given number of seconds.
func (t *Timer) Reset(seconds int) {
	if seconds <= 0 {
		seconds = DefaultSeconds
	}

	t.total = time.Duration(seconds) * time.Second
	t.elapsed = 0
	t.started = time.Time{}
	t.running = false
	t.expired = false
}

// Start begins or resumes the countdown. It has no effect if the timer is
// already running or has expired.
func (t *Timer) Start() {
	if t.running || t.expired {
		return
	}

	t.started = t.clock.Now()
	t.running = true
}

// Resume is an alias for Start.
func (t *Timer) Resume() {
	t.Start()
}

// Pause freezes the elapsed time without losing position.
func (t *Timer) Pause() {
	if !t.running {
		return
	}

	t.elapsed += t.segment()
	t.running = false
}

func (t *Timer) segment() time.Duration {
	d := t.clock.Now().Sub(t.started)
	if d < 0 {
		return 0
	}

	return d
}

// Elapsed returns the time counted so far, capped at the total duration.
func (t *Timer) Elapsed() time.Duration {
	e := t.elapsed
	if t.running {
		e += t.segment()
	}

	return min(e, t.total)
}

// Remaining returns the time left before expiry.
func (t *Timer) Remaining() time.Duration {
	return t.total - t.Elapsed()
}

// Display returns the remaining whole seconds, rounded up so the value only
// drops on whole-second boundaries.
func (t *Timer) Display() int {
	return timeutil.CeilSeconds(t.Remaining())
}

// Sample recomputes the remaining time and returns the display value. The
// first sample that observes zero remaining time stops the timer and fires
// onExpire. Later samples do nothing until the next Reset.
func (t *Timer) Sample() int {
	if t.running && t.Remaining() <= 0 {
		t.elapsed = t.total
		t.running = false
		t.expired = true

		if t.onExpire != nil {
			t.onExpire()
		}
	}

	return t.Display()
}

// Total returns the full duration of the countdown.
func (t *Timer) Total() time.Duration {
	return t.total
}

// Running reports whether the countdown is advancing.
func (t *Timer) Running() bool {
	return t.running
}

// Expired reports whether the countdown has reached zero.
func (t *Timer) Expired() bool {
	return t.expired
}

// Progress returns the fraction of the countdown that has elapsed.
func (t *Timer) Progress() float64 {
	return float64(t.Elapsed()) / float64(t.total)
}
