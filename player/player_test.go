package player_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/unwind/celebrate"
	"github.com/ayoisaiah/unwind/countdown"
	"github.com/ayoisaiah/unwind/internal/content"
	"github.com/ayoisaiah/unwind/internal/testutil"
	"github.com/ayoisaiah/unwind/player"
)

const frame = 16 * time.Millisecond

type recorder struct {
	completed []player.Session
	bursts    int
}

func (r *recorder) Celebrate(celebrate.Burst) {
	r.bursts++
}

func newController(
	clock *testutil.Clock,
	rec *recorder,
	reducedMotion bool,
) *player.Controller {
	return player.New(player.Options{
		Clock:         clock,
		Celebrator:    rec,
		ReducedMotion: reducedMotion,
		OnComplete: func(s player.Session) {
			rec.completed = append(rec.completed, s)
		},
	})
}

// drive samples loop every frame until it stops and returns the elapsed time.
func drive(
	clock *testutil.Clock,
	c *player.Controller,
	loop *countdown.Loop,
	limit time.Duration,
) time.Duration {
	var waited time.Duration

	for waited < limit {
		clock.Advance(frame)
		waited += frame

		if !c.Sample(loop) {
			break
		}
	}

	return waited
}

func activity(key string, secs int) content.Activity {
	return content.Activity{
		Key:       key,
		Title:     key,
		Duration:  secs,
		Category:  content.Calm,
		Animation: content.AnimationPulse,
	}
}

func TestLifecycle(t *testing.T) {
	clock := testutil.NewClock()
	rec := &recorder{}
	c := newController(clock, rec, false)

	assert.Equal(t, player.Closed, c.Phase())
	assert.False(t, c.Snapshot().IsOpen)

	_, ok := c.Start()
	assert.False(t, ok, "cannot start without an activity")

	c.Open(activity("a", 5))

	snap := c.Snapshot()
	assert.True(t, snap.IsOpen)
	assert.Equal(t, player.Idle, snap.Phase)
	assert.Equal(t, 5, snap.Remaining)
	assert.Equal(t, "a", snap.Activity.Key)

	loop, ok := c.Start()
	require.True(t, ok)
	assert.Equal(t, player.Running, c.Phase())

	_, ok = c.Start()
	assert.False(t, ok, "already running")

	clock.Advance(2 * time.Second)
	c.Pause()
	assert.Equal(t, player.Paused, c.Phase())
	assert.False(t, loop.Active(), "pause cancels the loop")
	assert.False(t, c.Sample(loop))

	c.Close()
	assert.Equal(t, player.Closed, c.Phase())
	assert.False(t, c.Snapshot().IsOpen)

	_, open := c.Session()
	assert.False(t, open)
}

func TestCompletionFiresOnce(t *testing.T) {
	clock := testutil.NewClock()
	rec := &recorder{}
	c := newController(clock, rec, false)

	c.Open(activity("a", 3))
	loop, _ := c.Start()

	waited := drive(clock, c, loop, time.Minute)

	assert.GreaterOrEqual(t, waited, 3*time.Second)
	assert.Less(t, waited, 3*time.Second+frame)
	assert.Equal(t, player.Completed, c.Phase())
	assert.Equal(t, 0, c.Snapshot().Remaining)
	require.Len(t, rec.completed, 1)
	assert.Equal(t, "a", rec.completed[0].Activity.Key)
	assert.NotEmpty(t, rec.completed[0].ID)
	assert.Equal(t, 1, rec.bursts)

	assert.False(t, c.Sample(loop))

	_, ok := c.Start()
	assert.False(t, ok, "a completed session cannot restart")
	assert.Len(t, rec.completed, 1)
}

func TestPauseResumeReachesZeroAtDuration(t *testing.T) {
	clock := testutil.NewClock()
	rec := &recorder{}
	c := newController(clock, rec, false)

	c.Open(activity("a", 10))
	loop, _ := c.Start()

	drive(clock, c, loop, 4*time.Second)
	c.Pause()

	clock.Advance(30 * time.Second)
	assert.Equal(t, 6, c.Snapshot().Remaining)

	loop, ok := c.Start()
	require.True(t, ok)

	waited := drive(clock, c, loop, time.Minute)

	assert.GreaterOrEqual(t, waited, 6*time.Second-frame)
	assert.LessOrEqual(t, waited, 6*time.Second+frame)
	assert.Len(t, rec.completed, 1)
}

func TestReopenCancelsStaleLoop(t *testing.T) {
	clock := testutil.NewClock()
	rec := &recorder{}
	c := newController(clock, rec, false)

	c.Open(activity("first", 2))
	stale, _ := c.Start()

	clock.Advance(time.Second)
	c.Sample(stale)

	c.Open(activity("second", 4))

	assert.False(t, stale.Active())
	assert.Equal(t, player.Idle, c.Phase())
	assert.Equal(t, 4, c.Snapshot().Remaining)

	clock.Advance(10 * time.Second)
	assert.False(t, c.Sample(stale))
	assert.Empty(t, rec.completed, "stale session never completes")

	loop, _ := c.Start()
	drive(clock, c, loop, time.Minute)

	require.Len(t, rec.completed, 1)
	assert.Equal(t, "second", rec.completed[0].Activity.Key)
}

func TestCloseAndReopenResetsDuration(t *testing.T) {
	clock := testutil.NewClock()
	rec := &recorder{}
	c := newController(clock, rec, false)

	a := activity("a", 30)

	c.Open(a)
	loop, _ := c.Start()
	drive(clock, c, loop, 10*time.Second)

	c.Close()
	assert.False(t, loop.Active())

	c.Open(a)
	assert.Equal(t, 30, c.Snapshot().Remaining)
	assert.Equal(t, player.Idle, c.Phase())
}

func TestReducedMotionSkipsCelebration(t *testing.T) {
	clock := testutil.NewClock()
	rec := &recorder{}
	c := newController(clock, rec, true)

	c.Open(activity("a", 1))
	loop, _ := c.Start()
	drive(clock, c, loop, time.Minute)

	assert.Zero(t, rec.bursts)
	assert.Len(t, rec.completed, 1)
}

func TestCloseFromCompletionCallback(t *testing.T) {
	clock := testutil.NewClock()

	var c *player.Controller

	var completions int

	c = player.New(player.Options{
		Clock: clock,
		OnComplete: func(player.Session) {
			completions++
			c.Close()
		},
	})

	c.Open(activity("a", 1))
	loop, _ := c.Start()
	drive(clock, c, loop, time.Minute)

	assert.Equal(t, 1, completions)
	assert.Equal(t, player.Closed, c.Phase())
	assert.False(t, c.Snapshot().IsOpen)
}

func TestToggle(t *testing.T) {
	clock := testutil.NewClock()
	c := newController(clock, &recorder{}, false)

	c.Open(activity("a", 10))

	loop, started := c.Toggle()
	assert.True(t, started)
	assert.True(t, loop.Active())

	_, started = c.Toggle()
	assert.False(t, started)
	assert.Equal(t, player.Paused, c.Phase())
	assert.Nil(t, c.Loop())
}

func TestInvalidDurationUsesDefault(t *testing.T) {
	c := newController(testutil.NewClock(), &recorder{}, false)

	c.Open(activity("a", 0))

	assert.Equal(t, content.DefaultDuration, c.Snapshot().Remaining)
}

func TestAnimation(t *testing.T) {
	c := newController(testutil.NewClock(), &recorder{}, false)

	assert.Equal(t, player.GradientStrip, c.Animation())

	c.Open(activity("a", 10))
	assert.Equal(t, player.PulsingCircle, c.Animation())

	g := activity("b", 10)
	g.Animation = "unknown"
	c.Open(g)
	assert.Equal(t, player.GradientStrip, c.Animation())
}
