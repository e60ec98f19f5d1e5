package countdown_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/unwind/countdown"
	"github.com/ayoisaiah/unwind/internal/testutil"
)

const frame = 16 * time.Millisecond

// runUntilExpired samples the timer every frame and returns the elapsed time
// at which it expired.
func runUntilExpired(
	t *testing.T,
	clock *testutil.Clock,
	timer *countdown.Timer,
	limit time.Duration,
) time.Duration {
	t.Helper()

	var waited time.Duration

	last := timer.Sample()

	for !timer.Expired() {
		require.Less(t, waited, limit, "timer did not expire in time")

		clock.Advance(frame)
		waited += frame

		got := timer.Sample()
		require.LessOrEqual(t, got, last, "display must never increase")

		last = got
	}

	return waited
}

func TestRunToCompletion(t *testing.T) {
	clock := testutil.NewClock()

	var fired int

	timer := countdown.New(clock, func() { fired++ })
	timer.Reset(3)

	assert.Equal(t, 3, timer.Display())

	timer.Start()

	waited := runUntilExpired(t, clock, timer, 10*time.Second)

	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, timer.Sample())
	assert.GreaterOrEqual(t, waited, 3*time.Second)
	assert.Less(t, waited, 3*time.Second+frame)

	clock.Advance(5 * time.Second)
	timer.Sample()
	timer.Start()
	timer.Sample()

	assert.Equal(t, 1, fired, "expiry fires once per reset")
}

func TestDisplayUsesCeiling(t *testing.T) {
	clock := testutil.NewClock()
	timer := countdown.New(clock, nil)
	timer.Reset(2)
	timer.Start()

	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, 2, timer.Sample())

	clock.Advance(990 * time.Millisecond)
	assert.Equal(t, 1, timer.Sample())

	clock.Advance(999 * time.Millisecond)
	assert.Equal(t, 1, timer.Sample())

	clock.Advance(time.Millisecond)
	assert.Equal(t, 0, timer.Sample())
	assert.True(t, timer.Expired())
}

func TestPauseResumePreservesRemaining(t *testing.T) {
	clock := testutil.NewClock()

	var fired int

	timer := countdown.New(clock, func() { fired++ })
	timer.Reset(10)
	timer.Start()

	clock.Advance(4 * time.Second)
	timer.Pause()

	clock.Advance(time.Hour)
	assert.Equal(t, 6, timer.Sample(), "paused time does not count")

	timer.Resume()
	clock.Advance(2 * time.Second)
	timer.Pause()
	clock.Advance(time.Minute)
	timer.Resume()

	waited := runUntilExpired(t, clock, timer, 10*time.Second)

	assert.Equal(t, 1, fired)
	assert.GreaterOrEqual(t, waited, 4*time.Second)
	assert.Less(t, waited, 4*time.Second+frame)
}

func TestResetDiscardsProgress(t *testing.T) {
	clock := testutil.NewClock()
	timer := countdown.New(clock, nil)
	timer.Reset(30)
	timer.Start()

	clock.Advance(12 * time.Second)
	timer.Reset(45)

	assert.False(t, timer.Running())
	assert.Equal(t, 45, timer.Display())
	assert.Equal(t, 45*time.Second, timer.Total())
}

func TestInvalidDurationDefaults(t *testing.T) {
	timer := countdown.New(testutil.NewClock(), nil)

	timer.Reset(0)
	assert.Equal(t, countdown.DefaultSeconds, timer.Display())

	timer.Reset(-10)
	assert.Equal(t, countdown.DefaultSeconds, timer.Display())
}

func TestLoopCancel(t *testing.T) {
	var nilLoop *countdown.Loop

	assert.False(t, nilLoop.Active())
	nilLoop.Cancel()

	l := countdown.NewLoop()
	assert.True(t, l.Active())
	assert.NotZero(t, l.ID())

	l.Cancel()
	l.Cancel()
	assert.False(t, l.Active())
	assert.NotEqual(t, l.ID(), countdown.NewLoop().ID())
}

func TestDriveStopsWhenSampleReturnsFalse(t *testing.T) {
	loop := countdown.NewLoop()

	var calls int

	err := countdown.Drive(context.Background(), loop, time.Millisecond, func() bool {
		calls++
		return calls < 3
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDriveStopsWhenLoopCancelled(t *testing.T) {
	loop := countdown.NewLoop()

	var calls int

	err := countdown.Drive(context.Background(), loop, time.Millisecond, func() bool {
		calls++
		loop.Cancel()

		return true
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDriveHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop := countdown.NewLoop()

	err := countdown.Drive(ctx, loop, time.Hour, func() bool { return true })

	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, loop.Active())
}

func TestFrameInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, countdown.FrameInterval(60))
	assert.Equal(t, time.Second/30, countdown.FrameInterval(0))
}
