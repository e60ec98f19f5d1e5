package countdown

import (
	"context"
	"sync/atomic"
	"time"
)

var loopSeq atomic.Uint64

// Loop is the handle of a cancellable repeating task. Whoever schedules the
// frames checks Active before each one and stops once it reports false.
type Loop struct {
	id        uint64
	cancelled atomic.Bool
}

// NewLoop returns an active loop handle.
func NewLoop() *Loop {
	return &Loop{id: loopSeq.Add(1)}
}

// ID identifies the loop in logs.
func (l *Loop) ID() uint64 {
	if l == nil {
		return 0
	}

	return l.id
}

// Cancel stops the loop. It is safe to call more than once and on a nil loop.
func (l *Loop) Cancel() {
	if l == nil {
		return
	}

	l.cancelled.Store(true)
}

// Active reports whether the loop may still run. A nil loop is never active.
func (l *Loop) Active() bool {
	return l != nil && !l.cancelled.Load()
}

// FrameInterval converts a frame rate into the delay between samples.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 30
	}

	return time.Second / time.Duration(fps)
}

// Drive calls sample at every interval until the loop is cancelled, sample
// returns false or ctx is done. Cancelling ctx also cancels the loop.
func Drive(
	ctx context.Context,
	loop *Loop,
	interval time.Duration,
	sample func() bool,
) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for loop.Active() {
		select {
		case <-ctx.Done():
			loop.Cancel()

			return ctx.Err()
		case <-ticker.C:
			if !loop.Active() || !sample() {
				return nil
			}
		}
	}

	return nil
}
