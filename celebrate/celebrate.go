// Package celebrate renders the cosmetic effects played when a session is
// completed. Effects never block and never report errors to the caller.
package celebrate

import (
	"log/slog"

	"github.com/gen2brain/beeep"
)

// Burst parameterises a particle burst. Origin coordinates are fractions of
// the drawing surface, and Spread is the cone angle in degrees.
type Burst struct {
	Count   int
	Spread  float64
	OriginX float64
	OriginY float64
}

// Default is the burst played on session completion.
var Default = Burst{
	Count:   90,
	Spread:  70,
	OriginX: 0.5,
	OriginY: 0.8,
}

// Celebrator plays a celebratory effect. Implementations must return
// promptly.
type Celebrator interface {
	Celebrate(b Burst)
}

// Multi fans a burst out to several celebrators.
type Multi []Celebrator

func (m Multi) Celebrate(b Burst) {
	for _, c := range m {
		if c != nil {
			c.Celebrate(b)
		}
	}
}

// Notifier shows a desktop notification when a burst is played.
type Notifier struct {
	Title   string
	Message string
	Icon    string
	// Wait sends the notification before Celebrate returns. Short-lived
	// processes set it so the notification is not lost on exit.
	Wait bool
}

// Celebrate sends the notification, in the background unless Wait is set.
// Failures are logged.
func (n Notifier) Celebrate(_ Burst) {
	if n.Wait {
		n.send()
		return
	}

	go n.send()
}

func (n Notifier) send() {
	err := beeep.Notify(n.Title, n.Message, n.Icon)
	if err != nil {
		slog.Warn("unable to display notification", slog.Any("error", err))
	}
}
