package player

import "github.com/ayoisaiah/unwind/internal/content"

// Visual is the ambient animation shown while an activity plays.
type Visual int

const (
	GradientStrip Visual = iota
	PulsingCircle
)

// VisualFor picks the visual for an animation tag. Unknown tags get the
// gradient strip.
func VisualFor(a content.Animation) Visual {
	if a == content.AnimationPulse {
		return PulsingCircle
	}

	return GradientStrip
}
