package mixer

import "context"

// Voice selects a narration variant.
type Voice string

const (
	Female Voice = "female"
	Male   Voice = "male"
)

// Voices lists every narration variant.
var Voices = []Voice{Female, Male}

var voiceLines = map[Voice][]string{
	Male: {
		"Breathe in... and out. You are safe.",
		"Let your shoulders drop. Release the day.",
	},
	Female: {
		"Inhale calm, exhale tension.",
		"Soft focus. You have time.",
	},
}

// Lines returns the narration lines of v.
func Lines(v Voice) []string {
	return voiceLines[v]
}

// Narrator speaks a line once. Cancelling ctx must stop speech immediately.
// Say must not block and has no completion callback.
type Narrator interface {
	Say(ctx context.Context, v Voice, line string)
}

type nopNarrator struct{}

func (nopNarrator) Say(context.Context, Voice, string) {}
