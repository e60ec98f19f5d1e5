package mixer

import (
	"maps"
	"slices"
)

// Track identifies an ambient sound layer.
type Track string

const (
	Rain   Track = "rain"
	Ocean  Track = "ocean"
	Forest Track = "forest"
	White  Track = "white"
	Piano  Track = "piano"
)

// Tracks lists every track in display order.
var Tracks = []Track{Rain, Ocean, Forest, White, Piano}

var trackLabels = map[Track]string{
	Rain:   "Rain",
	Ocean:  "Ocean",
	Forest: "Forest",
	White:  "White Noise",
	Piano:  "Soft Piano",
}

// Label returns the display name of t.
func (t Track) Label() string {
	if l, ok := trackLabels[t]; ok {
		return l
	}

	return string(t)
}

// Volumes maps every track to a volume in [0, 1].
type Volumes map[Track]float64

// Preset names a fixed volume assignment.
type Preset string

const (
	MorningCalm     Preset = "Morning Calm"
	FocusFlow       Preset = "Focus Flow"
	EveningWindDown Preset = "Evening Wind-down"
)

// Presets lists every preset in display order.
var Presets = []Preset{MorningCalm, FocusFlow, EveningWindDown}

var presetVolumes = map[Preset]Volumes{
	MorningCalm: {
		Rain:   0.3,
		Ocean:  0.2,
		Forest: 0.5,
		White:  0,
		Piano:  0.2,
	},
	FocusFlow: {
		Rain:   0.4,
		Ocean:  0,
		Forest: 0.2,
		White:  0,
		Piano:  0.8,
	},
	EveningWindDown: {
		Rain:   0.6,
		Ocean:  0.2,
		Forest: 0.3,
		White:  0,
		Piano:  0.3,
	},
}

// startVolumes is the mix a new mixer opens with, labelled FocusFlow.
var startVolumes = Volumes{
	Rain:   0.6,
	Ocean:  0,
	Forest: 0.4,
	White:  0,
	Piano:  0.7,
}

// PresetVolumes returns a copy of the table for name.
func PresetVolumes(name Preset) (Volumes, bool) {
	v, ok := presetVolumes[name]
	if !ok {
		return nil, false
	}

	return maps.Clone(v), true
}

// ValidTrack reports whether t is part of the fixed track set.
func ValidTrack(t Track) bool {
	return slices.Contains(Tracks, t)
}

// clamp limits v to [0, 1].
func clamp(v float64) float64 {
	// NaN compares false with everything
	if !(v > 0) {
		return 0
	}

	return min(v, 1)
}
