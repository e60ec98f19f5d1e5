package config

import (
	"slices"

	"github.com/ayoisaiah/unwind/mixer"
)

var (
	minFrameRate = 1
	maxFrameRate = 120

	minRecommendations = 1
	maxRecommendations = 10
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Timer.FrameRate < minFrameRate || c.Timer.FrameRate > maxFrameRate {
		return errInvalidFrameRate.Fmt(minFrameRate, maxFrameRate, c.Timer.FrameRate)
	}

	if c.Timer.Recommendations < minRecommendations ||
		c.Timer.Recommendations > maxRecommendations {
		return errInvalidRecommendations.Fmt(
			minRecommendations,
			maxRecommendations,
			c.Timer.Recommendations,
		)
	}

	if c.Mixer.Preset != "" &&
		!slices.Contains(mixer.Presets, mixer.Preset(c.Mixer.Preset)) {
		return errUnknownPreset.Fmt(c.Mixer.Preset)
	}

	if !slices.Contains(mixer.Voices, mixer.Voice(c.Voice.Type)) {
		return errUnknownVoice.Fmt(c.Voice.Type)
	}

	return nil
}
