// Package mixer implements the ambient sound mixer: per-track volumes,
// presets, a play/stop toggle and an optional narrated line.
package mixer

import (
	"context"
	"log/slog"
	"maps"

	"github.com/ayoisaiah/unwind/internal/apperr"
)

var (
	errUnknownTrack = &apperr.Error{
		Message: "unknown track: %s",
	}

	errUnknownPreset = &apperr.Error{
		Message: "unknown preset: %s",
	}

	errUnknownVoice = &apperr.Error{
		Message: "unknown voice: %s",
	}
)

// Handle controls one looping track.
type Handle interface {
	SetVolume(v float64)
	Stop()
}

// Backend starts looping playback of a track.
type Backend interface {
	Loop(track Track, volume float64) (Handle, error)
}

type nopHandle struct{}

func (nopHandle) SetVolume(float64) {}

func (nopHandle) Stop() {}

// NopBackend accepts every track and plays nothing.
type NopBackend struct{}

func (NopBackend) Loop(Track, float64) (Handle, error) {
	return nopHandle{}, nil
}

// Options configures a Mixer.
type Options struct {
	Backend  Backend
	Narrator Narrator
	Voice    Voice
}

// Mixer holds the session-only mixer state. A handle exists for a track
// exactly when the mixer is playing and the track volume is above zero.
type Mixer struct {
	backend    Backend
	narrator   Narrator
	volumes    Volumes
	handles    map[Track]Handle
	stopSpeech context.CancelFunc
	preset     Preset
	variant    Voice
	lineIndex  int
	playing    bool
	voice      bool
}

// New returns a stopped mixer holding the starting mix under the FocusFlow
// label. Nothing plays until TogglePlay.
func New(opts Options) *Mixer {
	if opts.Backend == nil {
		opts.Backend = NopBackend{}
	}

	if opts.Narrator == nil {
		opts.Narrator = nopNarrator{}
	}

	if _, ok := voiceLines[opts.Voice]; !ok {
		opts.Voice = Female
	}

	return &Mixer{
		backend:  opts.Backend,
		narrator: opts.Narrator,
		variant:  opts.Voice,
		volumes:  maps.Clone(startVolumes),
		handles:  make(map[Track]Handle),
		preset:   FocusFlow,
	}
}

// Volume returns the volume of track.
func (m *Mixer) Volume(track Track) float64 {
	return m.volumes[track]
}

// Volumes returns a copy of the volume mapping.
func (m *Mixer) Volumes() Volumes {
	return maps.Clone(m.volumes)
}

// Playing reports whether the mixer is playing.
func (m *Mixer) Playing() bool {
	return m.playing
}

// Preset returns the current preset label, or "" once cleared.
func (m *Mixer) Preset() Preset {
	return m.preset
}

// Voice returns the narration variant.
func (m *Mixer) Voice() Voice {
	return m.variant
}

// VoiceOn reports whether narration is enabled.
func (m *Mixer) VoiceOn() bool {
	return m.voice
}

// Active returns the number of tracks currently looping.
func (m *Mixer) Active() int {
	return len(m.handles)
}

// SetVolume sets the volume of one track, clamped to [0, 1]. A change made
// while playing applies to the looping track immediately. The preset label
// is kept.
func (m *Mixer) SetVolume(track Track, v float64) error {
	if !ValidTrack(track) {
		return errUnknownTrack.Fmt(track)
	}

	m.volumes[track] = clamp(v)

	if m.playing {
		m.sync(track)
	}

	return nil
}

// Nudge changes the volume of track by delta.
func (m *Mixer) Nudge(track Track, delta float64) error {
	return m.SetVolume(track, m.volumes[track]+delta)
}

// ApplyPreset replaces every volume with the table of name.
func (m *Mixer) ApplyPreset(name Preset) error {
	v, ok := PresetVolumes(name)
	if !ok {
		return errUnknownPreset.Fmt(name)
	}

	m.volumes = v
	m.preset = name

	if m.playing {
		for _, t := range Tracks {
			m.sync(t)
		}
	}

	return nil
}

// ClearPreset removes the preset label without touching volumes.
func (m *Mixer) ClearPreset() {
	m.preset = ""
}

// TogglePlay starts or stops playback and reports whether it is now
// playing.
func (m *Mixer) TogglePlay() bool {
	if m.playing {
		m.stopAll()
		m.playing = false

		return false
	}

	m.playing = true

	for _, t := range Tracks {
		m.sync(t)
	}

	return true
}

// sync brings the handle of track in line with its volume.
func (m *Mixer) sync(track Track) {
	v := m.volumes[track]
	h, looping := m.handles[track]

	switch {
	case looping && v > 0:
		h.SetVolume(v)
	case looping:
		h.Stop()
		delete(m.handles, track)
	case v > 0:
		h, err := m.backend.Loop(track, v)
		if err != nil {
			slog.Warn(
				"unable to play track",
				slog.String("track", string(track)),
				slog.Any("error", err),
			)

			return
		}

		m.handles[track] = h
	}
}

func (m *Mixer) stopAll() {
	for t, h := range m.handles {
		h.Stop()
		delete(m.handles, t)
	}
}

// SetVoice picks the narration variant used by the next line.
func (m *Mixer) SetVoice(v Voice) error {
	if _, ok := voiceLines[v]; !ok {
		return errUnknownVoice.Fmt(v)
	}

	m.variant = v

	return nil
}

// ToggleVoice turns narration on or off and reports the new state. Turning
// it on speaks the next line of the current variant once. Turning it off
// cuts off any line still being spoken.
func (m *Mixer) ToggleVoice() bool {
	if m.voice {
		m.voice = false
		m.cancelSpeech()

		return false
	}

	m.voice = true

	lines := voiceLines[m.variant]
	if len(lines) == 0 {
		return true
	}

	line := lines[m.lineIndex%len(lines)]
	m.lineIndex++

	m.cancelSpeech()

	ctx, cancel := context.WithCancel(context.Background())
	m.stopSpeech = cancel

	m.narrator.Say(ctx, m.variant, line)

	return true
}

func (m *Mixer) cancelSpeech() {
	if m.stopSpeech != nil {
		m.stopSpeech()
		m.stopSpeech = nil
	}
}

// Close stops every track and any speech.
func (m *Mixer) Close() {
	m.stopAll()
	m.playing = false
	m.voice = false
	m.cancelSpeech()
}
