package mixer

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandle struct {
	volume  float64
	stopped bool
}

func (h *fakeHandle) SetVolume(v float64) {
	h.volume = v
}

func (h *fakeHandle) Stop() {
	h.stopped = true
}

type fakeBackend struct {
	started map[Track][]*fakeHandle
	fail    Track
}

func (b *fakeBackend) Loop(t Track, v float64) (Handle, error) {
	if t == b.fail {
		return nil, errors.New("no device")
	}

	if b.started == nil {
		b.started = make(map[Track][]*fakeHandle)
	}

	h := &fakeHandle{volume: v}
	b.started[t] = append(b.started[t], h)

	return h, nil
}

func (b *fakeBackend) current(t Track) *fakeHandle {
	hs := b.started[t]
	if len(hs) == 0 {
		return nil
	}

	return hs[len(hs)-1]
}

type spoken struct {
	ctx   context.Context
	voice Voice
	line  string
}

type fakeNarrator struct {
	said []spoken
}

func (n *fakeNarrator) Say(ctx context.Context, v Voice, line string) {
	n.said = append(n.said, spoken{ctx, v, line})
}

func TestNewStartsWithFocusFlowLabel(t *testing.T) {
	m := New(Options{})

	want := Volumes{Rain: 0.6, Ocean: 0, Forest: 0.4, White: 0, Piano: 0.7}

	if diff := cmp.Diff(want, m.Volumes()); diff != "" {
		t.Errorf("volumes mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, FocusFlow, m.Preset())
	assert.Equal(t, Female, m.Voice())
	assert.False(t, m.Playing())
	assert.Zero(t, m.Active())
}

func TestSetVolumeClamps(t *testing.T) {
	m := New(Options{})

	require.NoError(t, m.SetVolume(Rain, 1.7))
	assert.InDelta(t, 1.0, m.Volume(Rain), 1e-9)

	require.NoError(t, m.SetVolume(Rain, -0.2))
	assert.Zero(t, m.Volume(Rain))

	require.NoError(t, m.SetVolume(Ocean, 0.25))
	assert.InDelta(t, 0.25, m.Volume(Ocean), 1e-9)
	assert.Zero(t, m.Volume(Rain), "tracks are independent")
	assert.InDelta(t, 0.4, m.Volume(Forest), 1e-9)
	assert.False(t, m.Playing(), "volume does not affect playing")

	assert.Error(t, m.SetVolume("thunder", 0.5))
}

func TestApplyPresetOverwrites(t *testing.T) {
	m := New(Options{})

	require.NoError(t, m.SetVolume(White, 0.9))
	require.NoError(t, m.ApplyPreset(FocusFlow))

	want := Volumes{Rain: 0.4, Ocean: 0, Forest: 0.2, White: 0, Piano: 0.8}

	if diff := cmp.Diff(want, m.Volumes()); diff != "" {
		t.Errorf("volumes mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, FocusFlow, m.Preset())

	err := m.ApplyPreset("Lofi")
	assert.ErrorIs(t, err, errUnknownPreset)
	assert.Equal(t, FocusFlow, m.Preset())
}

func TestPresetTablesCoverEveryTrack(t *testing.T) {
	for _, p := range Presets {
		v, ok := PresetVolumes(p)
		require.True(t, ok, p)
		assert.Len(t, v, len(Tracks), p)

		for _, tr := range Tracks {
			_, ok := v[tr]
			assert.True(t, ok, "%s has no volume for %s", p, tr)
		}
	}
}

func TestTrackLabels(t *testing.T) {
	assert.Equal(t, "White Noise", White.Label())
	assert.Equal(t, "Soft Piano", Piano.Label())
	assert.Equal(t, "thunder", Track("thunder").Label())
}

func TestPresetLabelPersistsOnManualEdit(t *testing.T) {
	m := New(Options{})

	require.NoError(t, m.ApplyPreset(EveningWindDown))
	require.NoError(t, m.SetVolume(Rain, 0.9))

	assert.Equal(t, EveningWindDown, m.Preset())

	m.ClearPreset()
	assert.Empty(t, m.Preset())
}

func TestTogglePlayStartsAudibleTracks(t *testing.T) {
	b := &fakeBackend{}
	m := New(Options{Backend: b})

	require.NoError(t, m.ApplyPreset(FocusFlow))

	assert.True(t, m.TogglePlay())
	assert.Equal(t, 3, m.Active())
	assert.Nil(t, b.current(Ocean), "silent tracks do not loop")
	assert.InDelta(t, 0.8, b.current(Piano).volume, 1e-9)

	require.NoError(t, m.SetVolume(Piano, 0.4))
	assert.InDelta(t, 0.4, b.current(Piano).volume, 1e-9, "live update")

	require.NoError(t, m.SetVolume(Ocean, 0.5))
	assert.NotNil(t, b.current(Ocean), "raising a silent track starts it")
	assert.Equal(t, 4, m.Active())

	require.NoError(t, m.SetVolume(Rain, 0))
	assert.True(t, b.current(Rain).stopped)
	assert.Equal(t, 3, m.Active())

	assert.False(t, m.TogglePlay())
	assert.Zero(t, m.Active())

	for _, hs := range b.started {
		for _, h := range hs {
			assert.True(t, h.stopped)
		}
	}
}

func TestPresetWhilePlayingAppliesLive(t *testing.T) {
	b := &fakeBackend{}
	m := New(Options{Backend: b})

	require.NoError(t, m.ApplyPreset(EveningWindDown))
	m.TogglePlay()
	assert.Equal(t, 4, m.Active())

	rain := b.current(Rain)

	require.NoError(t, m.ApplyPreset(FocusFlow))

	assert.Same(t, rain, b.current(Rain), "looping tracks keep their handle")
	assert.InDelta(t, 0.4, rain.volume, 1e-9)
	assert.True(t, b.current(Ocean).stopped)
	assert.InDelta(t, 0.8, b.current(Piano).volume, 1e-9)
	assert.Equal(t, 3, m.Active())
}

func TestBackendFailureIsSkipped(t *testing.T) {
	b := &fakeBackend{fail: Rain}
	m := New(Options{Backend: b})

	require.NoError(t, m.ApplyPreset(EveningWindDown))

	assert.True(t, m.TogglePlay())
	assert.Equal(t, 3, m.Active())
}

func TestToggleVoiceRoundRobin(t *testing.T) {
	n := &fakeNarrator{}
	m := New(Options{Narrator: n, Voice: Male})

	lines := Lines(Male)
	require.Len(t, lines, 2)

	for i := range len(lines) + 1 {
		assert.True(t, m.ToggleVoice())
		assert.False(t, m.ToggleVoice())

		require.Len(t, n.said, i+1)
		assert.Equal(t, lines[i%len(lines)], n.said[i].line)
		assert.Equal(t, Male, n.said[i].voice)
		assert.Error(t, n.said[i].ctx.Err(), "turning voice off cancels speech")
	}
}

func TestToggleVoiceVariant(t *testing.T) {
	n := &fakeNarrator{}
	m := New(Options{Narrator: n, Voice: "robot"})

	assert.Equal(t, Female, m.Voice())

	require.NoError(t, m.SetVoice(Male))
	m.ToggleVoice()

	require.Len(t, n.said, 1)
	assert.Equal(t, Male, n.said[0].voice)
	assert.Equal(t, "Breathe in... and out. You are safe.", n.said[0].line)
	assert.NoError(t, n.said[0].ctx.Err(), "speech runs until cancelled")

	assert.ErrorIs(t, m.SetVoice("robot"), errUnknownVoice)
	assert.Equal(t, Male, m.Voice())
}

func TestCloseReleasesEverything(t *testing.T) {
	b := &fakeBackend{}
	n := &fakeNarrator{}
	m := New(Options{Backend: b, Narrator: n})

	m.TogglePlay()
	m.ToggleVoice()

	require.Equal(t, 3, m.Active())

	m.Close()

	assert.False(t, m.Playing())
	assert.False(t, m.VoiceOn())
	assert.Zero(t, m.Active())
	assert.Error(t, n.said[0].ctx.Err())

	for _, hs := range b.started {
		for _, h := range hs {
			assert.True(t, h.stopped)
		}
	}
}
