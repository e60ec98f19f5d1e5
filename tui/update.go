package tui

import (
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/unwind/internal/content"
	"github.com/ayoisaiah/unwind/internal/route"
	"github.com/ayoisaiah/unwind/mixer"
	"github.com/ayoisaiah/unwind/player"
)

const volumeStep = 0.1

// handleFrame samples the overlay and schedules the next frame while the
// countdown runs.
func (m *Model) handleFrame(msg frameMsg) tea.Cmd {
	if !m.player.Sample(msg.loop) {
		if !m.finished {
			// stale, paused or closed loop
			return nil
		}

		m.finished = false

		return m.startConfetti()
	}

	if !m.cfg.Display.ReducedMotion {
		snap := m.player.Snapshot()
		m.pulse.step(snap.Total - snap.Remaining)
		m.strip.step()
	}

	return m.frame(msg.loop)
}

func (m *Model) handleAnim(msg animMsg) tea.Cmd {
	if msg.loop != m.anim || !msg.loop.Active() {
		return nil
	}

	m.confetti.Step()

	if !m.confetti.Active() {
		m.anim.Cancel()
		return nil
	}

	return m.animate(msg.loop)
}

// activities returns the selectable activities of the current view.
func (m *Model) activities() []content.Activity {
	switch m.view {
	case route.Home:
		return m.recs
	case route.Reset:
		return content.Activities()
	case route.Explore:
		var all []content.Activity
		for _, c := range content.Categories {
			all = append(all, content.ByCategory(c)...)
		}

		return all
	}

	return nil
}

// items is the number of rows the cursor moves over in the current view.
func (m *Model) items() int {
	switch m.view {
	case route.Games:
		return len(content.Games())
	case route.Sound:
		return len(mixer.Tracks)
	}

	return len(m.activities())
}

func (m *Model) move(delta int) {
	n := m.items()
	if n == 0 {
		return
	}

	m.cursor[m.view] = (m.cursor[m.view] + delta + n) % n
}

func (m *Model) navigate(r route.Route) {
	m.view = r

	if r == route.Dashboard {
		m.refreshSummary()
	}
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.toggle):
		if loop, ok := m.player.Toggle(); ok {
			return m, m.frame(loop)
		}

	case key.Matches(msg, defaultKeymap.esc):
		m.player.Close()

	case key.Matches(msg, defaultKeymap.quit):
		m.player.Close()

		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) handleSoundKey(msg tea.KeyMsg) {
	track := mixer.Tracks[m.cursor[route.Sound]%len(mixer.Tracks)]

	var err error

	switch {
	case key.Matches(msg, defaultKeymap.louder):
		err = m.mixer.Nudge(track, volumeStep)
	case key.Matches(msg, defaultKeymap.quieter):
		err = m.mixer.Nudge(track, -volumeStep)
	case key.Matches(msg, defaultKeymap.toggle):
		m.mixer.TogglePlay()
	case key.Matches(msg, defaultKeymap.preset):
		i := slices.Index(mixer.Presets, m.mixer.Preset())
		err = m.mixer.ApplyPreset(mixer.Presets[(i+1)%len(mixer.Presets)])
	case key.Matches(msg, defaultKeymap.voice):
		m.mixer.ToggleVoice()
	case key.Matches(msg, defaultKeymap.voiceType):
		i := slices.Index(mixer.Voices, m.mixer.Voice())
		err = m.mixer.SetVoice(mixer.Voices[(i+1)%len(mixer.Voices)])
	}

	if err != nil {
		slog.Warn("mixer update failed", slog.Any("error", err))
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.player.Phase() != player.Closed {
		return m.handleOverlayKey(msg)
	}

	m.flash = ""

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.next):
		m.navigate(m.view.Next())

	case key.Matches(msg, defaultKeymap.prev):
		m.navigate(m.view.Prev())

	case key.Matches(msg, defaultKeymap.up):
		m.move(-1)

	case key.Matches(msg, defaultKeymap.down):
		m.move(1)

	case key.Matches(msg, defaultKeymap.enter):
		if acts := m.activities(); len(acts) > 0 {
			m.player.Open(acts[m.cursor[m.view]%len(acts)])
		}

	case m.view == route.Inspire && key.Matches(msg, defaultKeymap.nextQuote):
		m.quote++

	case m.view == route.Sound:
		m.handleSoundKey(msg)
	}

	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = max(min(width-padding*2, maxWidth), minWidth)

	m.progress.Width = m.width - 4
	m.confetti.Resize(m.width, confettiRows)

	if height > 0 && height < confettiRows*2 {
		m.confetti.Resize(0, max(height/3, 1))
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return m, m.handleFrame(msg)

	case animMsg:
		return m, m.handleAnim(msg)

	case tea.KeyMsg:
		slog.Debug(spew.Sdump(msg))

		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	}

	return m, nil
}
