// Package tui renders the unwind views and the activity overlay on top of
// bubbletea
package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/unwind/celebrate"
	"github.com/ayoisaiah/unwind/countdown"
	"github.com/ayoisaiah/unwind/internal/config"
	"github.com/ayoisaiah/unwind/internal/content"
	"github.com/ayoisaiah/unwind/internal/route"
	"github.com/ayoisaiah/unwind/internal/timeutil"
	"github.com/ayoisaiah/unwind/mixer"
	"github.com/ayoisaiah/unwind/player"
	"github.com/ayoisaiah/unwind/rewards"
)

// confettiRows is the height of the band the confetti falls through.
const confettiRows = 8

type (
	// frameMsg samples the overlay countdown. Frames from a cancelled loop
	// are dropped.
	frameMsg struct {
		loop *countdown.Loop
	}

	// animMsg advances the confetti field.
	animMsg struct {
		loop *countdown.Loop
	}
)

// Deps are the collaborators a Model renders and drives.
type Deps struct {
	Config *config.Config
	State  *rewards.State
	Mixer  *mixer.Mixer
	Clock  countdown.Clock
	// Notifier is told about completions in addition to the confetti.
	Notifier celebrate.Celebrator
	Seed     uint64
}

// Model is the root bubbletea model.
type Model struct {
	cfg      *config.Config
	state    *rewards.State
	mixer    *mixer.Mixer
	clock    countdown.Clock
	player   *player.Controller
	confetti *celebrate.Field
	anim     *countdown.Loop
	pulse    *pulse
	strip    *strip
	progress progress.Model
	help     help.Model
	style    styles
	summary  rewards.Summary
	recs     []content.Activity
	cursor   map[route.Route]int
	view     route.Route
	flash    string
	interval time.Duration
	// finished is set by complete and consumed by the frame that caused it
	finished bool
	quote    int
	track    int
	width    int
}

// New builds the root model for the configured start view.
func New(d Deps) *Model {
	if d.Clock == nil {
		d.Clock = countdown.System
	}

	fps := d.Config.Timer.FrameRate

	m := &Model{
		cfg:      d.Config,
		state:    d.State,
		mixer:    d.Mixer,
		clock:    d.Clock,
		confetti: celebrate.NewField(fps, d.Seed),
		pulse:    newPulse(fps),
		strip:    newStrip(),
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		style:    newStyles(d.Config.Display.DarkTheme),
		recs:     content.Recommendations(d.Config.Timer.Recommendations, d.Seed),
		cursor:   make(map[route.Route]int),
		view:     d.Config.CLI.View,
		interval: countdown.FrameInterval(fps),
		quote:    int(d.Seed % uint64(len(content.Quotes()))),
		width:    maxWidth,
	}

	var celebrator celebrate.Celebrator = m.confetti
	if d.Notifier != nil {
		celebrator = celebrate.Multi{m.confetti, d.Notifier}
	}

	m.player = player.New(player.Options{
		Clock:         d.Clock,
		Celebrator:    celebrator,
		OnComplete:    m.complete,
		ReducedMotion: d.Config.Display.ReducedMotion,
	})

	m.refreshSummary()

	return m
}

// complete credits a finished session and closes the overlay.
func (m *Model) complete(sess player.Session) {
	before := m.state.Tokens()

	m.state.Complete(sess.ID, sess.Activity)

	m.flash = fmt.Sprintf(
		"%s complete: +%d tokens",
		sess.Activity.Title,
		m.state.Tokens()-before,
	)

	m.finished = true

	m.player.Close()
	m.refreshSummary()
}

func (m *Model) refreshSummary() {
	start := timeutil.PeriodStart(timeutil.Period7Days, m.clock.Now())

	sum, err := m.state.History(start, 5)
	if err != nil {
		slog.Warn("unable to load history", slog.Any("error", err))
		return
	}

	m.summary = sum
}

func (m *Model) frame(loop *countdown.Loop) tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return frameMsg{loop: loop}
	})
}

func (m *Model) animate(loop *countdown.Loop) tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return animMsg{loop: loop}
	})
}

// startConfetti schedules confetti frames unless a loop is already running.
func (m *Model) startConfetti() tea.Cmd {
	if !m.confetti.Active() || m.anim.Active() {
		return nil
	}

	m.anim = countdown.NewLoop()

	return m.animate(m.anim)
}

// Player exposes the overlay controller.
func (m *Model) Player() *player.Controller {
	return m.player
}

// Route reports the current view.
func (m *Model) Route() route.Route {
	return m.view
}

func (m *Model) Init() tea.Cmd {
	return nil
}
