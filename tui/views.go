package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/unwind/internal/content"
	"github.com/ayoisaiah/unwind/internal/route"
	"github.com/ayoisaiah/unwind/internal/timeutil"
	"github.com/ayoisaiah/unwind/mixer"
	"github.com/ayoisaiah/unwind/player"
)

const volumeBar = 20

func (m *Model) headerView() string {
	tabs := make([]string, 0, len(route.All))

	for _, r := range route.All {
		if r == m.view {
			tabs = append(tabs, m.style.ActiveTab.Render(r.Title()))
			continue
		}

		tabs = append(tabs, m.style.Tab.Render(r.Title()))
	}

	counters := m.style.Hint.Render(fmt.Sprintf(
		"🪙 %d  🔥 %d",
		m.state.Tokens(),
		m.state.Streak(),
	))

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n" + counters
}

func (m *Model) activityRow(a content.Activity, selected bool) string {
	cursor := "  "
	title := m.style.Secondary.Render(a.Title)

	if selected {
		cursor = m.style.Selected.Render("› ")
		title = m.style.Selected.Render(a.Title)
	}

	meta := m.style.Hint.Render(fmt.Sprintf(
		" %s · %s",
		a.Category,
		timeutil.Clock(a.Seconds()),
	))

	return cursor + swatch(a) + " " + title + meta
}

func (m *Model) activityList(acts []content.Activity) string {
	rows := make([]string, len(acts))

	for i, a := range acts {
		rows[i] = m.activityRow(a, i == m.cursor[m.view]%len(acts))
	}

	return strings.Join(rows, "\n")
}

func (m *Model) homeView() string {
	var s strings.Builder

	s.WriteString(m.style.Title.Render("Recommended for you"))
	s.WriteString("\n\n")
	s.WriteString(m.activityList(m.recs))

	q := content.QuoteAt(m.quote)

	s.WriteString("\n\n")
	s.WriteString(m.style.Hint.Render(fmt.Sprintf("“%s” #%s", q.Text, q.Label())))

	return s.String()
}

func (m *Model) resetView() string {
	return m.style.Title.Render("Quick resets") + "\n\n" +
		m.activityList(content.Activities())
}

func (m *Model) exploreView() string {
	var s strings.Builder

	selected := m.cursor[m.view]
	i := 0

	for _, c := range content.Categories {
		s.WriteString(m.style.Title.Render(string(c)))
		s.WriteString("\n")

		for _, a := range content.ByCategory(c) {
			s.WriteString(m.activityRow(a, i == selected%max(m.items(), 1)))
			s.WriteString("\n")

			i++
		}

		s.WriteString("\n")
	}

	s.WriteString(m.style.Title.Render("Micro-lessons"))
	s.WriteString("\n")

	for _, l := range content.Lessons() {
		s.WriteString("  " + m.style.Secondary.Render(l.Topic))
		s.WriteString(m.style.Hint.Render("  " + l.Tip))
		s.WriteString("\n")
	}

	return strings.TrimRight(s.String(), "\n")
}

func (m *Model) gamesView() string {
	var s strings.Builder

	games := content.Games()
	selected := m.cursor[m.view] % len(games)

	s.WriteString(m.style.Title.Render("Mind games"))
	s.WriteString("\n\n")

	for i, g := range games {
		if i == selected {
			s.WriteString(m.style.Selected.Render("› " + g.Title))
		} else {
			s.WriteString("  " + m.style.Secondary.Render(g.Title))
		}

		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(m.style.Card.Render("Play in your browser: " + games[selected].URL))

	return s.String()
}

func (m *Model) inspireView() string {
	q := content.QuoteAt(m.quote)

	card := m.style.Main.Render(q.Text) + "\n\n" +
		m.style.Hint.Render("#"+q.Label())

	return m.style.Title.Render("Inspiration") + "\n\n" +
		m.style.Card.Width(m.width-4).Render(card)
}

func (m *Model) volumeRow(t mixer.Track, selected bool) string {
	v := m.mixer.Volume(t)
	filled := int(v*volumeBar + 0.5)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", volumeBar-filled)

	name := fmt.Sprintf("%-12s", t.Label())

	row := fmt.Sprintf("%s %s %3d%%", name, bar, int(v*100+0.5))
	if selected {
		return m.style.Selected.Render("› " + row)
	}

	return "  " + m.style.Secondary.Render(row)
}

func (m *Model) soundView() string {
	var s strings.Builder

	s.WriteString(m.style.Title.Render("Sound mixer"))
	s.WriteString("\n\n")

	selected := m.cursor[m.view] % len(mixer.Tracks)

	for i, t := range mixer.Tracks {
		s.WriteString(m.volumeRow(t, i == selected))
		s.WriteString("\n")
	}

	preset := string(m.mixer.Preset())
	if preset == "" {
		preset = "custom"
	}

	state := "stopped"
	if m.mixer.Playing() {
		state = fmt.Sprintf("playing %d tracks", m.mixer.Active())
	}

	voice := "off"
	if m.mixer.VoiceOn() {
		voice = "on"
	}

	s.WriteString("\n")
	s.WriteString(m.style.Hint.Render(fmt.Sprintf(
		"preset: %s · %s · voice: %s (%s)",
		preset,
		state,
		voice,
		m.mixer.Voice(),
	)))

	return s.String()
}

func (m *Model) dashboardView() string {
	var s strings.Builder

	s.WriteString(m.style.Title.Render("Your progress"))
	s.WriteString("\n\n")
	s.WriteString(m.style.Main.Render(fmt.Sprintf(
		"%d tokens · streak %d",
		m.state.Tokens(),
		m.state.Streak(),
	)))
	s.WriteString("\n\n")

	sum := m.summary

	s.WriteString(m.style.Secondary.Render(fmt.Sprintf(
		"Last 7 days: %d sessions, %s",
		sum.Sessions,
		timeutil.Clock(sum.Seconds),
	)))
	s.WriteString("\n")

	for _, c := range content.Categories {
		s.WriteString(m.style.Hint.Render(
			fmt.Sprintf("  %-8s %d", c, sum.ByCategory[c]),
		))
		s.WriteString("\n")
	}

	if len(sum.Recent) == 0 {
		return s.String() + "\n" + m.style.Hint.Render("No sessions yet")
	}

	layout := "Jan 02 03:04 PM"
	if m.cfg.Display.TwentyFourHour {
		layout = "Jan 02 15:04"
	}

	s.WriteString("\n")
	s.WriteString(m.style.Title.Render("Recent"))
	s.WriteString("\n")

	for i := len(sum.Recent) - 1; i >= 0; i-- {
		r := sum.Recent[i]

		title := r.Activity
		if a, ok := content.Lookup(r.Activity); ok {
			title = a.Title
		}

		s.WriteString(fmt.Sprintf(
			"  %s %s\n",
			m.style.Hint.Render(r.CompletedAt.Local().Format(layout)),
			m.style.Secondary.Render(title),
		))
	}

	return strings.TrimRight(s.String(), "\n")
}

func (m *Model) extensionView() string {
	return m.style.Title.Render("Shell integration") + "\n\n" +
		m.style.Secondary.Render(
			"Show your tokens and streak in your prompt or status bar:",
		) + "\n\n" +
		m.style.Card.Render("unwind status") + "\n\n" +
		m.style.Hint.Render(
			"Add it to tmux status-right, your shell prompt, or a polybar module.",
		)
}

func (m *Model) routeView() string {
	switch m.view {
	case route.Reset:
		return m.resetView()
	case route.Games:
		return m.gamesView()
	case route.Inspire:
		return m.inspireView()
	case route.Explore:
		return m.exploreView()
	case route.Sound:
		return m.soundView()
	case route.Dashboard:
		return m.dashboardView()
	case route.Extension:
		return m.extensionView()
	}

	return m.homeView()
}

func (m *Model) routeHelp() []key.Binding {
	bindings := []key.Binding{defaultKeymap.next, defaultKeymap.prev}

	switch m.view {
	case route.Home, route.Reset, route.Explore:
		bindings = append(bindings, defaultKeymap.up, defaultKeymap.down, defaultKeymap.enter)
	case route.Games:
		bindings = append(bindings, defaultKeymap.up, defaultKeymap.down)
	case route.Inspire:
		bindings = append(bindings, defaultKeymap.nextQuote)
	case route.Sound:
		bindings = append(
			bindings,
			defaultKeymap.louder,
			defaultKeymap.quieter,
			defaultKeymap.toggle,
			defaultKeymap.preset,
			defaultKeymap.voice,
			defaultKeymap.voiceType,
		)
	}

	return append(bindings, defaultKeymap.quit)
}

func (m *Model) overlayView() string {
	var s strings.Builder

	snap := m.player.Snapshot()
	a := snap.Activity

	s.WriteString(m.style.Main.Render(a.Title))
	s.WriteString(m.style.Hint.Render(" · " + string(a.Category)))

	if snap.Phase == player.Paused {
		s.WriteString(m.style.Secondary.Render(" [Paused]"))
	}

	s.WriteString("\n\n")
	s.WriteString(m.style.Secondary.Render(a.Instruction))
	s.WriteString("\n\n")

	switch m.player.Animation() {
	case player.PulsingCircle:
		s.WriteString(m.pulse.render(a.Color))
	default:
		s.WriteString(m.strip.render(a.Color, min(stripWidth, m.width)))
	}

	s.WriteString("\n\n")
	s.WriteString(m.style.Main.Render(timeutil.Clock(snap.Remaining)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(snap.Progress))
	s.WriteString("\n\n")

	toggle := defaultKeymap.toggle
	if snap.Phase == player.Running {
		toggle.SetHelp("space", "pause")
	} else {
		toggle.SetHelp("space", "start")
	}

	s.WriteString(m.help.ShortHelpView([]key.Binding{
		toggle,
		defaultKeymap.esc,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (m *Model) View() string {
	var s strings.Builder

	if m.confetti.Active() {
		s.WriteString(m.confetti.Render())
		s.WriteString("\n")
	}

	if m.player.Phase() != player.Closed {
		s.WriteString(m.style.Base.Render(m.overlayView()))
		return s.String()
	}

	var body strings.Builder

	body.WriteString(m.headerView())
	body.WriteString("\n\n")
	body.WriteString(m.routeView())

	if m.flash != "" {
		body.WriteString("\n\n")
		body.WriteString(m.style.Flash.Render(m.flash))
	}

	body.WriteString("\n\n")
	body.WriteString(m.help.ShortHelpView(m.routeHelp()))

	s.WriteString(m.style.Base.Render(body.String()))

	return s.String()
}
