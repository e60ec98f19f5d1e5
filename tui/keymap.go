package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	next      key.Binding
	prev      key.Binding
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	quit      key.Binding
	toggle    key.Binding
	esc       key.Binding
	louder    key.Binding
	quieter   key.Binding
	preset    key.Binding
	voice     key.Binding
	voiceType key.Binding
	nextQuote key.Binding
}

var defaultKeymap = keymap{
	next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous view"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
	toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/pause"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	louder: key.NewBinding(
		key.WithKeys("right", "l", "+"),
		key.WithHelp("→/l", "louder"),
	),
	quieter: key.NewBinding(
		key.WithKeys("left", "h", "-"),
		key.WithHelp("←/h", "quieter"),
	),
	preset: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "next preset"),
	),
	voice: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "voice"),
	),
	voiceType: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "voice type"),
	),
	nextQuote: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next quote"),
	),
}
