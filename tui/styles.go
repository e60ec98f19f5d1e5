package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/unwind/internal/content"
)

const (
	padding  = 2
	minWidth = 20
	maxWidth = 80
)

type styles struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Selected  lipgloss.Style
	Flash     lipgloss.Style
	Card      lipgloss.Style
}

func newStyles(dark bool) styles {
	text := lipgloss.Color("#1F2937")
	muted := lipgloss.Color("#6B7280")
	accent := lipgloss.Color("#7C3AED")

	if dark {
		text = lipgloss.Color("#F9FAFB")
		muted = lipgloss.Color("#9CA3AF")
		accent = lipgloss.Color("#A78BFA")
	}

	return styles{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(text),
		Secondary: lipgloss.NewStyle().Foreground(text),
		Hint:      lipgloss.NewStyle().Foreground(muted),
		Tab:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(text).
			Background(accent).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Flash:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FBBF24")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
	}
}

// swatch renders a coloured block for an activity.
func swatch(a content.Activity) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(a.Color)).
		Render("■")
}
