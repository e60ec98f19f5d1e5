// Package ui holds terminal styling helpers used outside the TUI
package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/unwind/internal/content"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Category colours a category name.
func Category(c content.Category) string {
	switch c {
	case content.Calm:
		return Cyan(c)
	case content.Focus:
		return Magenta(c)
	case content.Energy:
		return Green(c)
	}

	return string(c)
}
