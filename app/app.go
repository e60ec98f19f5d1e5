// Package app defines the unwind command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/unwind/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the unwind app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "unwind",
		Usage: `
		Unwind is a micro-break companion for the command-line. Pick a short
		breathing, focus or energy activity, follow the countdown, and earn
		tokens while an ambient mixer plays in the background.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "play",
				Usage:     "Run an activity countdown without the TUI",
				ArgsUsage: "<activity-key>",
				Action:    playAction,
			},
			{
				Name:  "list",
				Usage: "List the available activities",
				Flags: []cli.Flag{
					categoryFlag,
					jsonFlag,
				},
				Action: listAction,
			},
			{
				Name:  "stats",
				Usage: "Print your tokens, streak and completed sessions. Defaults to a reporting period of 7 days",
				Flags: []cli.Flag{
					periodFlag,
					sinceFlag,
					jsonFlag,
				},
				Action: statsAction,
			},
			{
				Name:   "quote",
				Usage:  "Print an inspirational quote",
				Action: quoteAction,
			},
			{
				Name:   "status",
				Usage:  "Print your tokens and streak in a compact form for prompts and status bars",
				Action: statusAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			viewFlag,
			presetFlag,
			voiceTypeFlag,
			fpsFlag,
			reducedMotionFlag,
			disableNotificationFlag,
			muteFlag,
			noVoiceFlag,
			debugFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
