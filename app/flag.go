package app

import "github.com/urfave/cli/v2"

var (
	viewFlag = &cli.StringFlag{
		Name:  "view",
		Usage: "Open the TUI at this view (e.g. /sound)",
	}

	presetFlag = &cli.StringFlag{
		Name:    "preset",
		Aliases: []string{"p"},
		Usage:   "Sound preset to load: 'Morning Calm', 'Focus Flow' or 'Evening Wind-down'",
	}

	voiceTypeFlag = &cli.StringFlag{
		Name:  "voice-type",
		Usage: "Narration voice: female or male",
	}

	fpsFlag = &cli.IntFlag{
		Name:  "fps",
		Usage: "Countdown frames per second (1-120)",
	}

	reducedMotionFlag = &cli.BoolFlag{
		Name:  "reduced-motion",
		Usage: "Skip the celebration and freeze the breathing animations",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the desktop notification that appears after an activity is completed",
	}

	muteFlag = &cli.BoolFlag{
		Name:  "mute",
		Usage: "Keep the mixer silent without touching the audio device",
	}

	noVoiceFlag = &cli.BoolFlag{
		Name:  "no-voice",
		Usage: "Disable spoken narration",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug messages to the log file",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	categoryFlag = &cli.StringFlag{
		Name:    "category",
		Aliases: []string{"c"},
		Usage:   "Only list activities in this category (calm, focus or energy)",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"per"},
		Usage:   "Reporting period: all-time, today, 7days or 30days",
		Value:   "7days",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Report on sessions completed after this date (e.g. 'last monday'). Overrides --period",
	}
)
