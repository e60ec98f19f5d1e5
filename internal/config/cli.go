package config

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/unwind/internal/route"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	View          string
	Preset        string
	VoiceType     string
	FrameRate     int
	ReducedMotion bool
	DisableNotify bool
	DisableAudio  bool
	DisableVoice  bool
	Debug         bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			View:          ctx.String("view"),
			Preset:        ctx.String("preset"),
			VoiceType:     ctx.String("voice-type"),
			FrameRate:     ctx.Int("fps"),
			ReducedMotion: ctx.Bool("reduced-motion"),
			DisableNotify: ctx.Bool("disable-notification"),
			DisableAudio:  ctx.Bool("mute"),
			DisableVoice:  ctx.Bool("no-voice"),
			Debug:         ctx.Bool("debug"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.View != "" {
		r, err := route.Parse(opts.View)
		if err != nil {
			return err
		}

		c.CLI.View = r
	}

	if opts.Preset != "" {
		c.Mixer.Preset = opts.Preset
	}

	if opts.VoiceType != "" {
		c.Voice.Type = opts.VoiceType
	}

	if opts.FrameRate > 0 {
		c.Timer.FrameRate = opts.FrameRate
	}

	if opts.ReducedMotion {
		c.Display.ReducedMotion = true
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.DisableAudio {
		c.Mixer.Audio = false
	}

	if opts.DisableVoice {
		c.Voice.Enabled = false
	}

	c.CLI.Debug = opts.Debug

	return nil
}
