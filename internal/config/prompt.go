package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/unwind/mixer"
)

const asciiLogo = `
██╗   ██╗███╗   ██╗██╗    ██╗██╗███╗   ██╗██████╗
██║   ██║████╗  ██║██║    ██║██║████╗  ██║██╔══██╗
██║   ██║██╔██╗ ██║██║ █╗ ██║██║██╔██╗ ██║██║  ██║
██║   ██║██║╚██╗██║██║███╗██║██║██║╚██╗██║██║  ██║
╚██████╔╝██║ ╚████║╚███╔███╔╝██║██║ ╚████║██████╔╝
 ╚═════╝ ╚═╝  ╚═══╝ ╚══╝╚══╝ ╚═╝╚═╝  ╚═══╝╚═════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Preset        string
	VoiceType     string
	ReducedMotion bool
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts. It only prompts when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Answer a few questions to set up unwind for the first time.
Press ENTER to accept the defaults.
Edit the config file with 'unwind edit-config' to change any settings.`, " ").
		Render()

	presetOpts := make([]huh.Option[string], 0, len(mixer.Presets)+1)
	presetOpts = append(presetOpts, huh.NewOption("Starting mix", "").Selected(true))

	for _, p := range mixer.Presets {
		presetOpts = append(presetOpts, huh.NewOption(string(p), string(p)))
	}

	voiceOpts := make([]huh.Option[string], 0, len(mixer.Voices))
	for i, v := range mixer.Voices {
		voiceOpts = append(
			voiceOpts,
			huh.NewOption(string(v), string(v)).Selected(i == 0),
		)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reduce motion?").
				Description("Skips the confetti when a break is completed").
				Value(&opts.ReducedMotion),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default sound preset").
				Options(presetOpts...).
				Value(&opts.Preset),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Narration voice").
				Options(voiceOpts...).
				Value(&opts.VoiceType),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Display.ReducedMotion = opts.ReducedMotion
	c.Mixer.Preset = opts.Preset
	c.Voice.Type = opts.VoiceType
	c.prompted = true
}
