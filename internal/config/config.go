// Package config loads unwind settings from the config file, the first-run
// prompt and command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/ayoisaiah/unwind/internal/route"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Display       DisplayConfig      `mapstructure:"display"`
		Timer         TimerConfig        `mapstructure:"timer"`
		Mixer         MixerConfig        `mapstructure:"mixer"`
		Voice         VoiceConfig        `mapstructure:"voice"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		CLI           CLIConfig          `mapstructure:"-"`

		prompted bool
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		ReducedMotion  bool `mapstructure:"reduced_motion"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// TimerConfig holds countdown settings.
	TimerConfig struct {
		// FrameRate is the number of countdown samples per second.
		FrameRate       int `mapstructure:"frame_rate"`
		Recommendations int `mapstructure:"recommendations"`
	}

	// MixerConfig holds sound mixer settings.
	MixerConfig struct {
		Preset string `mapstructure:"preset"`
		Audio  bool   `mapstructure:"audio"`
	}

	// VoiceConfig holds narration settings.
	VoiceConfig struct {
		Type     string `mapstructure:"type"`
		Cmd      string `mapstructure:"cmd"`
		Enabled  bool   `mapstructure:"enabled"`
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// CLIConfig holds settings that only come from the command line.
	CLIConfig struct {
		View  route.Route
		Debug bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		CLI: CLIConfig{View: route.Home},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}
