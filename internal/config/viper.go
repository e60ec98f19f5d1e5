package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/unwind/mixer"
	"github.com/ayoisaiah/unwind/speech"
)

const (
	keyDarkTheme       = "display.dark_theme"
	keyReducedMotion   = "display.reduced_motion"
	keyTwentyFourHour  = "display.24hr_clock"
	keyFrameRate       = "timer.frame_rate"
	keyRecommendations = "timer.recommendations"
	keyMixerPreset     = "mixer.preset"
	keyMixerAudio      = "mixer.audio"
	keyVoiceEnabled    = "voice.enabled"
	keyVoiceType       = "voice.type"
	keyVoiceCmd        = "voice.cmd"
	keyNotifications   = "notifications.enabled"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values if missing.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyReducedMotion, false)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyFrameRate, 30)
	v.SetDefault(keyRecommendations, 3)
	v.SetDefault(keyMixerPreset, "")
	v.SetDefault(keyMixerAudio, true)
	v.SetDefault(keyVoiceEnabled, true)
	v.SetDefault(keyVoiceType, string(mixer.Female))
	v.SetDefault(keyVoiceCmd, speech.DefaultCmd())
	v.SetDefault(keyNotifications, true)

	if c.prompted {
		v.Set(keyReducedMotion, c.Display.ReducedMotion)
		v.Set(keyMixerPreset, c.Mixer.Preset)
		v.Set(keyVoiceType, c.Voice.Type)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	return v.Unmarshal(c)
}
