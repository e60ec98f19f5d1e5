package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/unwind/audio"
	"github.com/ayoisaiah/unwind/celebrate"
	"github.com/ayoisaiah/unwind/internal/config"
	"github.com/ayoisaiah/unwind/internal/pathutil"
	"github.com/ayoisaiah/unwind/internal/ui"
	"github.com/ayoisaiah/unwind/mixer"
	"github.com/ayoisaiah/unwind/rewards"
	"github.com/ayoisaiah/unwind/speech"
	"github.com/ayoisaiah/unwind/store"
)

var logFile io.Closer

// setupLogging sends JSON logs to a rotating file in the data directory.
func setupLogging(debug bool) {
	lj := &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(lj, &slog.HandlerOptions{
		Level: level,
	})))

	logFile = lj
}

// loadConfig reads the config file and applies flag overrides. The
// first-run prompt is only shown for interactive commands.
func loadConfig(ctx *cli.Context, prompt bool) (*config.Config, error) {
	path := pathutil.ConfigFilePath()

	var opts []config.Option
	if prompt {
		opts = append(opts, config.WithPromptConfig(path))
	}

	opts = append(opts, config.WithViperConfig(path), config.WithCLIConfig(ctx))

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	slog.Debug("config loaded", slog.String("config", spew.Sdump(cfg)))

	return cfg, nil
}

// openStore opens the database and mirrors counter writes to the status
// file.
func openStore() (*store.Mirror, error) {
	client, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, err
	}

	return store.NewMirror(
		client,
		pathutil.StatusFilePath(),
		rewards.KeyTokens,
		rewards.KeyStreak,
	), nil
}

func loadState(db *store.Mirror) *rewards.State {
	state := rewards.Load(db)

	db.Seed(state.Tokens(), state.Streak())

	if err := db.Sync(); err != nil {
		slog.Warn("unable to write status file", slog.Any("error", err))
	}

	return state
}

// newMixer builds a mixer with the configured audio and speech backends.
// The returned function releases both.
func newMixer(cfg *config.Config) (*mixer.Mixer, func()) {
	opts := mixer.Options{
		Voice: mixer.Voice(cfg.Voice.Type),
	}

	var engine *audio.Engine

	if cfg.Mixer.Audio {
		engine = audio.NewEngine()
		opts.Backend = engine
	}

	if cfg.Voice.Enabled {
		cmd, err := speech.New(cfg.Voice.Cmd)
		if err != nil {
			slog.Warn("narration disabled", slog.Any("error", err))
		} else if cmd.Enabled() {
			opts.Narrator = cmd
		}
	}

	m := mixer.New(opts)

	if cfg.Mixer.Preset != "" {
		err := m.ApplyPreset(mixer.Preset(cfg.Mixer.Preset))
		if err != nil {
			slog.Warn("unable to apply preset", slog.Any("error", err))
		}
	}

	return m, func() {
		m.Close()

		if engine != nil {
			engine.Close()
		}
	}
}

// notifier returns the desktop notification for completed activities, or
// nil when notifications are disabled.
func notifier(cfg *config.Config, wait bool) celebrate.Celebrator {
	if !cfg.Notifications.Enabled {
		return nil
	}

	return celebrate.Notifier{
		Title:   "Break complete",
		Message: fmt.Sprintf("+%d tokens. Nice work!", rewards.TokensPerSession),
		Wait:    wait,
	}
}
