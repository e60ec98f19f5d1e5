package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/unwind/countdown"
	"github.com/ayoisaiah/unwind/internal/content"
	"github.com/ayoisaiah/unwind/internal/pathutil"
	"github.com/ayoisaiah/unwind/internal/timeutil"
	"github.com/ayoisaiah/unwind/internal/ui"
	"github.com/ayoisaiah/unwind/player"
	"github.com/ayoisaiah/unwind/report"
	"github.com/ayoisaiah/unwind/rewards"
	"github.com/ayoisaiah/unwind/store"
	"github.com/ayoisaiah/unwind/tui"
)

const (
	envNoColor       = "NO_COLOR"
	envUnwindNoColor = "UNWIND_NO_COLOR"

	// headlessFPS is enough to tick a seconds display.
	headlessFPS = 4
)

func init() {
	// Override the default help template
	cli.AppHelpTemplate = helpText()
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// defaultAction opens the TUI.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	state := loadState(db)

	mx, closeMixer := newMixer(cfg)
	defer closeMixer()

	m := tui.New(tui.Deps{
		Config:   cfg,
		State:    state,
		Mixer:    mx,
		Notifier: notifier(cfg, false),
		Seed:     uint64(time.Now().UnixNano()),
	})

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()

	return err
}

// playAction runs a single activity countdown in the terminal without the
// TUI.
func playAction(ctx *cli.Context) error {
	key := ctx.Args().First()
	if key == "" {
		return errMissingActivity
	}

	a, ok := content.Lookup(key)
	if !ok {
		return errUnknownActivity.Fmt(key)
	}

	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	state := loadState(db)
	before := state.Tokens()

	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	var completed bool

	ctrl := player.New(player.Options{
		Celebrator:    notifier(cfg, true),
		ReducedMotion: cfg.Display.ReducedMotion,
		OnComplete: func(s player.Session) {
			state.Complete(s.ID, s.Activity)
			completed = true
		},
	})

	ctrl.Open(a)

	loop, _ := ctrl.Start()

	fmt.Fprintf(
		os.Stdout,
		"%s [%s]: %s\n",
		ui.Highlight(a.Title),
		ui.Category(a.Category),
		a.Instruction,
	)

	err = countdown.Drive(
		sigCtx,
		loop,
		countdown.FrameInterval(headlessFPS),
		func() bool {
			more := ctrl.Sample(loop)

			fmt.Fprintf(
				os.Stdout,
				"\r🕒 %s ",
				timeutil.Clock(ctrl.Snapshot().Remaining),
			)

			return more
		},
	)

	fmt.Fprintln(os.Stdout)

	ctrl.Close()

	if !completed {
		if errors.Is(err, context.Canceled) {
			slog.Info("activity interrupted", slog.String("activity", a.Key))
		}

		pterm.Warning.Println("Activity stopped before the countdown finished")

		return nil
	}

	report.Reward(state.Tokens()-before, state.Tokens(), state.Streak())

	return nil
}

// listAction prints the activity catalog.
func listAction(ctx *cli.Context) error {
	acts, err := filterActivities(ctx.String("category"))
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(acts)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	printCatalog(os.Stdout, acts)

	return nil
}

// statsAction prints the reward counters and the sessions completed within
// the reporting window.
func statsAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	start, err := statsStart(ctx.String("period"), ctx.String("since"), time.Now())
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	state := rewards.Load(db)

	sum, err := state.History(start, 10)
	if err != nil {
		return err
	}

	r := newStatsReport(state, sum, start)

	if ctx.Bool("json") {
		b, err := json.Marshal(r)
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	printStats(os.Stdout, r, cfg.Display.TwentyFourHour)

	return nil
}

// quoteAction prints a random quote.
func quoteAction(_ *cli.Context) error {
	printQuote(os.Stdout, content.QuoteAt(rand.IntN(len(content.Quotes()))))

	return nil
}

// statusAction prints the counters. While the TUI holds the database, the
// status file it maintains is read instead.
func statusAction(_ *cli.Context) error {
	client, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		if !store.IsLocked(err) {
			return err
		}

		s, err := store.ReadStatus(pathutil.StatusFilePath())
		if err != nil {
			// nothing to report yet
			return nil
		}

		fmt.Fprintln(os.Stdout, statusLine(s))

		return nil
	}

	defer client.Close()

	state := rewards.Load(client)

	fmt.Fprintln(os.Stdout, statusLine(store.Status{
		Tokens: state.Tokens(),
		Streak: state.Streak(),
	}))

	return nil
}

// editConfigAction handles the edit-config command which opens the unwind
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if UNWIND_NO_COLOR is set
	if _, exists := os.LookupEnv(envUnwindNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	setupLogging(ctx.Bool("debug"))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting unwind")

	if logFile != nil {
		return logFile.Close()
	}

	return nil
}
