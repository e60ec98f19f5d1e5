// Package speech speaks narration lines through an external text-to-speech
// command such as espeak-ng or say.
package speech

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/unwind/internal/apperr"
	"github.com/ayoisaiah/unwind/mixer"
)

// VoicePlaceholder is replaced by the platform voice name of the narration
// variant.
const VoicePlaceholder = "{voice}"

// Speaking rate in words per minute, a little under the usual 175.
const rate = "166"

var errParseCmd = &apperr.Error{
	Message: "unable to parse voice command",
}

var (
	espeakVoices = map[mixer.Voice]string{
		mixer.Female: "en+f3",
		mixer.Male:   "en+m3",
	}

	sayVoices = map[mixer.Voice]string{
		mixer.Female: "Samantha",
		mixer.Male:   "Alex",
	}
)

// DefaultCmd returns the speech command for the current platform, or "" if
// none is known.
func DefaultCmd() string {
	switch runtime.GOOS {
	case "linux":
		return "espeak-ng -s " + rate + " -v " + VoicePlaceholder
	case "darwin":
		return "say -r " + rate + " -v " + VoicePlaceholder
	}

	return ""
}

func platformVoices() map[mixer.Voice]string {
	if runtime.GOOS == "darwin" {
		return sayVoices
	}

	return espeakVoices
}

// Command runs a speech program once per line. The line is passed as the
// final argument.
type Command struct {
	voices map[mixer.Voice]string
	args   []string
}

var _ mixer.Narrator = (*Command)(nil)

// New parses cmdline. An empty command line yields a Command that stays
// silent.
func New(cmdline string) (*Command, error) {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, errParseCmd.Wrap(err)
	}

	return &Command{args: args, voices: platformVoices()}, nil
}

// Enabled reports whether the command will produce speech.
func (c *Command) Enabled() bool {
	return len(c.args) > 0
}

// VoiceName returns the platform voice used for v. Unknown variants pass
// through unchanged.
func (c *Command) VoiceName(v mixer.Voice) string {
	if name, ok := c.voices[v]; ok {
		return name
	}

	return string(v)
}

// Args returns the argument list used to speak line with voice v.
func (c *Command) Args(v mixer.Voice, line string) []string {
	if !c.Enabled() {
		return nil
	}

	name := c.VoiceName(v)
	out := make([]string, 0, len(c.args)+1)

	for _, a := range c.args {
		out = append(out, strings.ReplaceAll(a, VoicePlaceholder, name))
	}

	return append(out, line)
}

// Say speaks line in the background. Cancelling ctx kills the speech
// process. Failures are logged and otherwise ignored.
func (c *Command) Say(ctx context.Context, v mixer.Voice, line string) {
	args := c.Args(v, line)
	if len(args) == 0 {
		return
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	go func() {
		err := cmd.Run()
		if err == nil || errors.Is(ctx.Err(), context.Canceled) {
			return
		}

		slog.Warn(
			"speech failed",
			slog.String("cmd", args[0]),
			slog.Any("error", err),
		)
	}()
}
