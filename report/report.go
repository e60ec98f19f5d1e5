// Package report prints user-facing messages to the terminal
package report

import (
	"os"

	"github.com/pterm/pterm"
)

// Reward announces the tokens earned by a completed activity.
func Reward(gained, tokens, streak int) {
	pterm.Success.Printfln(
		"+%d tokens! You now have %d tokens (streak %d)",
		gained,
		tokens,
		streak,
	)
}

// Quit prints err and exits with a failure status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
