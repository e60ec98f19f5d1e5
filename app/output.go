package app

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/unwind/internal/content"
	"github.com/ayoisaiah/unwind/internal/timeutil"
	"github.com/ayoisaiah/unwind/internal/ui"
	"github.com/ayoisaiah/unwind/rewards"
	"github.com/ayoisaiah/unwind/store"
)

const noSessionsMsg = "No sessions found for the specified time range"

// statsReport is the JSON form of the stats command.
type statsReport struct {
	Start      time.Time                `json:"start"`
	ByCategory map[content.Category]int `json:"by_category"`
	Recent     []store.Record           `json:"recent"`
	Tokens     int                      `json:"tokens"`
	Streak     int                      `json:"streak"`
	Sessions   int                      `json:"sessions"`
	Seconds    int                      `json:"seconds"`
}

// filterActivities returns the catalog, optionally narrowed to a category,
// in natural key order.
func filterActivities(category string) ([]content.Activity, error) {
	acts := content.Activities()

	if category != "" {
		i := slices.IndexFunc(content.Categories, func(c content.Category) bool {
			return strings.EqualFold(string(c), category)
		})
		if i < 0 {
			return nil, errUnknownCategory.Fmt(category)
		}

		acts = content.ByCategory(content.Categories[i])
	}

	slices.SortFunc(acts, func(a, b content.Activity) int {
		switch {
		case natural.Less(a.Key, b.Key):
			return -1
		case natural.Less(b.Key, a.Key):
			return 1
		}

		return 0
	})

	return acts, nil
}

// printCatalog prints a table of activities.
func printCatalog(w io.Writer, acts []content.Activity) {
	ui.CatalogTable(acts).Print(w)
}

// statsStart resolves the start of the reporting window. A --since value
// takes precedence over the period.
func statsStart(period, since string, now time.Time) (time.Time, error) {
	if since != "" {
		t, err := timeutil.FromStr(since, now)
		if err != nil {
			return time.Time{}, errInvalidSince.Wrap(err)
		}

		return t, nil
	}

	p := timeutil.Period(period)
	if !slices.Contains(timeutil.PeriodCollection, p) {
		return time.Time{}, errUnknownPeriod.Fmt(period)
	}

	return timeutil.PeriodStart(p, now), nil
}

func newStatsReport(state *rewards.State, sum rewards.Summary, start time.Time) statsReport {
	return statsReport{
		Start:      start,
		Tokens:     state.Tokens(),
		Streak:     state.Streak(),
		Sessions:   sum.Sessions,
		Seconds:    sum.Seconds,
		ByCategory: sum.ByCategory,
		Recent:     sum.Recent,
	}
}

// printStats writes the dashboard summary.
func printStats(w io.Writer, r statsReport, twentyFourHour bool) {
	fmt.Fprintf(
		w,
		"%s %s   %s %s\n\n",
		ui.Yellow("Tokens:"),
		ui.Highlight(r.Tokens),
		ui.Yellow("Streak:"),
		ui.Highlight(r.Streak),
	)

	if r.Sessions == 0 {
		fmt.Fprintln(w, noSessionsMsg)
		return
	}

	fmt.Fprintf(
		w,
		"%s %d sessions, %s\n\n",
		ui.Yellow("Completed:"),
		r.Sessions,
		timeutil.Clock(r.Seconds),
	)

	ui.CategoryTable(r.ByCategory).Print(w)

	layout := "Jan 02, 2006 03:04 PM"
	if twentyFourHour {
		layout = "Jan 02, 2006 15:04"
	}

	recent := ui.NewTable("completed", "activity", "category", "duration")

	for i := len(r.Recent) - 1; i >= 0; i-- {
		rec := r.Recent[i]

		title := rec.Activity
		if a, ok := content.Lookup(rec.Activity); ok {
			title = a.Title
		}

		recent.Row(
			rec.CompletedAt.Local().Format(layout),
			title,
			ui.Category(content.Category(rec.Category)),
			timeutil.Clock(rec.Seconds),
		)
	}

	recent.Print(w)
}

// statusLine is the compact counter summary for prompts and status bars.
func statusLine(s store.Status) string {
	return fmt.Sprintf("🪙 %d 🔥 %d", s.Tokens, s.Streak)
}

func printQuote(w io.Writer, q content.Quote) {
	fmt.Fprintf(w, "%s\n  #%s\n", ui.Highlight(q.Text), ui.Cyan(q.Label()))
}
