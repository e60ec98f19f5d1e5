// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const secondsInAMinute = 60

type Period string

const (
	PeriodAllTime Period = "all-time"
	PeriodToday   Period = "today"
	Period7Days   Period = "7days"
	Period30Days  Period = "30days"
)

// Range maps a period to the day offset of its first day relative to today.
var Range = map[Period]int{
	PeriodToday:  0,
	Period7Days:  -6,
	Period30Days: -29,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	Period7Days,
	Period30Days,
}

// CeilSeconds returns the number of whole seconds needed to cover d. It never
// returns a negative number.
func CeilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	return int((d + time.Second - 1) / time.Second)
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	if val < 0 {
		val = 0
	}

	return val / secondsInAMinute, val % secondsInAMinute
}

// Clock formats a seconds value as MM:SS.
func Clock(val int) string {
	m, s := SecsToMinsAndSecs(val)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// PeriodStart returns the start of the period relative to now. The zero time
// is returned for PeriodAllTime and unknown periods.
func PeriodStart(p Period, now time.Time) time.Time {
	offset, ok := Range[p]
	if !ok {
		return time.Time{}
	}

	return RoundToStart(now).AddDate(0, 0, offset)
}

// FromStr parses an absolute or relative date string such as "yesterday" or
// "3 days ago".
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	d, err := dps.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse %q: %w", s, err)
	}

	return d.Time, nil
}

// keyLayout is fixed width so that keys sort in time order.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
