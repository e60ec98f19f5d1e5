// Package rewards holds the process-wide reward counters. The counters live
// on an explicit State value that is handed to whichever component needs
// them, and every change is written through to the store.
package rewards

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ayoisaiah/unwind/internal/content"
	"github.com/ayoisaiah/unwind/store"
)

const (
	KeyTokens = "tokens"
	KeyStreak = "streak"

	// TokensPerSession is granted for every completed session.
	TokensPerSession = 10
)

// State is the reward state of the running process.
type State struct {
	db     store.DB
	now    func() time.Time
	tokens int
	streak int
}

// Load reads both counters from db. Missing or malformed values read as 0.
func Load(db store.DB) *State {
	return &State{
		db:     db,
		now:    time.Now,
		tokens: readCounter(db, KeyTokens),
		streak: readCounter(db, KeyStreak),
	}
}

func readCounter(kv store.KV, key string) int {
	v, found, err := kv.Get(key)
	if err != nil {
		slog.Warn(
			"unable to read counter",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return 0
	}

	if !found {
		return 0
	}

	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		slog.Warn(
			"ignoring malformed counter",
			slog.String("key", key),
			slog.String("value", v),
		)

		return 0
	}

	return n
}

// Tokens returns the token balance.
func (s *State) Tokens() int {
	return s.tokens
}

// Streak returns the streak counter.
func (s *State) Streak() int {
	return s.streak
}

// Complete grants the reward for a finished session and records it. Storage
// failures are logged and otherwise ignored.
func (s *State) Complete(id string, a content.Activity) {
	s.tokens += TokensPerSession
	// day boundaries are not tracked: any completion keeps the streak alive
	s.streak = max(s.streak, 1)

	s.write(KeyTokens, s.tokens)
	s.write(KeyStreak, s.streak)

	err := s.db.AddRecord(store.Record{
		ID:          id,
		Activity:    a.Key,
		Category:    string(a.Category),
		Seconds:     a.Seconds(),
		CompletedAt: s.now(),
	})
	if err != nil {
		slog.Warn("unable to record session", slog.Any("error", err))
	}
}

func (s *State) write(key string, n int) {
	err := s.db.Put(key, strconv.Itoa(n))
	if err != nil {
		slog.Warn(
			"unable to persist counter",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

// Summary aggregates the history of a period.
type Summary struct {
	ByCategory map[content.Category]int
	Recent     []store.Record
	Sessions   int
	Seconds    int
}

// History summarises the sessions completed since start. A zero start
// covers the whole history.
func (s *State) History(start time.Time, recent int) (Summary, error) {
	sum := Summary{
		ByCategory: make(map[content.Category]int),
	}

	records, err := s.db.Records(start, s.now())
	if err != nil {
		return sum, err
	}

	for _, r := range records {
		sum.Sessions++
		sum.Seconds += r.Seconds
		sum.ByCategory[content.Category(r.Category)]++
	}

	if recent > 0 && len(records) > recent {
		records = records[len(records)-recent:]
	}

	sum.Recent = records

	return sum, nil
}
