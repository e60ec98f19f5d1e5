package store

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Status is the snapshot of the reward counters that the status command
// falls back to while another process holds the database.
type Status struct {
	UpdatedAt time.Time `json:"updated_at"`
	Tokens    int       `json:"tokens"`
	Streak    int       `json:"streak"`
}

// WriteStatus replaces the status file at path.
func WriteStatus(path string, s Status) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		ferr := f.Close()
		if ferr != nil && err == nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)

	_, err = w.Write(b)
	if err != nil {
		return err
	}

	return w.Flush()
}

// ReadStatus loads the status file at path.
func ReadStatus(path string) (Status, error) {
	var s Status

	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}

	err = json.Unmarshal(b, &s)

	return s, err
}

// Mirror is a DB that copies every counter write to a status file. Counter
// keys other than the two it tracks are stored unchanged.
type Mirror struct {
	DB
	now       func() time.Time
	path      string
	tokensKey string
	streakKey string
	status    Status
}

// NewMirror wraps db so writes to tokensKey and streakKey refresh the status
// file at path.
func NewMirror(db DB, path, tokensKey, streakKey string) *Mirror {
	return &Mirror{
		DB:        db,
		now:       time.Now,
		path:      path,
		tokensKey: tokensKey,
		streakKey: streakKey,
	}
}

func (m *Mirror) Put(key, value string) error {
	err := m.DB.Put(key, value)
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}

	switch key {
	case m.tokensKey:
		m.status.Tokens = n
	case m.streakKey:
		m.status.Streak = n
	default:
		return nil
	}

	// the database write already succeeded
	if err := m.Sync(); err != nil {
		slog.Warn("unable to write status file", slog.Any("error", err))
	}

	return nil
}

// Seed sets the counters without writing them to the database.
func (m *Mirror) Seed(tokens, streak int) {
	m.status.Tokens = tokens
	m.status.Streak = streak
}

// Sync writes the current counters to the status file.
func (m *Mirror) Sync() error {
	m.status.UpdatedAt = m.now()

	return WriteStatus(m.path, m.status)
}

// Status returns the mirrored counters.
func (m *Mirror) Status() Status {
	return m.status
}
