package store

import "time"

// Record is a completed session kept for the dashboard.
type Record struct {
	CompletedAt time.Time `json:"completed_at"`
	ID          string    `json:"id"`
	Activity    string    `json:"activity"`
	Category    string    `json:"category"`
	Seconds     int       `json:"seconds"`
}

// KV is a string key-value store.
type KV interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) (string, bool, error)
	// Put stores value under key, replacing any previous value.
	Put(key, value string) error
}

// DB is the storage interface used by unwind.
type DB interface {
	KV
	// AddRecord appends a completed session to the history.
	AddRecord(r Record) error
	// Records returns the history between start and end inclusive, oldest
	// first. A zero start means the beginning of time.
	Records(start, end time.Time) ([]Record, error)
	// Close ends the database connection.
	Close() error
}
