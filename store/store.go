// Package store persists the reward counters and the session history
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/unwind/internal/apperr"
	"github.com/ayoisaiah/unwind/internal/timeutil"
)

const (
	counterBucket = "counters"
	historyBucket = "history"
)

var errAlreadyRunning = &apperr.Error{
	Message: "is unwind already running? Only one instance can be active at a time",
}

// IsLocked reports whether err means another process holds the database.
func IsLocked(err error) bool {
	return errors.Is(err, errAlreadyRunning)
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

var _ DB = (*Client)(nil)

// Get returns the value stored under key.
func (c *Client) Get(key string) (string, bool, error) {
	var (
		value string
		found bool
	)

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(counterBucket)).Get([]byte(key))
		if b == nil {
			return nil
		}

		// the slice is only valid for the life of the transaction
		value = string(b)
		found = true

		return nil
	})

	return value, found, err
}

// Put stores value under key.
func (c *Client) Put(key, value string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(counterBucket)).Put([]byte(key), []byte(value))
	})
}

// AddRecord appends r to the history bucket keyed by its completion time.
func (c *Client) AddRecord(r Record) error {
	value, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(historyBucket)).
			Put(timeutil.ToKey(r.CompletedAt), value)
	})
}

// Records returns the history between start and end.
func (c *Client) Records(start, end time.Time) ([]Record, error) {
	var records []Record

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(historyBucket)).Cursor()
		maxKey := timeutil.ToKey(end)

		var k, v []byte
		if start.IsZero() {
			k, v = cur.First()
		} else {
			k, v = cur.Seek(timeutil.ToKey(start))
		}

		for ; k != nil && bytes.Compare(k, maxKey) <= 0; k, v = cur.Next() {
			var r Record

			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}

			records = append(records, r)
		}

		return nil
	})

	return records, err
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{counterBucket, historyBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Client{
		db,
	}, nil
}
