package store

import (
	"errors"
	"slices"
	"sync"
	"time"
)

// ErrWriteFailed is returned by Memory when FailWrites is set.
var ErrWriteFailed = errors.New("write failed")

// Memory is an in-process DB. The zero value is ready to use.
type Memory struct {
	values  map[string]string
	records []Record
	mu      sync.Mutex
	// FailWrites makes every write return ErrWriteFailed.
	FailWrites bool
}

var _ DB = (*Memory)(nil)

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]

	return v, ok, nil
}

func (m *Memory) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites {
		return ErrWriteFailed
	}

	if m.values == nil {
		m.values = make(map[string]string)
	}

	m.values[key] = value

	return nil
}

func (m *Memory) AddRecord(r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites {
		return ErrWriteFailed
	}

	m.records = append(m.records, r)

	slices.SortStableFunc(m.records, func(a, b Record) int {
		return a.CompletedAt.Compare(b.CompletedAt)
	})

	return nil
}

func (m *Memory) Records(start, end time.Time) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Record

	for _, r := range m.records {
		if r.CompletedAt.Before(start) || r.CompletedAt.After(end) {
			continue
		}

		out = append(out, r)
	}

	return out, nil
}

func (m *Memory) Close() error {
	return nil
}
