package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/unwind/store"
)

func newClient(t *testing.T) (*store.Client, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "unwind.db")

	c, err := store.NewClient(path)
	require.NoError(t, err)

	return c, path
}

func TestCounterRoundTrip(t *testing.T) {
	c, path := newClient(t)

	_, found, err := c.Get("tokens")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Put("tokens", "37"))
	require.NoError(t, c.Close())

	reopened, err := store.NewClient(path)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = reopened.Close()
	})

	v, found, err := reopened.Get("tokens")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "37", v)
}

func TestSecondInstanceIsRejected(t *testing.T) {
	c, path := newClient(t)

	t.Cleanup(func() {
		_ = c.Close()
	})

	_, err := store.NewClient(path)
	assert.ErrorContains(t, err, "already running")
	assert.True(t, store.IsLocked(err), "lock timeout maps to the running error")
}

func TestRecordsRange(t *testing.T) {
	c, _ := newClient(t)

	t.Cleanup(func() {
		_ = c.Close()
	})

	base := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

	var want []store.Record

	for i := range 5 {
		r := store.Record{
			ID:          string(rune('a' + i)),
			Activity:    "breath",
			Category:    "Calm",
			Seconds:     120,
			CompletedAt: base.Add(time.Duration(i) * 24 * time.Hour),
		}

		require.NoError(t, c.AddRecord(r))

		if i >= 1 && i <= 3 {
			want = append(want, r)
		}
	}

	got, err := c.Records(base.Add(24*time.Hour), base.Add(3*24*time.Hour))
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	all, err := c.Records(time.Time{}, base.Add(365*24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestMemory(t *testing.T) {
	var m store.Memory

	_, found, err := m.Get("streak")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, m.Put("streak", "1"))

	v, _, _ := m.Get("streak")
	assert.Equal(t, "1", v)

	m.FailWrites = true
	assert.ErrorIs(t, m.Put("streak", "2"), store.ErrWriteFailed)
	assert.ErrorIs(t, m.AddRecord(store.Record{}), store.ErrWriteFailed)
}
