package rewards

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/unwind/internal/content"
	"github.com/ayoisaiah/unwind/store"
)

var breathing = content.Activity{
	Key:      "breath",
	Duration: 120,
	Category: content.Calm,
}

func TestLoadDefaults(t *testing.T) {
	s := Load(&store.Memory{})

	assert.Zero(t, s.Tokens())
	assert.Zero(t, s.Streak())
}

func TestLoadMalformed(t *testing.T) {
	db := &store.Memory{}
	require.NoError(t, db.Put(KeyTokens, "abc"))
	require.NoError(t, db.Put(KeyStreak, "-4"))

	s := Load(db)

	assert.Zero(t, s.Tokens())
	assert.Zero(t, s.Streak())
}

func TestPersistenceRoundTrip(t *testing.T) {
	db := &store.Memory{}
	require.NoError(t, db.Put(KeyTokens, "37"))

	assert.Equal(t, 37, Load(db).Tokens())
}

func TestCompleteGrantsTokens(t *testing.T) {
	db := &store.Memory{}
	s := Load(db)

	s.Complete("one", breathing)
	assert.Equal(t, 10, s.Tokens())
	assert.Equal(t, 1, s.Streak())

	s.Complete("two", breathing)
	assert.Equal(t, 20, s.Tokens())
	assert.Equal(t, 1, s.Streak(), "streak is only raised to at least one")

	reloaded := Load(db)
	assert.Equal(t, 20, reloaded.Tokens())
	assert.Equal(t, 1, reloaded.Streak())
}

func TestCompleteKeepsHigherStreak(t *testing.T) {
	db := &store.Memory{}
	require.NoError(t, db.Put(KeyStreak, "5"))

	s := Load(db)
	s.Complete("one", breathing)

	assert.Equal(t, 5, s.Streak())
}

func TestStorageFailureIsSilent(t *testing.T) {
	db := &store.Memory{FailWrites: true}
	s := Load(db)

	assert.NotPanics(t, func() {
		s.Complete("one", breathing)
	})

	assert.Equal(t, 10, s.Tokens(), "in-memory state still advances")
}

func TestHistory(t *testing.T) {
	db := &store.Memory{}
	s := Load(db)

	now := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.Complete("one", breathing)

	now = now.Add(time.Hour)
	s.Complete("two", content.Activity{Key: "doodle", Duration: 30, Category: content.Energy})

	now = now.Add(time.Hour)

	sum, err := s.History(time.Time{}, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Sessions)
	assert.Equal(t, 150, sum.Seconds)
	assert.Equal(t, 1, sum.ByCategory[content.Calm])
	assert.Equal(t, 1, sum.ByCategory[content.Energy])
	require.Len(t, sum.Recent, 1)
	assert.Equal(t, "two", sum.Recent[0].ID)
}
