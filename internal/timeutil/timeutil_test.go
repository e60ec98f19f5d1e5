package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCeilSeconds(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want int
	}{
		{0, 0},
		{-time.Second, 0},
		{time.Millisecond, 1},
		{999 * time.Millisecond, 1},
		{time.Second, 1},
		{time.Second + time.Nanosecond, 2},
		{59*time.Second + 1, 60},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, CeilSeconds(c.in), c.in.String())
	}
}

func TestClock(t *testing.T) {
	assert.Equal(t, "01:05", Clock(65))
	assert.Equal(t, "00:00", Clock(-3))
	assert.Equal(t, "10:00", Clock(600))
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 4, 5, 0, time.UTC)

	assert.Equal(
		t,
		time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		PeriodStart(Period7Days, now),
	)
	assert.Equal(
		t,
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		PeriodStart(PeriodToday, now),
	)
	assert.True(t, PeriodStart(PeriodAllTime, now).IsZero())
}

func TestToKeySortsChronologically(t *testing.T) {
	a := time.Date(2024, time.March, 10, 15, 4, 5, 0, time.UTC)
	b := a.Add(500 * time.Millisecond)

	assert.Less(t, string(ToKey(a)), string(ToKey(b)))
	assert.Equal(t, "2024-03-10T15:04:05.000000000Z", string(ToKey(a)))
}
