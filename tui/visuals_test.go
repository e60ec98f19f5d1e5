package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPulseBreathes(t *testing.T) {
	p := newPulse(30)

	for range 240 {
		p.step(1)
	}

	assert.InDelta(t, maxRadius, p.radius(), 0.2)

	for range 240 {
		p.step(5)
	}

	assert.InDelta(t, minRadius, p.radius(), 0.2)
}

func TestPulseRender(t *testing.T) {
	p := newPulse(30)

	rows := strings.Split(p.render("#60A5FA"), "\n")
	assert.Len(t, rows, int(maxRadius)*2+1)
}

func TestStripWraps(t *testing.T) {
	s := newStrip()

	cells := s.colors("#34D399", 10)
	assert.Len(t, cells, 10)
	assert.Equal(t, "#34d399", cells[0].Hex())

	for range 100 {
		s.step()
	}

	assert.GreaterOrEqual(t, s.offset, 0.0)
	assert.Less(t, s.offset, 1.0)
}

func TestStripInvalidColor(t *testing.T) {
	s := newStrip()

	cells := s.colors("not-a-color", 4)
	assert.Equal(t, fallbackColor.Clamped().Hex(), cells[0].Hex())
}
