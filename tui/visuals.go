package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// breathCycle is one inhale plus one exhale, in seconds.
	breathCycle = 8
	minRadius   = 1.5
	maxRadius   = 4.0
	stripSpeed  = 0.01
	stripWidth  = 48
)

var fallbackColor = colorful.Color{R: 0.49, G: 0.23, B: 0.93}

// pulse eases a circle between two radii in time with a breathing cycle.
type pulse struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newPulse(fps int) *pulse {
	if fps <= 0 {
		fps = 30
	}

	return &pulse{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 1.5, 0.5),
	}
}

// step moves the circle toward the breathing target for elapsed seconds.
func (p *pulse) step(elapsed int) {
	target := 0.0
	if elapsed%breathCycle < breathCycle/2 {
		target = 1
	}

	p.pos, p.vel = p.spring.Update(p.pos, p.vel, target)
}

// radius is the current radius in rows.
func (p *pulse) radius() float64 {
	r := minRadius + p.pos*(maxRadius-minRadius)

	return math.Max(0, r)
}

func (p *pulse) render(hex string) string {
	r := p.radius()
	size := int(maxRadius)

	rows := make([]string, 0, size*2+1)

	for y := -size; y <= size; y++ {
		var b strings.Builder

		for x := -size * 2; x <= size*2; x++ {
			// cells are roughly twice as tall as they are wide
			dx := float64(x) / 2
			if dx*dx+float64(y*y) <= r*r {
				b.WriteString("●")
			} else {
				b.WriteString(" ")
			}
		}

		rows = append(rows, b.String())
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex)).
		Render(strings.Join(rows, "\n"))
}

// strip slides a gradient between an activity colour and its complement.
type strip struct {
	offset float64
}

func newStrip() *strip {
	return &strip{}
}

func (s *strip) step() {
	s.offset += stripSpeed
	if s.offset >= 1 {
		s.offset--
	}
}

// colors returns the cell colours of a strip of the given width.
func (s *strip) colors(hex string, width int) []colorful.Color {
	from, err := colorful.Hex(hex)
	if err != nil {
		from = fallbackColor
	}

	h, c, l := from.Hcl()
	to := colorful.Hcl(math.Mod(h+180, 360), c, l).Clamped()

	cells := make([]colorful.Color, width)

	for i := range cells {
		t := math.Mod(float64(i)/float64(width)+s.offset, 1)
		// triangle wave so the strip wraps without a seam
		t = 1 - math.Abs(2*t-1)
		cells[i] = from.BlendLuv(to, t).Clamped()
	}

	return cells
}

func (s *strip) render(hex string, width int) string {
	var b strings.Builder

	for _, c := range s.colors(hex, width) {
		b.WriteString(
			lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("█"),
		)
	}

	line := b.String()

	return line + "\n" + line
}
