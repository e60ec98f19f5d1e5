package celebrate

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

var (
	glyphs  = []string{"*", "+", "•", "✦", "✧", "⋆"}
	palette = []lipgloss.Color{
		"#F472B6",
		"#FBBF24",
		"#34D399",
		"#60A5FA",
		"#A78BFA",
		"#F87171",
	}
)

const (
	minSpeed = 12.0
	maxSpeed = 28.0
	// particles fade after this many frames even when still on screen
	maxLife = 90
)

type particle struct {
	proj  *harmonica.Projectile
	glyph string
	color lipgloss.Color
	life  int
}

// Field animates confetti particles on a character grid. Particles follow
// projectile motion under terminal gravity.
type Field struct {
	rng       *rand.Rand
	particles []*particle
	delta     float64
	width     int
	height    int
}

// NewField returns an empty field that advances at the given frame rate.
func NewField(fps int, seed uint64) *Field {
	if fps <= 0 {
		fps = 30
	}

	return &Field{
		rng:    rand.New(rand.NewPCG(seed, seed+1)),
		delta:  harmonica.FPS(fps),
		width:  80,
		height: 24,
	}
}

// Resize sets the drawing surface in cells.
func (f *Field) Resize(width, height int) {
	if width > 0 {
		f.width = width
	}

	if height > 0 {
		f.height = height
	}
}

// Celebrate seeds a new burst of particles.
func (f *Field) Celebrate(b Burst) {
	origin := harmonica.Point{
		X: b.OriginX * float64(f.width),
		Y: b.OriginY * float64(f.height),
	}

	spread := b.Spread * math.Pi / 180

	for range b.Count {
		// straight up is -90 degrees in terminal coordinates
		angle := -math.Pi/2 + (f.rng.Float64()-0.5)*spread
		speed := minSpeed + f.rng.Float64()*(maxSpeed-minSpeed)

		velocity := harmonica.Vector{
			X: math.Cos(angle) * speed * 2, // cells are twice as tall as wide
			Y: math.Sin(angle) * speed,
		}

		f.particles = append(f.particles, &particle{
			proj: harmonica.NewProjectile(
				f.delta,
				origin,
				velocity,
				harmonica.TerminalGravity,
			),
			glyph: glyphs[f.rng.IntN(len(glyphs))],
			color: palette[f.rng.IntN(len(palette))],
		})
	}
}

// Step advances every particle by one frame and drops the ones that left the
// surface or faded.
func (f *Field) Step() {
	live := f.particles[:0]

	for _, p := range f.particles {
		pos := p.proj.Update()
		p.life++

		if p.life > maxLife || pos.Y >= float64(f.height) ||
			pos.X < 0 || pos.X >= float64(f.width) {
			continue
		}

		live = append(live, p)
	}

	f.particles = live
}

// Active reports whether any particle is still visible.
func (f *Field) Active() bool {
	return len(f.particles) > 0
}

// Len returns the number of live particles.
func (f *Field) Len() int {
	return len(f.particles)
}

// Render draws the field as width x height cells.
func (f *Field) Render() string {
	grid := make([][]string, f.height)
	for y := range grid {
		grid[y] = make([]string, f.width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	for _, p := range f.particles {
		pos := p.proj.Position()

		x, y := int(pos.X), int(pos.Y)
		if x < 0 || y < 0 || x >= f.width || y >= f.height {
			continue
		}

		grid[y][x] = lipgloss.NewStyle().Foreground(p.color).Render(p.glyph)
	}

	rows := make([]string, f.height)
	for y := range grid {
		rows[y] = strings.Join(grid[y], "")
	}

	return strings.Join(rows, "\n")
}
