// Package confetti renders particle bursts in the terminal.
package confetti

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

var (
	ErrNegativeCount = errors.New("particle count is negative")
	ErrNoColors      = errors.New("burst has no colors")
	ErrOriginRange   = errors.New("origin outside the unit square")
)

const (
	// MaxParticles caps the live field; the oldest particles go first.
	MaxParticles = 600

	// speedScale turns a burst's start velocity into field widths per second.
	speedScale = 0.012
	// gravityScale tames terminal gravity for a field one unit tall.
	gravityScale = 0.04
	// escapeMargin is how far past an edge a particle may drift.
	escapeMargin = 0.2
)

var defaultShapes = []string{"square", "circle"}

var glyphs = map[string][2]string{
	"circle": {"•", "●"},
	"square": {"▪", "■"},
	"star":   {"✧", "✦"},
}

type particle struct {
	body  *harmonica.Projectile
	glyph string
	style lipgloss.Style
	z     int
	age   int
	life  int
	seq   int
}

// Field holds live particles in normalized coordinates: (0,0) is the top
// left of the drawing area and (1,1) the bottom right.
type Field struct {
	particles []*particle
	rng       *rand.Rand
	dt        float64
	seq       int
}

func New(rng *rand.Rand) *Field {
	return &Field{rng: rng, dt: harmonica.FPS(config.AnimationFPS)}
}

// Fire spawns one burst.
func (f *Field) Fire(b models.Burst) error {
	if b.ParticleCount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, b.ParticleCount)
	}
	if len(b.Colors) == 0 {
		return ErrNoColors
	}
	if b.Origin.X < 0 || b.Origin.X > 1 || b.Origin.Y < 0 || b.Origin.Y > 1 {
		return fmt.Errorf("%w: (%.2f, %.2f)", ErrOriginRange, b.Origin.X, b.Origin.Y)
	}

	shapes := b.Shapes
	if len(shapes) == 0 {
		shapes = defaultShapes
	}
	gravity := b.Gravity
	if gravity == 0 {
		gravity = 1
	}
	size := 0
	if b.Scalar >= 1.2 {
		size = 1
	}
	life := b.Ticks
	if life <= 0 {
		life = 200
	}

	for i := 0; i < b.ParticleCount; i++ {
		angle := (90 + (f.rng.Float64()-0.5)*b.Spread) * math.Pi / 180
		speed := b.StartVelocity * speedScale * (0.5 + f.rng.Float64()/2)
		body := harmonica.NewProjectile(
			f.dt,
			harmonica.Point{X: b.Origin.X, Y: b.Origin.Y},
			harmonica.Vector{X: math.Cos(angle) * speed, Y: -math.Sin(angle) * speed},
			harmonica.Vector{Y: harmonica.TerminalGravity.Y * gravity * gravityScale},
		)
		color := b.Colors[f.rng.Intn(len(b.Colors))]
		f.seq++
		f.particles = append(f.particles, &particle{
			body:  body,
			glyph: glyphFor(shapes[f.rng.Intn(len(shapes))], size),
			style: lipgloss.NewStyle().Foreground(lipgloss.Color(color)),
			z:     b.ZIndex,
			life:  life,
			seq:   f.seq,
		})
	}
	if over := len(f.particles) - MaxParticles; over > 0 {
		f.particles = append(f.particles[:0], f.particles[over:]...)
	}
	return nil
}

// Step advances every particle by one animation frame and drops the ones
// that expired or left the field.
func (f *Field) Step() {
	live := f.particles[:0]
	for _, p := range f.particles {
		pos := p.body.Update()
		p.age++
		if p.age >= p.life || outside(pos) {
			continue
		}
		live = append(live, p)
	}
	for i := len(live); i < len(f.particles); i++ {
		f.particles[i] = nil
	}
	f.particles = live
}

func (f *Field) Active() bool { return len(f.particles) > 0 }

func (f *Field) Len() int { return len(f.particles) }

// Render draws the field into width x height cells. Higher z-index
// particles are drawn over lower ones; among equals, newer over older.
func (f *Field) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	cells := make([][]string, height)
	for y := range cells {
		cells[y] = make([]string, width)
	}

	ordered := make([]*particle, len(f.particles))
	copy(ordered, f.particles)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].z != ordered[j].z {
			return ordered[i].z < ordered[j].z
		}
		return ordered[i].seq < ordered[j].seq
	})
	for _, p := range ordered {
		pos := p.body.Position()
		x := int(pos.X * float64(width))
		y := int(pos.Y * float64(height))
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		cells[y][x] = p.style.Render(p.glyph)
	}

	var b strings.Builder
	for y, row := range cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			if cell == "" {
				cell = " "
			}
			b.WriteString(cell)
		}
	}
	return b.String()
}

func glyphFor(shape string, size int) string {
	if g, ok := glyphs[shape]; ok {
		return g[size]
	}
	return glyphs["square"][size]
}

func outside(pos harmonica.Point) bool {
	return pos.X < -escapeMargin || pos.X > 1+escapeMargin || pos.Y < -escapeMargin || pos.Y > 1+escapeMargin
}
