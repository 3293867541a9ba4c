package animation

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
)

const (
	maxSmokeParticles  = 200
	smokeMinAge        = 70
	smokeAgeVariance   = 30
	smokeVerticalSpeed = 0.1
	smokeDriftScale    = 0.08
	smokeSpawnJitterX  = 1.6
	smokeSpawnRate     = 12
)

type smokeParticle struct {
	x, y   float64
	age    float64
	maxAge float64
	drift  float64
}

func (p *smokeParticle) glyph() rune {
	switch {
	case p.age <= 6:
		return 'o'
	case p.age <= 14:
		return '.'
	case p.age <= 25:
		return '~'
	default:
		return '·'
	}
}

func (p *smokeParticle) color() tcell.Color {
	ratio := p.age / p.maxAge
	switch {
	case ratio < 0.3:
		return tcell.ColorWhite
	case ratio < 0.6:
		return tcell.ColorGray
	default:
		return tcell.ColorDarkGray
	}
}

// Smoke rises from a fixed chimney position. Spawn cadence is
// frame-interval scaled: the counter advances by the speed factor, so
// faster clocks puff more often while each particle's drift stays gentle.
type Smoke struct {
	chimneyX int
	chimneyY int
	parts    []smokeParticle
	counter  float64
	rng      *rand.Rand
}

func NewSmoke(chimneyX, chimneyY int, rng *rand.Rand) *Smoke {
	return &Smoke{
		chimneyX: chimneyX,
		chimneyY: chimneyY,
		parts:    make([]smokeParticle, 0, maxSmokeParticles),
		rng:      rng,
	}
}

func (s *Smoke) Update(elapsed time.Duration, speed float64) {
	kept := s.parts[:0]
	for i := range s.parts {
		p := s.parts[i]
		p.age += speed
		p.y -= smokeVerticalSpeed * speed
		p.x += p.drift * speed
		if p.age < p.maxAge && p.y >= 0 {
			kept = append(kept, p)
		}
	}
	s.parts = kept

	s.counter += speed
	if s.counter >= smokeSpawnRate && len(s.parts) < maxSmokeParticles {
		s.counter = 0
		s.parts = append(s.parts, smokeParticle{
			x:      float64(s.chimneyX) + (s.rng.Float64()-0.5)*smokeSpawnJitterX,
			y:      float64(s.chimneyY),
			maxAge: smokeMinAge + float64(s.rng.Intn(smokeAgeVariance)),
			drift:  (s.rng.Float64() - 0.5) * smokeDriftScale,
		})
	}
}

func (s *Smoke) Render(buf *render.Buffer) {
	for i := range s.parts {
		p := &s.parts[i]
		buf.SetRune(int(p.x), int(p.y), p.glyph(), p.color())
	}
}
