package animation

import (
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
	"weathr/internal/weather"
)

type fogParticle struct {
	x, y     float64
	speedY   float64
	speedX   float64
	driftOff float64
	glyph    rune
	color    tcell.Color
}

// Fog is a slow mist of layered particles settling toward the ground.
// Population grows toward a target count derived from intensity; motion is
// phase-scaled through the speed factor so the haze freezes when paused.
type Fog struct {
	width     int
	height    int
	particles []fogParticle
	intensity weather.Intensity
	driftX    float64
	rng       *rand.Rand
}

func NewFog(width, height int, intensity weather.Intensity, rng *rand.Rand) *Fog {
	dir := 0.05
	if rng.Intn(2) == 0 {
		dir = -0.05
	}
	base := 0.4
	switch intensity {
	case weather.Medium:
		base = 1.0
	case weather.Heavy:
		base = 1.6
	}
	return &Fog{
		width:     width,
		height:    height,
		intensity: intensity,
		driftX:    base * dir,
		rng:       rng,
	}
}

func (f *Fog) targetCount() int {
	area := f.width * f.height
	switch f.intensity {
	case weather.Heavy:
		return area / 2
	case weather.Medium:
		return area / 4
	default:
		return area / 8
	}
}

func (f *Fog) spawnRate() int {
	switch f.intensity {
	case weather.Heavy:
		return 8
	case weather.Medium:
		return 4
	default:
		return 2
	}
}

func (f *Fog) spawn() {
	x := f.rng.Float64()*float64(f.width*3) - float64(f.width)
	y := 0.0
	if f.rng.Intn(2) == 0 {
		y = float64(f.rng.Intn(f.height))
	}

	depth := f.rng.Intn(3)
	glyphs := []rune{'.', '·'}
	color := tcell.ColorGray
	speedY := 0.02

	switch f.intensity {
	case weather.Medium:
		glyphs = []rune{'.', '·', ':'}
		speedY = 0.03 - float64(depth)*0.01
	case weather.Heavy:
		glyphs = []rune{'.', '·', ':', '░'}
		speedY = 0.04 - float64(depth)*0.01
	default:
		if depth > 0 {
			speedY = 0.01
		}
	}
	if f.intensity != weather.Light {
		switch depth {
		case 0:
			color = tcell.ColorWhite
		case 1:
			color = tcell.ColorGray
		default:
			color = tcell.ColorDarkGray
		}
	} else if depth > 0 {
		color = tcell.ColorDarkGray
	}

	f.particles = append(f.particles, fogParticle{
		x:        x,
		y:        y,
		speedY:   speedY + f.rng.Float64()*0.01,
		speedX:   f.driftX + f.rng.Float64()*0.03 - 0.015,
		driftOff: f.rng.Float64() * 100,
		glyph:    glyphs[f.rng.Intn(len(glyphs))],
		color:    color,
	})
}

func (f *Fog) Update(elapsed time.Duration, speed float64) {
	if len(f.particles) < f.targetCount() {
		for i := 0; i < f.spawnRate(); i++ {
			f.spawn()
		}
	}

	kept := f.particles[:0]
	for i := range f.particles {
		p := f.particles[i]
		p.y += p.speedY * speed

		drift := math.Sin(p.y*0.1+p.driftOff) * 0.03
		p.x += (p.speedX + drift) * speed

		if p.y >= float64(f.height-1) {
			p.y = 0
			p.x = f.rng.Float64() * float64(f.width)
		}
		if p.x < -20 || p.x > float64(f.width)+20 {
			continue
		}
		kept = append(kept, p)
	}
	f.particles = kept
}

func (f *Fog) Render(buf *render.Buffer) {
	for _, p := range f.particles {
		buf.SetRune(int(p.x), int(p.y), p.glyph, p.color)
	}
}
