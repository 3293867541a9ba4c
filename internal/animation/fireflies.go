package animation

import (
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
)

type firefly struct {
	cx, cy  float64
	radius  float64
	angle   float64
	speed   float64
	glowOff float64
}

// Fireflies wander in small loops near the ground on clear warm nights.
// Motion and glow are phase-scaled through the speed factor.
type Fireflies struct {
	width  int
	height int
	flies  []firefly
	phase  float64
}

func NewFireflies(width, height int, rng *rand.Rand) *Fireflies {
	count := maxInt(width/12, 3)
	f := &Fireflies{width: width, height: height}
	for i := 0; i < count; i++ {
		f.flies = append(f.flies, firefly{
			cx:      rng.Float64() * float64(width),
			cy:      float64(height-8) + rng.Float64()*5,
			radius:  1 + rng.Float64()*2.5,
			angle:   rng.Float64() * math.Pi * 2,
			speed:   0.02 + rng.Float64()*0.04,
			glowOff: rng.Float64() * math.Pi * 2,
		})
	}
	return f
}

func (f *Fireflies) Update(elapsed time.Duration, speed float64) {
	f.phase += 0.08 * speed
	for i := range f.flies {
		f.flies[i].angle += f.flies[i].speed * speed
	}
}

func (f *Fireflies) Render(buf *render.Buffer) {
	for _, fl := range f.flies {
		x := fl.cx + math.Cos(fl.angle)*fl.radius*2
		y := fl.cy + math.Sin(fl.angle)*fl.radius
		glow := math.Sin(f.phase + fl.glowOff)
		switch {
		case glow > 0.3:
			buf.SetRune(int(x), int(y), '*', tcell.ColorYellow)
		case glow > -0.3:
			buf.SetRune(int(x), int(y), '·', tcell.ColorOlive)
		}
		// Fully dimmed fireflies are invisible.
	}
}
