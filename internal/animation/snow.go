package animation

import (
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
	"weathr/internal/weather"
)

var snowGlyphs = []rune{'*', '*', '.', '+', '·'}

type snowflake struct {
	x     float64
	y     float64
	speed float64
	sway  float64
	glyph rune
}

// Snow is the falling-snow particle layer. Velocity-based speed scaling,
// like rain, with a sinusoidal sideways sway keyed to each flake's height.
type Snow struct {
	flakes []snowflake
	width  int
	height int
	wind   float64
	rng    *rand.Rand
}

func NewSnow(width, height int, intensity weather.Intensity, windDrift float64, rng *rand.Rand) *Snow {
	var divisor int
	switch intensity {
	case weather.Light:
		divisor = 70
	case weather.Heavy:
		divisor = 20
	default:
		divisor = 40
	}

	count := width * height / divisor
	flakes := make([]snowflake, count)
	for i := range flakes {
		flakes[i] = snowflake{
			x:     rng.Float64() * float64(width),
			y:     rng.Float64() * float64(height),
			speed: 0.05 + rng.Float64()*0.15,
			sway:  rng.Float64() * 2 * math.Pi,
			glyph: snowGlyphs[rng.Intn(len(snowGlyphs))],
		}
	}

	return &Snow{
		flakes: flakes,
		width:  width,
		height: height,
		wind:   windDrift * 0.5,
		rng:    rng,
	}
}

func (s *Snow) Update(elapsed time.Duration, speed float64) {
	for i := range s.flakes {
		f := &s.flakes[i]
		f.y += f.speed * speed
		f.x += (s.wind + math.Sin(f.y*0.4+f.sway)*0.15) * speed

		if f.y >= float64(s.height) {
			f.y = 0
			f.x = s.rng.Float64() * float64(s.width)
		}
		if f.x < 0 {
			f.x += float64(s.width)
		} else if f.x >= float64(s.width) {
			f.x -= float64(s.width)
		}
	}
}

func (s *Snow) Render(buf *render.Buffer) {
	for i := range s.flakes {
		f := &s.flakes[i]
		buf.SetRune(int(f.x), int(f.y), f.glyph, tcell.ColorWhite)
	}
}
