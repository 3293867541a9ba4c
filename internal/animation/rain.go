package animation

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
	"weathr/internal/weather"
)

var rainGlyphs = []rune{'|', '|', '\'', '.', '`'}

type raindrop struct {
	x     float64
	y     float64
	speed float64
	glyph rune
}

// Rain is the falling-rain particle layer. Speed scaling is velocity-based:
// each drop's per-frame fall is multiplied by the speed factor before the
// position integrates, so gravity-like spread between drops is preserved.
type Rain struct {
	drops  []raindrop
	width  int
	height int
	wind   float64
	color  tcell.Color
	rng    *rand.Rand
}

func NewRain(width, height int, intensity weather.Intensity, windDrift float64, freezing bool, rng *rand.Rand) *Rain {
	var divisor int
	switch intensity {
	case weather.Light:
		divisor = 60
	case weather.Heavy:
		divisor = 15
	default:
		divisor = 30
	}

	count := width * height / divisor
	drops := make([]raindrop, count)
	for i := range drops {
		drops[i] = raindrop{
			x:     rng.Float64() * float64(width),
			y:     rng.Float64() * float64(height),
			speed: 0.2 + rng.Float64()*0.6,
			glyph: rainGlyphs[rng.Intn(len(rainGlyphs))],
		}
	}

	color := tcell.ColorTeal
	if freezing {
		color = tcell.ColorLightCyan
	}

	return &Rain{
		drops:  drops,
		width:  width,
		height: height,
		wind:   windDrift,
		color:  color,
		rng:    rng,
	}
}

func (r *Rain) Update(elapsed time.Duration, speed float64) {
	for i := range r.drops {
		d := &r.drops[i]
		d.y += d.speed * speed
		d.x += r.wind * speed

		if d.y >= float64(r.height) {
			d.y = 0
			d.x = r.rng.Float64() * float64(r.width)
		}
		if d.x < 0 {
			d.x += float64(r.width)
		} else if d.x >= float64(r.width) {
			d.x -= float64(r.width)
		}
	}
}

func (r *Rain) Render(buf *render.Buffer) {
	for i := range r.drops {
		d := &r.drops[i]
		buf.SetRune(int(d.x), int(d.y), d.glyph, r.color)
	}
}
