package animation

import (
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
)

type bird struct {
	x, y   float64
	offset float64
	flap   float64
}

// Birds cross the daytime sky in a loose flock. Position increments are
// scaled directly by the speed factor; the wing flap rides the same clock.
type Birds struct {
	width  int
	height int
	flock  []bird
	drift  float64
	rng    *rand.Rand
}

func NewBirds(width, height int, rng *rand.Rand) *Birds {
	size := 3 + rng.Intn(3)
	b := &Birds{
		width:  width,
		height: height,
		drift:  0.25 + rng.Float64()*0.15,
		rng:    rng,
	}
	baseY := 2 + rng.Float64()*float64(maxInt(height/4, 3))
	startX := -float64(rng.Intn(width / 2))
	for i := 0; i < size; i++ {
		b.flock = append(b.flock, bird{
			x:      startX - float64(i*3),
			y:      baseY + float64(i%3),
			offset: rng.Float64() * math.Pi * 2,
		})
	}
	return b
}

func (b *Birds) Update(elapsed time.Duration, speed float64) {
	allGone := true
	for i := range b.flock {
		bd := &b.flock[i]
		bd.x += b.drift * speed
		bd.flap += 0.2 * speed
		if bd.x < float64(b.width)+2 {
			allGone = false
		}
	}
	// Once the whole flock has crossed, regroup off the left edge.
	if allGone {
		baseY := 2 + b.rng.Float64()*float64(maxInt(b.height/4, 3))
		gap := float64(b.width/2 + b.rng.Intn(b.width))
		for i := range b.flock {
			b.flock[i].x = -gap - float64(i*3)
			b.flock[i].y = baseY + float64(i%3)
		}
	}
}

func (b *Birds) Render(buf *render.Buffer) {
	for _, bd := range b.flock {
		glyph := 'v'
		if math.Sin(bd.flap+bd.offset) > 0 {
			glyph = '~'
		}
		yBob := int(bd.y + math.Sin(bd.x*0.1+bd.offset)*0.8)
		buf.SetRune(int(bd.x), yBob, glyph, tcell.ColorGray)
	}
}
