package animation

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
)

const airplaneBody = "✈──"

// Airplane rarely crosses the top of the sky with a blinking beacon.
// Between crossings it idles on a frame-interval countdown advanced by the
// speed factor, so faster clocks see planes more often.
type Airplane struct {
	width    int
	x        float64
	y        int
	active   bool
	counter  float64
	nextIn   float64
	blink    float64
	leftward bool
	rng      *rand.Rand
}

func NewAirplane(width, height int, rng *rand.Rand) *Airplane {
	return &Airplane{
		width:  width,
		nextIn: 600 + float64(rng.Intn(1800)),
		rng:    rng,
	}
}

func (a *Airplane) Update(elapsed time.Duration, speed float64) {
	if !a.active {
		a.counter += speed
		if a.counter >= a.nextIn {
			a.counter = 0
			a.nextIn = 600 + float64(a.rng.Intn(1800))
			a.active = true
			a.leftward = a.rng.Intn(2) == 0
			a.y = 1 + a.rng.Intn(3)
			if a.leftward {
				a.x = float64(a.width + 3)
			} else {
				a.x = -4
			}
		}
		return
	}

	a.blink += 0.3 * speed
	step := 0.6 * speed
	if a.leftward {
		a.x -= step
		if a.x < -6 {
			a.active = false
		}
	} else {
		a.x += step
		if a.x > float64(a.width)+6 {
			a.active = false
		}
	}
}

func (a *Airplane) Render(buf *render.Buffer) {
	if !a.active {
		return
	}
	x := int(a.x)
	body := airplaneBody
	tail := x - 1
	if a.leftward {
		body = "──✈"
		tail = x + 3
	}
	buf.SetText(x, a.y, body, tcell.ColorSilver)
	// Beacon blinks on a coarse phase so the diff only touches one cell.
	if int(a.blink)%2 == 0 {
		buf.SetRune(tail, a.y, '*', tcell.ColorRed)
	}
}
