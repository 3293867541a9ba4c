package animation

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
)

type boltSegment struct {
	x, y  int
	glyph rune
}

type bolt struct {
	segments       []boltSegment
	framesLeft     float64
	flashIntensity float64
}

// Lightning schedules and draws thunderstorm bolts. Scheduling is
// frame-interval scaled: the countdown to the next strike advances by the
// speed factor each frame, so higher speed shortens the gap between bolts
// rather than stretching any one bolt.
type Lightning struct {
	width   int
	height  int
	current *bolt
	counter float64
	nextIn  float64
	rng     *rand.Rand
}

func NewLightning(width, height int, rng *rand.Rand) *Lightning {
	return &Lightning{
		width:  width,
		height: height,
		nextIn: 60 + float64(rng.Intn(180)),
		rng:    rng,
	}
}

func (l *Lightning) Update(elapsed time.Duration, speed float64) {
	if l.current != nil {
		l.current.framesLeft -= speed
		l.current.flashIntensity -= speed
		if l.current.framesLeft <= 0 {
			l.current = nil
			l.counter = 0
			l.nextIn = 80 + float64(l.rng.Intn(200))
		}
		return
	}

	l.counter += speed
	if l.counter >= l.nextIn {
		l.current = l.strike()
	}
}

func (l *Lightning) Render(buf *render.Buffer) {
	if l.current == nil {
		return
	}
	color := tcell.ColorYellow
	if l.current.flashIntensity > 0 {
		color = tcell.ColorWhite
	}
	for _, seg := range l.current.segments {
		buf.SetRune(seg.x, seg.y, seg.glyph, color)
	}
}

// strike builds a jagged bolt from cloud height toward the ground, in one
// of three shapes.
func (l *Lightning) strike() *bolt {
	x := l.width/4 + l.rng.Intn(maxInt(l.width/2, 1))
	y := 2
	floor := l.height - 10
	var segments []boltSegment

	switch l.rng.Intn(3) {
	case 0:
		for y < floor && len(segments) < 15 {
			segments = append(segments, boltSegment{x, y, '|'})
			y++
			if l.rng.Intn(3) == 0 && x > 1 {
				x--
				segments = append(segments, boltSegment{x, y, '/'})
			} else if l.rng.Intn(3) == 0 && x < l.width-2 {
				x++
				segments = append(segments, boltSegment{x, y, '\\'})
			}
			y++
		}
	case 1:
		for y < floor && len(segments) < 12 {
			segments = append(segments, boltSegment{x, y, '!'})
			y++
			if l.rng.Intn(2) == 0 && x > 2 {
				x--
			} else if x < l.width-3 {
				x++
			}
			y++
		}
	default:
		for i := 0; i < l.height-12; i++ {
			segments = append(segments, boltSegment{x, 2 + i, '|'})
		}
		if x > 3 {
			for i := 0; i < 4; i++ {
				segments = append(segments, boltSegment{x - i - 1, 5 + i, '/'})
			}
		}
		if x < l.width-4 {
			for i := 0; i < 3; i++ {
				segments = append(segments, boltSegment{x + i + 1, 8 + i, '\\'})
			}
		}
	}

	return &bolt{segments: segments, framesLeft: 3, flashIntensity: 2}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
