package animation

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
)

var sunCore = []string{
	"   \\ | /   ",
	"    .-.    ",
	" --( O )-- ",
	"    `-'    ",
	"   / | \\   ",
}

// Sun sits in the upper-left sky with rays that pulse on a phase-scaled
// oscillation, so the shimmer slows and freezes with the speed factor.
type Sun struct {
	x, y  int
	phase float64
}

func NewSun(width, height int) *Sun {
	return &Sun{x: 4, y: 1}
}

func (s *Sun) Update(elapsed time.Duration, speed float64) {
	s.phase += 0.05 * speed
}

func (s *Sun) Render(buf *render.Buffer) {
	for row, line := range sunCore {
		buf.SetText(s.x, s.y+row, line, tcell.ColorYellow)
	}
	// Outer rays breathe in and out with the oscillation phase.
	if math.Sin(s.phase) > 0 {
		buf.SetRune(s.x-2, s.y+2, '-', tcell.ColorLightYellow)
		buf.SetRune(s.x+len(sunCore[2])+1, s.y+2, '-', tcell.ColorLightYellow)
		buf.SetRune(s.x+5, s.y-1, '|', tcell.ColorLightYellow)
	}
}
