package animation

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
)

var moonPhases = []struct {
	name   string
	sprite []string
}{
	{"new", []string{"  ___  ", " /   \\ ", "(     )", " \\___/ "}},
	{"waxing crescent", []string{"  ___  ", " /  )\\ ", "(   ) )", " \\_)_/ "}},
	{"first quarter", []string{"  ___  ", " / |#\\ ", "(  |##)", " \\_|#/ "}},
	{"waxing gibbous", []string{"  ___  ", " /(##\\ ", "( (###)", " \\(#_/ "}},
	{"full", []string{"  ___  ", " /###\\ ", "(#####)", " \\###/ "}},
	{"waning gibbous", []string{"  ___  ", " /##)\\ ", "(###) )", " \\#_)_/"}},
	{"last quarter", []string{"  ___  ", " /#| \\ ", "(##|  )", " \\#|_/ "}},
	{"waning crescent", []string{"  ___  ", " /(  \\ ", "( (   )", " \\_(_/ "}},
}

// Moon is a static night-sky sprite whose face is chosen by phase.
type Moon struct {
	x, y  int
	phase int
}

// NewMoon places the moon in the upper-right sky. phase is a fraction of
// the synodic cycle in [0, 1).
func NewMoon(width, height int, phase float64) *Moon {
	idx := int(phase*8+0.5) % 8
	if idx < 0 {
		idx = 0
	}
	return &Moon{x: width - 14, y: 1, phase: idx}
}

func (m *Moon) Update(elapsed time.Duration, speed float64) {}

func (m *Moon) Render(buf *render.Buffer) {
	for row, line := range moonPhases[m.phase].sprite {
		buf.SetText(m.x, m.y+row, line, tcell.ColorLightYellow)
	}
}
