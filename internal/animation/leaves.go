package animation

import (
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
)

var leafGlyphs = []rune{'@', '&', '%', '*'}

var leafColors = []tcell.Color{
	tcell.ColorOrange,
	tcell.ColorMaroon,
	tcell.ColorOlive,
	tcell.ColorDarkGoldenrod,
}

type leaf struct {
	x, y    float64
	driftX  float64
	fall    float64
	wobble  float64
	glyph   rune
	color   tcell.Color
}

// Leaves tumble sideways on the wind. Position increments are scaled
// directly by the speed factor.
type Leaves struct {
	width  int
	height int
	wind   float64
	leaves []leaf
	rng    *rand.Rand
}

func NewLeaves(width, height int, windDrift float64, rng *rand.Rand) *Leaves {
	count := maxInt(width/10, 4)
	l := &Leaves{width: width, height: height, wind: windDrift, rng: rng}
	for i := 0; i < count; i++ {
		l.leaves = append(l.leaves, l.newLeaf(true))
	}
	return l
}

func (l *Leaves) newLeaf(anywhere bool) leaf {
	y := 0.0
	if anywhere {
		y = l.rng.Float64() * float64(l.height)
	}
	return leaf{
		x:      l.rng.Float64() * float64(l.width),
		y:      y,
		driftX: l.wind + 0.1 + l.rng.Float64()*0.2,
		fall:   0.04 + l.rng.Float64()*0.06,
		wobble: l.rng.Float64() * math.Pi * 2,
		glyph:  leafGlyphs[l.rng.Intn(len(leafGlyphs))],
		color:  leafColors[l.rng.Intn(len(leafColors))],
	}
}

func (l *Leaves) Update(elapsed time.Duration, speed float64) {
	for i := range l.leaves {
		lf := &l.leaves[i]
		lf.x += lf.driftX * speed
		lf.y += (lf.fall + math.Sin(lf.y*0.5+lf.wobble)*0.03) * speed
		if lf.x >= float64(l.width) || lf.y >= float64(l.height-1) {
			*lf = l.newLeaf(false)
		}
	}
}

func (l *Leaves) Render(buf *render.Buffer) {
	for _, lf := range l.leaves {
		buf.SetRune(int(lf.x), int(lf.y), lf.glyph, lf.color)
	}
}
