package animation

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
)

var starGlyphs = []rune{'.', '·', '+', '*', '✦'}

type star struct {
	x, y    int
	bright  bool
	twinkle float64
}

// Stars twinkle on clear nights. Twinkling is frame-interval scaled: each
// star's countdown advances by the speed factor, so a faster clock flips
// stars between bright and dim more often without moving them.
type Stars struct {
	stars []star
	rng   *rand.Rand
}

func NewStars(width, height int, rng *rand.Rand) *Stars {
	count := width * height / 60
	s := &Stars{rng: rng}
	skyDepth := maxInt(height/3, 4)
	for i := 0; i < count; i++ {
		s.stars = append(s.stars, star{
			x:       rng.Intn(width),
			y:       rng.Intn(skyDepth),
			bright:  rng.Intn(2) == 0,
			twinkle: 30 + float64(rng.Intn(90)),
		})
	}
	return s
}

func (s *Stars) Update(elapsed time.Duration, speed float64) {
	for i := range s.stars {
		st := &s.stars[i]
		st.twinkle -= speed
		if st.twinkle <= 0 {
			st.bright = !st.bright
			st.twinkle = 30 + float64(s.rng.Intn(90))
		}
	}
}

func (s *Stars) Render(buf *render.Buffer) {
	for _, st := range s.stars {
		glyph := starGlyphs[(st.x+st.y)%2]
		color := tcell.ColorSilver
		if st.bright {
			glyph = starGlyphs[2+(st.x+st.y)%3]
			color = tcell.ColorWhite
		}
		buf.SetRune(st.x, st.y, glyph, color)
	}
}
