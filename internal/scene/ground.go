package scene

import (
	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
)

// GroundHeight is how many rows the ground strip occupies at the bottom
// of the view.
const GroundHeight = 7

var groundTufts = []rune{',', '.', '\'', '"', '`'}

// Ground paints the horizon line and a textured grass strip below it.
// Texture placement is a pure function of the cell position so repeated
// paints are identical.
type Ground struct{}

func (Ground) Paint(buf *render.Buffer, width, horizonY, height int, day bool) {
	grass := tcell.ColorGreen
	dirt := tcell.ColorDarkGoldenrod
	if !day {
		grass = tcell.ColorDarkGreen
		dirt = tcell.ColorDarkGray
	}

	for x := 0; x < width; x++ {
		buf.SetRune(x, horizonY, '^', grass)
	}
	for y := horizonY + 1; y < height; y++ {
		for x := 0; x < width; x++ {
			h := (x*31 + y*17) % 23
			switch {
			case h == 0:
				buf.SetRune(x, y, groundTufts[(x+y)%len(groundTufts)], grass)
			case h == 7:
				buf.SetRune(x, y, '.', dirt)
			}
		}
	}
}
