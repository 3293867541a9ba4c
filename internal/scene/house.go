package scene

import (
	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
)

// Wall and door tones are close to weathered timber.
var (
	colorWall = tcell.NewRGBColor(210, 180, 140)
	colorDoor = tcell.NewRGBColor(139, 69, 19)
)

var houseArt = []string{
	"             _._                 ",
	"            |_|-'_~_`-._         ",
	"         _.-'-_~_-~_-~-_`-._     ",
	"     _.-'_~-_~-_-~-_~_~-_~-_`-._ ",
	"   ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~ ",
	"     |  []  []   []   []  [] |   ",
	"     |           __    ___   |   ",
	"   ._|  []  []  | .|  [___]  |_._._._._._._._._._._._._._._._._.",
	"   |=|________()|__|()_______|=|=|=|=|=|=|=|=|=|=|=|=|=|=|=|=|=|",
}

const (
	houseChimneyOffset = 13
	houseRoofRows      = 5
)

// House is the static cottage at the center of the town scene.
type House struct{}

func (House) Width() int {
	w := 0
	for _, line := range houseArt {
		if len(line) > w {
			w = len(line)
		}
	}
	return w
}

func (House) Height() int { return len(houseArt) }

// ChimneyOffset is the column of the chimney mouth relative to the house
// origin; smoke spawns one row above the art.
func (House) ChimneyOffset() int { return houseChimneyOffset }

func (House) Paint(buf *render.Buffer, x, y int, day bool) {
	for row, line := range houseArt {
		for col, ch := range line {
			if ch == ' ' {
				continue
			}
			buf.SetRune(x+col, y+row, ch, houseCharColor(row, ch, day))
		}
	}
}

func houseCharColor(row int, ch rune, day bool) tcell.Color {
	if row < houseRoofRows {
		if !day {
			return tcell.ColorDarkRed
		}
		return tcell.ColorMaroon
	}
	switch ch {
	case '[', ']':
		if day {
			return tcell.ColorTeal
		}
		return tcell.ColorYellow // lit windows after dark
	case '(', ')':
		return colorDoor
	case '=':
		return tcell.ColorDarkGray
	default:
		return colorWall
	}
}
