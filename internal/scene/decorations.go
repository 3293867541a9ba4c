package scene

import (
	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
)

var treeArt = []string{
	"      ####      ",
	"    ########    ",
	"   ##########   ",
	"    ########    ",
	"      _||_      ",
}

var bushArt = []string{
	"  ,.,  ",
	" (,,,,)",
	"  \"||\" ",
}

var fenceArt = []string{
	"|--|--|--|--|",
	"|  |  |  |  |",
}

var mailboxArt = []string{
	" ___ ",
	"|___|",
	"  |  ",
}

// Decorations are the fixed yard props around the house: a tree to the
// left, a fence to the right, a bush and mailbox near the path.
type Decorations struct{}

func (Decorations) Paint(buf *render.Buffer, horizonY, houseX, houseWidth, width int, day bool) {
	treeColor := tcell.ColorDarkGreen
	bushColor := tcell.ColorGreen
	fenceColor := tcell.ColorWhite
	boxColor := tcell.ColorBlue
	if !day {
		treeColor = tcell.NewRGBColor(0, 50, 0)
		bushColor = tcell.ColorDarkGreen
		fenceColor = tcell.ColorGray
		boxColor = tcell.ColorNavy
	}

	treeX := houseX - 20
	if treeX > 0 {
		paintLines(buf, treeX, horizonY-len(treeArt), treeArt, treeColor)
	}

	fenceX := houseX + houseWidth + 2
	if fenceX < width {
		paintLines(buf, fenceX, horizonY-len(fenceArt), fenceArt, fenceColor)
	}

	pathCenter := houseX + houseWidth/2
	if boxX := pathCenter + 6; boxX < width {
		paintLines(buf, boxX, horizonY+1, mailboxArt, boxColor)
	}
	if bushX := pathCenter - 10; bushX > 0 {
		paintLines(buf, bushX, horizonY-len(bushArt)/2, bushArt, bushColor)
	}
}

func paintLines(buf *render.Buffer, x, y int, lines []string, color tcell.Color) {
	for i, line := range lines {
		buf.SetText(x, y+i, line, color)
	}
}
