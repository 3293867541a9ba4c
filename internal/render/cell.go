package render

import "github.com/gdamore/tcell/v2"

// Attr is a bitmask of the text attributes a Cell can carry.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrDim
)

// Cell is one terminal character position: glyph plus style. Cells are
// compared by value during Flush diffing, so the struct must stay comparable.
type Cell struct {
	Rune  rune
	Fg    tcell.Color
	Bg    tcell.Color
	Attrs Attr
}

// invalidRune marks a cell whose previous contents are unknown, forcing the
// next diff to treat it as changed. Never produced by drawing primitives.
const invalidRune rune = -1

// Empty is the cleared state of a cell.
var Empty = Cell{Rune: ' ', Fg: tcell.ColorDefault, Bg: tcell.ColorDefault}

var invalid = Cell{Rune: invalidRune}

// Style converts the cell's color and attributes to a tcell style.
func (c Cell) Style() tcell.Style {
	st := tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg)
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	return st
}
