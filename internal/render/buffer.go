package render

import "github.com/gdamore/tcell/v2"

// Buffer is a fixed-size 2-D grid of cells, one frame's worth of output.
// Writes outside the grid are silently clipped: animations routinely compute
// positions past the edges and must never take the frame loop down.
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	b.Clear()
	return b
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell at (x, y), clipping silently when out of range.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// SetRune writes a glyph with a foreground color and default background.
func (b *Buffer) SetRune(x, y int, ch rune, fg tcell.Color) {
	b.Set(x, y, Cell{Rune: ch, Fg: fg, Bg: tcell.ColorDefault})
}

// SetText writes a string left to right starting at (x, y), clipped like
// any other write. Spaces are skipped so sprites keep transparent gaps.
func (b *Buffer) SetText(x, y int, text string, fg tcell.Color) {
	col := x
	for _, ch := range text {
		if ch != ' ' {
			b.SetRune(col, y, ch, fg)
		}
		col++
	}
}

// Get returns the cell at (x, y), or Empty when out of range.
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Empty
	}
	return b.cells[y*b.width+x]
}

// Clear resets every cell to Empty using exponential copy.
func (b *Buffer) Clear() {
	b.fill(Empty)
}

func (b *Buffer) fill(c Cell) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = c
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// invalidate fills the buffer with the sentinel cell so that the next diff
// against it repaints everything.
func (b *Buffer) invalidate() {
	b.fill(invalid)
}
