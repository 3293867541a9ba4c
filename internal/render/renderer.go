package render

import "github.com/gdamore/tcell/v2"

// Device is the subset of tcell.Screen the renderer writes through.
// tcell.Screen satisfies it directly; tests substitute a recorder.
type Device interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
	Size() (int, int)
}

// Renderer owns two equally sized buffers and flushes only the cells that
// differ between them. Drawing primitives target the current buffer; the
// previous buffer holds what the terminal is already showing.
type Renderer struct {
	device Device
	cur    *Buffer
	prev   *Buffer
}

func NewRenderer(device Device, width, height int) *Renderer {
	r := &Renderer{
		device: device,
		cur:    NewBuffer(width, height),
		prev:   NewBuffer(width, height),
	}
	// First flush must paint the whole screen.
	r.prev.invalidate()
	return r
}

func (r *Renderer) Size() (int, int) { return r.cur.width, r.cur.height }

// Frame returns the buffer for the frame being composed.
func (r *Renderer) Frame() *Buffer { return r.cur }

// Set writes one cell into the current frame, clipped to bounds.
func (r *Renderer) Set(x, y int, c Cell) { r.cur.Set(x, y, c) }

// SetRune writes a glyph with a foreground color and default background.
func (r *Renderer) SetRune(x, y int, ch rune, fg tcell.Color) {
	r.cur.Set(x, y, Cell{Rune: ch, Fg: fg, Bg: tcell.ColorDefault})
}

// DrawText writes a string left to right starting at (x, y). Spaces are
// written too, so text layers overwrite whatever is beneath them.
func (r *Renderer) DrawText(x, y int, text string, fg tcell.Color, attrs Attr) {
	col := x
	for _, ch := range text {
		r.cur.Set(col, y, Cell{Rune: ch, Fg: fg, Bg: tcell.ColorDefault, Attrs: attrs})
		col++
	}
}

// Clear resets the current frame. The loop calls this at the top of every
// unpaused frame; while paused the frame is left intact so skipped paint
// passes keep showing the frozen scene underneath a live HUD.
func (r *Renderer) Clear() { r.cur.Clear() }

// ClearRow blanks a single row of the current frame, used before repainting
// HUD lines whose text may have shrunk.
func (r *Renderer) ClearRow(y int) {
	for x := 0; x < r.cur.width; x++ {
		r.cur.Set(x, y, Empty)
	}
}

// Flush emits every cell that differs from the previous frame, presents the
// device, and records the flushed frame as the new previous one. The current
// buffer persists unchanged. Returns the number of cells written; identical
// frames write nothing.
func (r *Renderer) Flush() int {
	written := 0
	idx := 0
	for y := 0; y < r.cur.height; y++ {
		for x := 0; x < r.cur.width; x++ {
			c := r.cur.cells[idx]
			if c != r.prev.cells[idx] {
				r.device.SetContent(x, y, c.Rune, nil, c.Style())
				written++
			}
			idx++
		}
	}
	if written > 0 {
		r.device.Show()
	}
	copy(r.prev.cells, r.cur.cells)
	return written
}

// Resize reallocates both buffers at the new dimensions and invalidates the
// previous frame so the next Flush repaints every cell.
func (r *Renderer) Resize(width, height int) {
	r.cur = NewBuffer(width, height)
	r.prev = NewBuffer(width, height)
	r.prev.invalidate()
}
