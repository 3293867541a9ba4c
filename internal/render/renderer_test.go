package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

type recordedWrite struct {
	x, y int
	ch   rune
}

type recorderDevice struct {
	width, height int
	writes        []recordedWrite
	shows         int
}

func (d *recorderDevice) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	d.writes = append(d.writes, recordedWrite{x, y, primary})
}

func (d *recorderDevice) Show()            { d.shows++ }
func (d *recorderDevice) Size() (int, int) { return d.width, d.height }

func newTestRenderer(w, h int) (*Renderer, *recorderDevice) {
	dev := &recorderDevice{width: w, height: h}
	return NewRenderer(dev, w, h), dev
}

func TestBufferClipsOutOfRangeWrites(t *testing.T) {
	b := NewBuffer(10, 5)

	coords := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {10, 0}, {0, 5}, {100, 100}, {-50, -50},
	}
	for _, c := range coords {
		b.Set(c.x, c.y, Cell{Rune: 'x'})
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if b.Get(x, y) != Empty {
				t.Errorf("cell (%d,%d) modified by out-of-range write", x, y)
			}
		}
	}
}

func TestFirstFlushPaintsEveryCell(t *testing.T) {
	r, dev := newTestRenderer(8, 4)
	if got := r.Flush(); got != 8*4 {
		t.Errorf("first flush wrote %d cells, want %d", got, 8*4)
	}
	if dev.shows != 1 {
		t.Errorf("expected one Show, got %d", dev.shows)
	}
}

func TestUnchangedFrameWritesNothing(t *testing.T) {
	r, dev := newTestRenderer(8, 4)
	r.SetRune(3, 2, '*', tcell.ColorYellow)
	r.Flush()

	dev.writes = nil
	r.Clear()
	r.SetRune(3, 2, '*', tcell.ColorYellow)
	if got := r.Flush(); got != 0 {
		t.Errorf("identical frame wrote %d cells, want 0", got)
	}
	if len(dev.writes) != 0 {
		t.Errorf("device received %d writes for identical frame", len(dev.writes))
	}
}

func TestMovingParticleTouchesTwoCells(t *testing.T) {
	r, dev := newTestRenderer(8, 4)
	r.SetRune(1, 1, '|', tcell.ColorBlue)
	r.Flush()

	dev.writes = nil
	r.Clear()
	r.SetRune(1, 2, '|', tcell.ColorBlue)
	if got := r.Flush(); got != 2 {
		t.Errorf("moving one particle wrote %d cells, want 2 (old + new)", got)
	}
}

func TestColorChangeIsAWrite(t *testing.T) {
	r, _ := newTestRenderer(4, 2)
	r.SetRune(0, 0, '*', tcell.ColorYellow)
	r.Flush()

	r.Clear()
	r.SetRune(0, 0, '*', tcell.ColorWhite)
	if got := r.Flush(); got != 1 {
		t.Errorf("restyled cell wrote %d cells, want 1", got)
	}
}

func TestResizeForcesFullRepaintThenQuiesces(t *testing.T) {
	r, _ := newTestRenderer(8, 4)
	r.Flush()
	if got := r.Flush(); got != 0 {
		t.Fatalf("steady state should write 0 cells, got %d", got)
	}

	r.Resize(10, 6)
	if got := r.Flush(); got != 10*6 {
		t.Errorf("post-resize flush wrote %d cells, want %d", got, 10*6)
	}
	if got := r.Flush(); got != 0 {
		t.Errorf("frame after repaint wrote %d cells, want 0", got)
	}
}

func TestBothBuffersShareDimensions(t *testing.T) {
	r, _ := newTestRenderer(8, 4)
	r.Resize(20, 10)
	if r.cur.width != r.prev.width || r.cur.height != r.prev.height {
		t.Error("current and previous buffers disagree on dimensions after resize")
	}
	if w, h := r.Size(); w != 20 || h != 10 {
		t.Errorf("Size() = (%d,%d), want (20,10)", w, h)
	}
}

func TestSkippedPaintKeepsFrameStable(t *testing.T) {
	r, _ := newTestRenderer(8, 4)
	r.SetRune(2, 2, '*', tcell.ColorYellow)
	r.Flush()

	// Paused frames skip Clear and skip paint passes entirely; the frozen
	// frame must keep producing zero writes.
	for i := 0; i < 3; i++ {
		if got := r.Flush(); got != 0 {
			t.Fatalf("paused frame %d wrote %d cells, want 0", i, got)
		}
	}
}

func TestClearRowErasesStaleText(t *testing.T) {
	r, _ := newTestRenderer(20, 4)
	r.DrawText(0, 1, "[Refreshing...]", tcell.ColorTeal, AttrNone)
	r.Flush()

	r.ClearRow(1)
	r.DrawText(0, 1, "ok", tcell.ColorTeal, AttrNone)
	r.Flush()
	for x := 2; x < 20; x++ {
		if r.cur.Get(x, 1) != Empty {
			t.Fatalf("stale HUD text left at column %d", x)
		}
	}
}

func TestDrawTextClipsAtRightEdge(t *testing.T) {
	r, _ := newTestRenderer(5, 2)
	r.DrawText(3, 0, "hello", tcell.ColorWhite, AttrNone)
	if r.cur.Get(3, 0).Rune != 'h' || r.cur.Get(4, 0).Rune != 'e' {
		t.Error("text not written inside bounds")
	}
	// Remaining runes fell off the edge; the row below must be untouched.
	if r.cur.Get(0, 1) != Empty {
		t.Error("clipped text leaked onto the next row")
	}
}
