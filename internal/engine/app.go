package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"weathr/internal/animation"
	"weathr/internal/render"
	"weathr/internal/scene"
	"weathr/internal/weather"
)

// Minimum view for the scene art plus overlays.
const (
	MinWidth  = 70
	MinHeight = 20
)

const framePeriod = time.Second / 30

// ErrTerminalTooSmall is returned before the loop starts when the
// terminal cannot fit the scene.
var ErrTerminalTooSmall = errors.New("terminal too small")

// Params configures one run of the frame loop.
type Params struct {
	Screen tcell.Screen

	// Snapshot seeds the display until the first update arrives.
	Snapshot weather.Snapshot
	// Updates delivers weather asynchronously; nil means the seed
	// snapshot is final (simulation mode).
	Updates <-chan weather.Snapshot
	// Refresh cancels any in-flight fetch and starts a new one,
	// returning the replacement channel. nil disables manual refresh.
	Refresh func() <-chan weather.Snapshot

	Units        weather.Units
	City         string
	Attribution  string
	Duration     time.Duration
	HideHUD      bool
	HideLocation bool
	Leaves       bool
	Rand         *rand.Rand
}

// Run drives the frame loop until quit, the duration limit, or a fatal
// input error. The caller owns screen init and fini.
func Run(ctx context.Context, p Params) error {
	width, height := p.Screen.Size()
	if width < MinWidth || height < MinHeight {
		return fmt.Errorf("%w: need at least %dx%d, have %dx%d",
			ErrTerminalTooSmall, MinWidth, MinHeight, width, height)
	}
	if p.Rand == nil {
		p.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	renderer := render.NewRenderer(p.Screen, width, height)
	world := scene.New(width, height, p.City)

	var opts []animation.Option
	if p.Leaves {
		opts = append(opts, animation.WithLeaves())
	}
	mgr := animation.NewManager(width, height, world, p.Rand, opts...)

	snap := p.Snapshot
	mgr.Apply(snap)
	controls := NewControls(p.HideHUD)
	updates := p.Updates

	// Input polling blocks, so it runs apart from the frame loop and
	// hands events over a channel. PollEvent returns nil after Fini.
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := p.Screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	start := time.Now()
	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	for {
		// Drain pending input first so a quit never waits on a paint.
		for {
			var ev tcell.Event
			select {
			case ev = <-events:
			default:
			}
			if ev == nil {
				break
			}
			switch action := handleEvent(ev, &controls, renderer, mgr); action {
			case ActionQuit:
				return nil
			case ActionRefresh:
				if p.Refresh != nil {
					updates = p.Refresh()
					controls.Refreshing = true
				}
			}
		}

		// A delivered snapshot, live or degraded, ends the refresh.
		select {
		case next, ok := <-updates:
			if ok {
				snap = next
				controls.Refreshing = false
				controls.statusDirty = true
				mgr.Apply(snap)
			} else {
				updates = nil
			}
		default:
		}

		if !controls.Paused {
			renderer.Clear()
		}
		mgr.Advance(renderer.Frame(), time.Since(start), controls.Speed, controls.Paused)
		drawOverlays(renderer, snap, &controls, p.Units, p.HideLocation, p.Attribution)
		renderer.Flush()

		if p.Duration > 0 && time.Since(start) >= p.Duration {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// Late frames are dropped, never replayed.
		}
	}
}

func handleEvent(ev tcell.Event, c *Controls, r *render.Renderer, mgr *animation.Manager) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ActionQuit
		case tcell.KeyRune:
			return c.Handle(ev.Rune())
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		r.Resize(w, h)
		mgr.Resize(w, h)
	}
	return ActionNone
}
