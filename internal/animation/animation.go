// Package animation provides the per-frame weather layers and the manager
// that selects, orders, and drives them.
//
// Each variant implements [Animation], owning its particle state and its
// own speed-scaling rule:
//
//   - [Rain], [Snow]: velocity-based (per-frame velocity scaled before
//     integrating position)
//   - [Birds], [Airplane], [Leaves]: positional (fixed step scaled directly)
//   - [Clouds], [Fog], [Fireflies], [Sun]: scroll- or phase-based
//   - [Lightning], [Stars], [Smoke] spawn cadence: frame-interval (the
//     delay between visual steps shrinks as speed grows)
//
// The frame loop runs at a fixed cadence with no per-frame time delta, so
// each variant scales the one quantity it already advances once per frame.
package animation

import (
	"time"

	"weathr/internal/render"
)

// Animation is one weather layer's worth of per-frame state.
//
// Update is invoked exactly once per frame for every active variant,
// unconditionally — pausing freezes the picture, not the clock. Render is
// skipped while paused and must be idempotent given unchanged state.
type Animation interface {
	Update(elapsed time.Duration, speed float64)
	Render(buf *render.Buffer)
}
