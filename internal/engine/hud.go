package engine

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
	"weathr/internal/weather"
)

const helpLine = "q:Quit p:Pause r:Refresh h:HUD +/-:Speed ?:Help"

// drawOverlays paints the engine-owned layers on top of the scene: the
// status line, the help line, the transient speed notice, and the data
// attribution. Paused frames skip the full clear, so rows whose content
// can shrink are wiped once when that happens.
func drawOverlays(r *render.Renderer, snap weather.Snapshot, c *Controls,
	units weather.Units, hideLocation bool, attribution string) {

	width, height := r.Size()

	if c.statusDirty {
		r.ClearRow(1)
		c.statusDirty = false
	}
	if !c.HideHUD {
		status := snap.StatusLine(units, hideLocation)
		if c.Refreshing {
			status = "[Refreshing...] " + status
		}
		r.DrawText(2, 1, truncate(status, width-2), tcell.ColorTeal, render.AttrNone)
	}

	if !c.SpeedChangedAt.IsZero() {
		if time.Since(c.SpeedChangedAt) < speedNoticeFor {
			notice := fmt.Sprintf("Speed: %gx", c.Speed)
			r.DrawText(2, 2, notice, tcell.ColorYellow, render.AttrBold)
		} else {
			r.ClearRow(2)
			c.SpeedChangedAt = time.Time{}
		}
	}

	// The help line needs a row of its own above the attribution.
	if c.ShowHelp && height >= 3 {
		r.ClearRow(height - 2)
		r.DrawText(0, height-2, truncate(helpLine, width), tcell.ColorGray, render.AttrNone)
	}

	if attribution != "" {
		x := width - len(attribution) - 2
		if x < 0 {
			x = 0
		}
		r.DrawText(x, height-1, truncate(attribution, width-1), tcell.ColorGray, render.AttrDim)
	}
}

// truncate shortens a line to fit, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
