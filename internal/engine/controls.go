package engine

import "time"

// Speed bounds for the animation clock multiplier.
const (
	SpeedMin  = 0.25
	SpeedMax  = 4.0
	SpeedStep = 0.25
)

// speedNoticeFor is how long the HUD announces a speed change.
const speedNoticeFor = 2 * time.Second

// Action is what a key press asks the frame loop to do beyond mutating
// control state.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionRefresh
)

// Controls is the per-session interactive state. Pause and speed are
// independent axes: toggling one never touches the other.
type Controls struct {
	Paused     bool
	Speed      float64
	HideHUD    bool
	ShowHelp   bool
	Refreshing bool

	// SpeedChangedAt drives the transient speed notice on the HUD.
	SpeedChangedAt time.Time

	// statusDirty forces a wipe of the status row before the next
	// repaint, covering shrinking content on paused frames.
	statusDirty bool
}

func NewControls(hideHUD bool) Controls {
	return Controls{Speed: 1.0, HideHUD: hideHUD}
}

// Handle applies one key press and reports any loop-level action.
func (c *Controls) Handle(key rune) Action {
	switch key {
	case 'q', 'Q':
		return ActionQuit
	case 'p', 'P', ' ':
		c.Paused = !c.Paused
	case '+', '=':
		c.Speed = clampSpeed(c.Speed + SpeedStep)
		c.SpeedChangedAt = time.Now()
	case '-', '_':
		c.Speed = clampSpeed(c.Speed - SpeedStep)
		c.SpeedChangedAt = time.Now()
	case 'h', 'H':
		c.HideHUD = !c.HideHUD
		c.statusDirty = true
	case '?':
		c.ShowHelp = !c.ShowHelp
	case 'r', 'R':
		return ActionRefresh
	}
	return ActionNone
}

func clampSpeed(s float64) float64 {
	if s < SpeedMin {
		return SpeedMin
	}
	if s > SpeedMax {
		return SpeedMax
	}
	return s
}
