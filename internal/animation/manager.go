package animation

import (
	"math/rand"
	"time"

	"weathr/internal/render"
	"weathr/internal/weather"
)

// Kind identifies one animation variant slot in the manager. At most one
// instance of each kind is active at a time.
type Kind int

const (
	KindStars Kind = iota
	KindMoon
	KindSun
	KindClouds
	KindSmoke
	KindFog
	KindRain
	KindSnow
	KindLightning
	KindLeaves
	KindFireflies
	KindBirds
	KindAirplane
	kindCount
)

// Compositing contract: later layers overwrite earlier ones at the same
// cell. Sky backdrop first, weather particles last; the foreground scene
// art is painted between the two by the manager itself.
var skyOrder = []Kind{KindStars, KindMoon, KindSun, KindClouds}

var particleOrder = []Kind{
	KindFog, KindRain, KindSnow, KindLightning,
	KindLeaves, KindFireflies, KindBirds, KindAirplane,
}

// ScenePainter draws the static foreground (ground, house or skyline,
// decorations) and reports where chimney smoke should rise from.
type ScenePainter interface {
	Paint(buf *render.Buffer, day bool)
	Chimney() (x, y int, ok bool)
	Resize(width, height int)
}

// kindSpec is the construction fingerprint for one variant. When the
// fingerprint a new snapshot implies differs from the active one, the
// variant is dropped and built fresh; particles never migrate between
// conditions.
type kindSpec struct {
	intensity weather.Intensity
	night     bool
	wind      float64
	freezing  bool
	phase     float64
}

// Manager owns the active animation set and reconciles it against each
// weather snapshot.
type Manager struct {
	width  int
	height int
	scene  ScenePainter
	rng    *rand.Rand

	showLeaves bool

	active  map[Kind]Animation
	specs   map[Kind]kindSpec
	snap    weather.Snapshot
	hasSnap bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithLeaves enables the wind-blown leaves layer.
func WithLeaves() Option {
	return func(m *Manager) { m.showLeaves = true }
}

func NewManager(width, height int, scene ScenePainter, rng *rand.Rand, opts ...Option) *Manager {
	m := &Manager{
		width:  width,
		height: height,
		scene:  scene,
		rng:    rng,
		active: make(map[Kind]Animation, kindCount),
		specs:  make(map[Kind]kindSpec, kindCount),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// windDrift converts wind speed and direction into a horizontal cell
// drift per frame, signed by which way the wind blows across the screen.
func windDrift(snap weather.Snapshot) float64 {
	drift := snap.WindSpeed / 40
	if drift > 0.5 {
		drift = 0.5
	}
	if snap.WindDirection >= 180 {
		drift = -drift
	}
	return drift
}

// desired derives the full variant set a snapshot implies.
func (m *Manager) desired(snap weather.Snapshot) map[Kind]kindSpec {
	night := !snap.IsDay
	cond := snap.Condition
	wind := windDrift(snap)
	want := make(map[Kind]kindSpec, kindCount)

	if night && (cond == weather.Clear || cond == weather.PartlyCloudy) {
		want[KindStars] = kindSpec{night: true}
		want[KindMoon] = kindSpec{night: true, phase: snap.MoonPhase}
	}
	if !night && (cond == weather.Clear || cond == weather.PartlyCloudy) {
		want[KindSun] = kindSpec{}
	}
	if ci := cond.CloudCoverIntensity(); ci != weather.None {
		want[KindClouds] = kindSpec{intensity: ci, night: night}
	}
	if fi := cond.FogIntensity(); fi != weather.None {
		want[KindFog] = kindSpec{intensity: fi}
	}
	if ri := cond.RainIntensity(); ri != weather.None {
		want[KindRain] = kindSpec{
			intensity: ri,
			wind:      wind,
			freezing:  cond == weather.FreezingRain,
		}
	}
	if si := cond.SnowIntensity(); si != weather.None {
		want[KindSnow] = kindSpec{intensity: si, wind: wind}
	}
	if cond.IsThunderstorm() {
		want[KindLightning] = kindSpec{}
	}
	if m.showLeaves {
		want[KindLeaves] = kindSpec{wind: wind}
	}
	if night && cond == weather.Clear && snap.Temperature >= 15 {
		want[KindFireflies] = kindSpec{night: true}
	}
	if !night && (cond == weather.Clear || cond == weather.PartlyCloudy) {
		want[KindBirds] = kindSpec{}
	}
	want[KindAirplane] = kindSpec{}
	if _, _, ok := m.scene.Chimney(); ok {
		want[KindSmoke] = kindSpec{}
	}
	return want
}

func (m *Manager) construct(kind Kind, spec kindSpec) Animation {
	switch kind {
	case KindStars:
		return NewStars(m.width, m.height, m.rng)
	case KindMoon:
		return NewMoon(m.width, m.height, spec.phase)
	case KindSun:
		return NewSun(m.width, m.height)
	case KindClouds:
		return NewClouds(m.width, m.height, spec.intensity, spec.night, m.rng)
	case KindSmoke:
		x, y, _ := m.scene.Chimney()
		return NewSmoke(x, y, m.rng)
	case KindFog:
		return NewFog(m.width, m.height, spec.intensity, m.rng)
	case KindRain:
		return NewRain(m.width, m.height, spec.intensity, spec.wind, spec.freezing, m.rng)
	case KindSnow:
		return NewSnow(m.width, m.height, spec.intensity, spec.wind, m.rng)
	case KindLightning:
		return NewLightning(m.width, m.height, m.rng)
	case KindLeaves:
		return NewLeaves(m.width, m.height, spec.wind, m.rng)
	case KindFireflies:
		return NewFireflies(m.width, m.height, m.rng)
	case KindBirds:
		return NewBirds(m.width, m.height, m.rng)
	case KindAirplane:
		return NewAirplane(m.width, m.height, m.rng)
	}
	return nil
}

// Apply reconciles the active set against a new snapshot: variants no
// longer implied are dropped, newly implied ones are constructed, and
// variants whose construction fingerprint changed are rebuilt fresh.
func (m *Manager) Apply(snap weather.Snapshot) {
	m.snap = snap
	m.hasSnap = true
	want := m.desired(snap)

	for kind := range m.active {
		if _, ok := want[kind]; !ok {
			delete(m.active, kind)
			delete(m.specs, kind)
		}
	}
	for kind, spec := range want {
		if cur, ok := m.specs[kind]; ok && cur == spec {
			continue
		}
		m.active[kind] = m.construct(kind, spec)
		m.specs[kind] = spec
	}
}

// Resize rebuilds every active variant at the new dimensions. Particle
// positions do not survive a resize.
func (m *Manager) Resize(width, height int) {
	m.width = width
	m.height = height
	m.scene.Resize(width, height)
	for kind := range m.active {
		delete(m.active, kind)
		delete(m.specs, kind)
	}
	if m.hasSnap {
		m.Apply(m.snap)
	}
}

// Active reports whether the given variant kind is currently running.
func (m *Manager) Active(kind Kind) bool {
	_, ok := m.active[kind]
	return ok
}

// Advance runs one frame: every active variant updates unconditionally,
// and when not paused the frame is painted back to front — sky, scene,
// smoke, then weather particles.
func (m *Manager) Advance(buf *render.Buffer, elapsed time.Duration, speed float64, paused bool) {
	for _, anim := range m.active {
		anim.Update(elapsed, speed)
	}
	if paused {
		return
	}
	for _, kind := range skyOrder {
		if anim, ok := m.active[kind]; ok {
			anim.Render(buf)
		}
	}
	m.scene.Paint(buf, m.snap.IsDay)
	if anim, ok := m.active[KindSmoke]; ok {
		anim.Render(buf)
	}
	for _, kind := range particleOrder {
		if anim, ok := m.active[kind]; ok {
			anim.Render(buf)
		}
	}
}
