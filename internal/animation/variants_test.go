package animation_test

import (
	"math/rand"
	"testing"
	"time"

	"weathr/internal/animation"
	"weathr/internal/render"
	"weathr/internal/weather"
)

func newTestRand() *rand.Rand { return rand.New(rand.NewSource(7)) }

func paintedCount(buf *render.Buffer) int {
	n := 0
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			if buf.Get(x, y) != render.Empty {
				n++
			}
		}
	}
	return n
}

// Rendering twice without an update must paint identical cells: pause
// suppresses render only, so a repeated paint has to be stable.
func TestRenderIsIdempotent(t *testing.T) {
	variants := map[string]animation.Animation{
		"rain":      animation.NewRain(80, 24, weather.Medium, 0.1, false, newTestRand()),
		"snow":      animation.NewSnow(80, 24, weather.Medium, 0.1, newTestRand()),
		"fog":       animation.NewFog(80, 24, weather.Medium, newTestRand()),
		"clouds":    animation.NewClouds(80, 24, weather.Light, false, newTestRand()),
		"stars":     animation.NewStars(80, 24, newTestRand()),
		"fireflies": animation.NewFireflies(80, 24, newTestRand()),
		"leaves":    animation.NewLeaves(80, 24, 0.2, newTestRand()),
		"birds":     animation.NewBirds(80, 24, newTestRand()),
		"smoke":     animation.NewSmoke(40, 6, newTestRand()),
	}
	for name, v := range variants {
		v.Update(time.Second, 1.0)

		first := render.NewBuffer(80, 24)
		second := render.NewBuffer(80, 24)
		v.Render(first)
		v.Render(second)

		for y := 0; y < 24; y++ {
			for x := 0; x < 80; x++ {
				if first.Get(x, y) != second.Get(x, y) {
					t.Fatalf("%s: repeated render differs at (%d,%d)", name, x, y)
				}
			}
		}
	}
}

func TestRainFallsFasterAtHigherSpeed(t *testing.T) {
	slow := animation.NewRain(80, 24, weather.Medium, 0, false, rand.New(rand.NewSource(3)))
	fast := animation.NewRain(80, 24, weather.Medium, 0, false, rand.New(rand.NewSource(3)))

	for i := 0; i < 5; i++ {
		slow.Update(time.Second, 1.0)
		fast.Update(time.Second, 4.0)
	}

	a := render.NewBuffer(80, 24)
	b := render.NewBuffer(80, 24)
	slow.Render(a)
	fast.Render(b)

	same := true
	for y := 0; y < 24 && same; y++ {
		for x := 0; x < 80; x++ {
			if a.Get(x, y) != b.Get(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatal("speed multiplier should change particle positions")
	}
}

func TestLightningStrikesOnCountdown(t *testing.T) {
	l := animation.NewLightning(80, 24, newTestRand())

	buf := render.NewBuffer(80, 24)
	l.Render(buf)
	if paintedCount(buf) != 0 {
		t.Fatal("no bolt expected before the countdown elapses")
	}

	// The strike interval tops out at 240 frame units.
	struck := false
	for i := 0; i < 300; i++ {
		l.Update(time.Second, 1.0)
		frame := render.NewBuffer(80, 24)
		l.Render(frame)
		if paintedCount(frame) > 0 {
			struck = true
			break
		}
	}
	if !struck {
		t.Fatal("expected a bolt within the maximum interval")
	}
}

func TestLightningBoltExpires(t *testing.T) {
	l := animation.NewLightning(80, 24, newTestRand())

	struck := false
	for i := 0; i < 300 && !struck; i++ {
		l.Update(time.Second, 1.0)
		frame := render.NewBuffer(80, 24)
		l.Render(frame)
		struck = paintedCount(frame) > 0
	}
	if !struck {
		t.Fatal("expected a bolt to strike")
	}

	// A bolt lasts 3 frame units, and the next strike is at least 80
	// frame units out, so the sky must clear in between.
	for i := 0; i < 4; i++ {
		l.Update(time.Second, 1.0)
	}
	buf := render.NewBuffer(80, 24)
	l.Render(buf)
	if got := paintedCount(buf); got != 0 {
		t.Fatalf("bolt should have expired, still painting %d cells", got)
	}
}

func TestSmokeSpawnsAboveChimney(t *testing.T) {
	s := animation.NewSmoke(40, 10, newTestRand())
	for i := 0; i < 60; i++ {
		s.Update(time.Second, 1.0)
	}
	buf := render.NewBuffer(80, 24)
	s.Render(buf)

	if paintedCount(buf) == 0 {
		t.Fatal("expected smoke particles after a minute of frames")
	}
	for y := 11; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if buf.Get(x, y) != render.Empty {
				t.Fatalf("smoke sank below the chimney mouth at (%d,%d)", x, y)
			}
		}
	}
}

func TestStarsTwinkleInPlace(t *testing.T) {
	s := animation.NewStars(80, 24, newTestRand())

	positions := func() map[[2]int]bool {
		buf := render.NewBuffer(80, 24)
		s.Render(buf)
		set := make(map[[2]int]bool)
		for y := 0; y < 24; y++ {
			for x := 0; x < 80; x++ {
				if buf.Get(x, y) != render.Empty {
					set[[2]int{x, y}] = true
				}
			}
		}
		return set
	}

	before := positions()
	for i := 0; i < 200; i++ {
		s.Update(time.Second, 1.0)
	}
	after := positions()

	if len(before) != len(after) {
		t.Fatalf("star count changed: %d -> %d", len(before), len(after))
	}
	for pos := range before {
		if !after[pos] {
			t.Fatalf("star moved away from %v", pos)
		}
	}
}

func TestFogGrowsTowardIntensityTarget(t *testing.T) {
	light := animation.NewFog(40, 20, weather.Light, rand.New(rand.NewSource(5)))
	heavy := animation.NewFog(40, 20, weather.Heavy, rand.New(rand.NewSource(5)))

	for i := 0; i < 120; i++ {
		light.Update(time.Second, 1.0)
		heavy.Update(time.Second, 1.0)
	}

	lightBuf := render.NewBuffer(40, 20)
	heavyBuf := render.NewBuffer(40, 20)
	light.Render(lightBuf)
	heavy.Render(heavyBuf)

	if paintedCount(heavyBuf) <= paintedCount(lightBuf) {
		t.Fatalf("heavy fog (%d cells) should exceed light fog (%d cells)",
			paintedCount(heavyBuf), paintedCount(lightBuf))
	}
}
