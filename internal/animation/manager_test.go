package animation_test

import (
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"weathr/internal/animation"
	"weathr/internal/render"
	"weathr/internal/weather"
)

// flatScene paints nothing and optionally offers a chimney.
type flatScene struct {
	chimney bool
	resized int
}

func (f *flatScene) Paint(buf *render.Buffer, day bool) {}

func (f *flatScene) Chimney() (int, int, bool) {
	if f.chimney {
		return 40, 5, true
	}
	return 0, 0, false
}

func (f *flatScene) Resize(width, height int) { f.resized++ }

func snapFor(cond weather.Condition, day bool) weather.Snapshot {
	return weather.Snapshot{Condition: cond, IsDay: day, Temperature: 20}
}

var _ = Describe("Manager", func() {
	var (
		mgr   *animation.Manager
		scene *flatScene
		buf   *render.Buffer
	)

	BeforeEach(func() {
		scene = &flatScene{}
		mgr = animation.NewManager(80, 24, scene, rand.New(rand.NewSource(1)))
		buf = render.NewBuffer(80, 24)
	})

	Describe("reconciling the active set", func() {
		It("activates rain for rainy conditions", func() {
			mgr.Apply(snapFor(weather.Rain, true))
			Expect(mgr.Active(animation.KindRain)).To(BeTrue())
			Expect(mgr.Active(animation.KindSnow)).To(BeFalse())
		})

		It("swaps rain for snow when the condition changes", func() {
			mgr.Apply(snapFor(weather.Rain, true))
			mgr.Apply(snapFor(weather.Snow, true))
			Expect(mgr.Active(animation.KindRain)).To(BeFalse())
			Expect(mgr.Active(animation.KindSnow)).To(BeTrue())
		})

		It("runs stars and moon only on clear nights", func() {
			mgr.Apply(snapFor(weather.Clear, false))
			Expect(mgr.Active(animation.KindStars)).To(BeTrue())
			Expect(mgr.Active(animation.KindMoon)).To(BeTrue())

			mgr.Apply(snapFor(weather.Overcast, false))
			Expect(mgr.Active(animation.KindStars)).To(BeFalse())
		})

		It("pairs lightning with heavy rain during thunderstorms", func() {
			mgr.Apply(snapFor(weather.Thunderstorm, false))
			Expect(mgr.Active(animation.KindLightning)).To(BeTrue())
			Expect(mgr.Active(animation.KindRain)).To(BeTrue())
		})

		It("adds smoke only when the scene has a chimney", func() {
			mgr.Apply(snapFor(weather.Clear, true))
			Expect(mgr.Active(animation.KindSmoke)).To(BeFalse())

			scene.chimney = true
			mgr.Apply(snapFor(weather.Clear, true))
			Expect(mgr.Active(animation.KindSmoke)).To(BeTrue())
		})

		It("keeps leaves off unless opted in", func() {
			mgr.Apply(snapFor(weather.Clear, true))
			Expect(mgr.Active(animation.KindLeaves)).To(BeFalse())

			withLeaves := animation.NewManager(80, 24, scene,
				rand.New(rand.NewSource(1)), animation.WithLeaves())
			withLeaves.Apply(snapFor(weather.Clear, true))
			Expect(withLeaves.Active(animation.KindLeaves)).To(BeTrue())
		})

		It("leaves the set untouched when a repeat snapshot implies the same variants", func() {
			mgr.Apply(snapFor(weather.Rain, true))
			mgr.Advance(buf, time.Second, 1.0, false)
			before := bufferCells(buf)

			buf.Clear()
			mgr.Apply(snapFor(weather.Rain, true))
			mgr.Advance(buf, 2*time.Second, 0, false)
			Expect(bufferCells(buf)).To(Equal(before),
				"unchanged fingerprint must not reconstruct particles")
		})
	})

	Describe("per-frame advancing", func() {
		It("skips painting while paused", func() {
			mgr.Apply(snapFor(weather.Rain, true))
			mgr.Advance(buf, time.Second, 1.0, true)
			Expect(bufferCells(buf)).To(Equal(bufferCells(render.NewBuffer(80, 24))))
		})

		It("keeps updating variants while paused", func() {
			mgr.Apply(snapFor(weather.Rain, true))
			for i := 0; i < 10; i++ {
				mgr.Advance(buf, time.Second, 1.0, true)
			}
			mgr.Advance(buf, time.Second, 0, false)
			moved := bufferCells(buf)

			fresh := animation.NewManager(80, 24, &flatScene{}, rand.New(rand.NewSource(1)))
			fresh.Apply(snapFor(weather.Rain, true))
			freshBuf := render.NewBuffer(80, 24)
			fresh.Advance(freshBuf, time.Second, 0, false)
			Expect(moved).NotTo(Equal(bufferCells(freshBuf)),
				"pause must advance the clock, not freeze it")
		})
	})

	Describe("resizing", func() {
		It("rebuilds every variant at the new dimensions", func() {
			mgr.Apply(snapFor(weather.Rain, true))
			mgr.Resize(120, 40)
			Expect(scene.resized).To(Equal(1))
			Expect(mgr.Active(animation.KindRain)).To(BeTrue())

			wide := render.NewBuffer(120, 40)
			mgr.Advance(wide, time.Second, 0, false)
			found := false
			for x := 80; x < 120 && !found; x++ {
				for y := 0; y < 40; y++ {
					if wide.Get(x, y).Rune != render.Empty.Rune {
						found = true
						break
					}
				}
			}
			Expect(found).To(BeTrue(), "particles should occupy the widened region")
		})
	})
})

func bufferCells(buf *render.Buffer) []render.Cell {
	w, h := buf.Width(), buf.Height()
	cells := make([]render.Cell, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cells = append(cells, buf.Get(x, y))
		}
	}
	return cells
}
