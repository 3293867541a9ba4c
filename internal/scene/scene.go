// Package scene paints the static world the weather plays over: ground,
// a cottage with yard decorations, or a recognizable skyline for cities
// that have one.
package scene

import "weathr/internal/render"

// Scene composes the ground with either the town cottage or a city
// skyline. Only the town scene has a chimney for smoke.
type Scene struct {
	width   int
	height  int
	house   House
	ground  Ground
	decor   Decorations
	skyline *Skyline
}

// New builds the scene for a view of the given size. If city names a
// known skyline, the silhouette replaces the cottage.
func New(width, height int, city string) *Scene {
	s := &Scene{width: width, height: height}
	if sk, ok := ResolveSkyline(city); ok {
		s.skyline = sk
	}
	return s
}

func (s *Scene) Resize(width, height int) {
	s.width = width
	s.height = height
}

func (s *Scene) horizonY() int {
	y := s.height - GroundHeight
	if y < 0 {
		y = 0
	}
	return y
}

func (s *Scene) houseOrigin() (int, int) {
	x := s.width/2 - s.house.Width()/2
	if x < 0 {
		x = 0
	}
	y := s.horizonY() - s.house.Height()
	if y < 0 {
		y = 0
	}
	return x, y
}

// Chimney reports where smoke should spawn. Skyline scenes have none.
func (s *Scene) Chimney() (int, int, bool) {
	if s.skyline != nil {
		return 0, 0, false
	}
	x, y := s.houseOrigin()
	return x + s.house.ChimneyOffset(), y - 1, true
}

func (s *Scene) Paint(buf *render.Buffer, day bool) {
	horizon := s.horizonY()
	s.ground.Paint(buf, s.width, horizon, s.height, day)

	if s.skyline != nil {
		x := s.width/2 - s.skyline.Width()/2
		if x < 0 {
			x = 0
		}
		y := horizon - s.skyline.Height()
		if y < 0 {
			y = 0
		}
		s.skyline.Paint(buf, x, y, day)
		return
	}

	x, y := s.houseOrigin()
	s.house.Paint(buf, x, y, day)
	s.decor.Paint(buf, horizon, x, s.house.Width(), s.width, day)
}
