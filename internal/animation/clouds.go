package animation

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"weathr/internal/render"
	"weathr/internal/weather"
)

var cloudSprites = [][]string{
	{
		"  .--.  ",
		" (    ).",
		"(___.__)",
	},
	{
		"   .-.   ",
		"  (   ). ",
		" (___(__)",
	},
	{
		" .--.    .-. ",
		"(    ).-(   )",
		"(____)___(__)",
	},
}

type cloud struct {
	x      float64
	y      int
	sprite int
	speed  float64
}

// Clouds scroll across the upper sky. Horizontal motion is scroll-scaled:
// the offset increment is multiplied by the speed factor each frame.
type Clouds struct {
	width  int
	height int
	clouds []cloud
	color  tcell.Color
}

func NewClouds(width, height int, intensity weather.Intensity, night bool, rng *rand.Rand) *Clouds {
	count := 2
	switch intensity {
	case weather.Medium:
		count = 4
	case weather.Heavy:
		count = 6
	}
	color := tcell.ColorWhite
	if night {
		color = tcell.ColorGray
	}
	if intensity == weather.Heavy {
		color = tcell.ColorDarkGray
	}

	c := &Clouds{width: width, height: height, color: color}
	skyDepth := maxInt(height/4, 3)
	for i := 0; i < count; i++ {
		c.clouds = append(c.clouds, cloud{
			x:      rng.Float64() * float64(width),
			y:      rng.Intn(skyDepth),
			sprite: rng.Intn(len(cloudSprites)),
			speed:  0.05 + rng.Float64()*0.1,
		})
	}
	return c
}

func (c *Clouds) Update(elapsed time.Duration, speed float64) {
	for i := range c.clouds {
		cl := &c.clouds[i]
		cl.x += cl.speed * speed
		if int(cl.x) > c.width+4 {
			cl.x = -float64(len(cloudSprites[cl.sprite][0]))
		}
	}
}

func (c *Clouds) Render(buf *render.Buffer) {
	for _, cl := range c.clouds {
		for row, line := range cloudSprites[cl.sprite] {
			buf.SetText(int(cl.x), cl.y+row, line, c.color)
		}
	}
}
