package fireworks

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
	"github.com/phanxgames/gamesetup"
)

const (
	twinkleRate  = 0.8 // noise units per second
	skyHorizon   = 0.7 // fraction of the height stars may appear above
	starMinAlpha = 0.25
)

type star struct {
	pos    gamesetup.Vec2
	radius float64
	phase  float64
}

// Sky is a field of stars whose brightness drifts with Perlin noise.
type Sky struct {
	stars []star
	noise *perlin.Perlin
	clock *gamesetup.Clock
}

// NewSky scatters n stars over the upper part of a size surface. The clock
// drives the twinkle and is started here.
func NewSky(n int, size gamesetup.Vec2, clock *gamesetup.Clock, rng *rand.Rand) *Sky {
	sky := &Sky{
		noise: perlin.NewPerlin(2, 2, 3, rng.Int64()),
		clock: clock,
	}
	for i := 0; i < n; i++ {
		sky.stars = append(sky.stars, star{
			pos:    gamesetup.Vec2{X: rng.Float64() * size.X, Y: rng.Float64() * size.Y * skyHorizon},
			radius: 1 + rng.Float64(),
			phase:  float64(i)*7.3 + 0.5,
		})
	}
	clock.Start()
	return sky
}

// Len returns the number of stars.
func (s *Sky) Len() int { return len(s.stars) }

// Brightness returns the alpha of star i at the current clock reading, in
// [starMinAlpha, 1].
func (s *Sky) Brightness(i int) float64 {
	n := s.noise.Noise2D(s.stars[i].phase, s.clock.Elapsed()*twinkleRate)
	// Noise2D stays within about [-1, 1].
	v := (n + 1) / 2
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return starMinAlpha + (1-starMinAlpha)*v
}

// Update draws every star.
func (s *Sky) Update(surf gamesetup.Surface) {
	for i, st := range s.stars {
		c := gamesetup.ColorWhite
		c.A = s.Brightness(i)
		surf.DrawCircle(st.pos, st.radius, c)
	}
}
