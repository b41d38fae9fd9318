package fireworks

import (
	"math"
	"math/rand/v2"

	"github.com/phanxgames/gamesetup"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	particleLife    = 1.5  // seconds a particle flies
	particleFadeAt  = 1.0  // seconds before the color starts to fade
	particleSpeed   = 6    // time multiplier of the projectile path
	particleRadius  = 5    // head circle radius
	trailWidth      = 5    // trail line width
	trailSeconds    = 0.5  // how far back the trail reaches
	gravity         = 9.81 // downward acceleration of the path
	glitterSegments = 10   // trail segments drawn white, picked from the first 100
)

// fadeTarget is the night-sky blue every particle fades into.
var fadeTarget = gamesetup.RGB(0, 0, 70)

type trailPoint struct {
	pos gamesetup.Vec2
	t   float64
}

// Particle is one spark of an explosion. It follows a projectile path from
// its origin, leaving a short fading trail.
type Particle struct {
	color   gamesetup.Color
	origin  gamesetup.Vec2
	pos     gamesetup.Vec2
	heading float64 // radians
	power   float64
	moving  bool

	clock *gamesetup.Clock
	fade  *gween.Tween
	trail []trailPoint // oldest first
	glint [glitterSegments]int
	rng   *rand.Rand
}

// NewParticle creates a resting particle at pos.
func NewParticle(color gamesetup.Color, pos gamesetup.Vec2, clock *gamesetup.Clock, rng *rand.Rand) *Particle {
	clock.SetCeiling(particleLife)
	p := &Particle{
		color: color,
		clock: clock,
		fade:  gween.New(0, 1, particleLife-particleFadeAt, ease.Linear),
		rng:   rng,
	}
	p.SetOrigin(pos)
	p.Reset()
	return p
}

// SetOrigin moves the particle and the start of its path to pos.
func (p *Particle) SetOrigin(pos gamesetup.Vec2) {
	p.origin = pos
	p.pos = pos
}

// Origin returns the start of the path.
func (p *Particle) Origin() gamesetup.Vec2 { return p.origin }

// Position returns where the particle was last drawn.
func (p *Particle) Position() gamesetup.Vec2 { return p.pos }

// Moving reports whether the particle is in flight.
func (p *Particle) Moving() bool { return p.moving }

// Power returns the launch power.
func (p *Particle) Power() float64 { return p.power }

// Heading returns the launch direction in degrees.
func (p *Particle) Heading() float64 { return p.heading * 180 / math.Pi }

// Go picks a random direction and starts the flight.
func (p *Particle) Go() {
	p.heading = float64(p.rng.IntN(360)) * math.Pi / 180
	p.moving = true
	p.clock.Start()
}

// Reset puts the particle back at its origin with fresh power and glitter.
func (p *Particle) Reset() {
	p.moving = false
	p.pos = p.origin
	p.trail = p.trail[:0]
	p.power = float64(24 + p.rng.IntN(3))
	for i := range p.glint {
		p.glint[i] = p.rng.IntN(100)
	}
	p.clock.Reset()
}

// PathAt returns the position on the path after t path units.
func (p *Particle) PathAt(t float64) gamesetup.Vec2 {
	return gamesetup.Vec2{
		X: p.origin.X + p.power*math.Cos(p.heading)*t,
		Y: p.origin.Y - (p.power*math.Sin(p.heading)*t - gravity*t*t/2),
	}
}

// Faded returns c blended toward the sky color by the time on the clock.
func (p *Particle) Faded(c gamesetup.Color) gamesetup.Color {
	f, _ := p.fade.Set(float32(math.Max(p.clock.Elapsed()-particleFadeAt, 0)))
	k := float64(f)
	return gamesetup.Color{
		R: c.R - (c.R-fadeTarget.R)*k,
		G: c.G - (c.G-fadeTarget.G)*k,
		B: c.B - (c.B-fadeTarget.B)*k,
		A: 1,
	}
}

func (p *Particle) glitters(age int) bool {
	for _, g := range p.glint {
		if g == age {
			return true
		}
	}
	return false
}

// Update advances the particle along its path and draws it with its trail.
func (p *Particle) Update(s gamesetup.Surface) {
	if !p.moving {
		return
	}
	t := p.clock.Elapsed()
	col := p.Faded(p.color)
	glitter := p.Faded(gamesetup.ColorWhite)

	p.trail = append(p.trail, trailPoint{pos: p.pos, t: t})
	p.pos = p.PathAt(t * particleSpeed)
	s.DrawCircle(p.pos, particleRadius, col)

	// Walk newest to oldest; age 0 is the point just recorded.
	last := p.trail[len(p.trail)-1].pos
	keep := 0
	for i := len(p.trail) - 1; i >= 0; i-- {
		tp := p.trail[i]
		if t-tp.t >= trailSeconds {
			keep = i + 1
			break
		}
		if tp.pos == last {
			continue
		}
		c := col
		if p.glitters(len(p.trail) - 1 - i) {
			c = glitter
		}
		s.DrawLine(last, tp.pos, trailWidth, c)
		last = tp.pos
	}
	if keep > 0 {
		p.trail = append(p.trail[:0], p.trail[keep:]...)
	}

	if p.clock.Expired() {
		p.moving = false
	}
}
