package fireworks

import (
	"github.com/phanxgames/gamesetup"
)

// restoreDrop is how far below its pad a rocket reappears after exploding.
const restoreDrop = 200

// Rocket climbs from its pad, bursts into particles at the top of its
// flight and, after a delay, rises back onto the pad to be launched again.
type Rocket struct {
	*gamesetup.Sprite
	scene     *Scene
	name      string
	color     gamesetup.Color
	origin    gamesetup.Vec2
	climb     float64
	particles []*Particle

	clock  *gamesetup.Clock
	flight *gamesetup.ClockTween
	rise   *gamesetup.ClockTween

	launched  bool
	exploded  bool
	restoring bool
}

func newRocket(s *Scene, rc RocketConfig) *Rocket {
	color := Colors[rc.Color]
	r := &Rocket{
		Sprite: gamesetup.NewSprite(gamesetup.Box{W: 10, H: 36, Fill: color, Stroke: gamesetup.ColorWhite}),
		scene:  s,
		name:   rc.Color,
		color:  color,
		origin: gamesetup.Vec2{X: rc.X, Y: s.cfg.Ground},
		clock:  gamesetup.NewCeilingClock(s.game.TimeSource(), s.cfg.LaunchSeconds),
	}
	r.SetPosition(r.origin)
	r.Tilt(-90)
	r.SetHeading(90)
	r.climb = s.uniform(s.cfg.ClimbMin, s.cfg.ClimbMax)
	r.flight = gamesetup.NewClockTween(r.clock, r.origin.Y, r.origin.Y-r.climb, s.cfg.LaunchSeconds, s.cfg.EasingFunc())
	r.rise = gamesetup.NewClockTween(r.clock, r.origin.Y+restoreDrop, r.origin.Y, s.cfg.RestoreSeconds, s.cfg.EasingFunc())

	burst := gamesetup.Vec2{X: r.origin.X, Y: r.origin.Y - r.climb}
	for i := 0; i < s.cfg.Particles; i++ {
		r.particles = append(r.particles, NewParticle(color, burst, s.game.NewClock(), s.rng))
	}
	return r
}

// Name returns the rocket's color name.
func (r *Rocket) Name() string { return r.name }

// Origin returns the launch pad position.
func (r *Rocket) Origin() gamesetup.Vec2 { return r.origin }

// Climb returns the height above the pad at which the rocket will explode.
func (r *Rocket) Climb() float64 { return r.climb }

// Particles returns the rocket's explosion particles.
func (r *Rocket) Particles() []*Particle { return r.particles }

// Launched reports whether the rocket has left its pad and not yet re-armed.
func (r *Rocket) Launched() bool { return r.launched }

// Exploded reports whether the rocket has burst and is waiting to restore.
func (r *Rocket) Exploded() bool { return r.exploded }

// Restoring reports whether the rocket is rising back onto its pad.
func (r *Rocket) Restoring() bool { return r.restoring }

// Launch starts the flight. It does nothing while the rocket is already in
// the air, exploded or restoring.
func (r *Rocket) Launch() {
	if r.launched {
		return
	}
	r.launched = true
	r.clock.Start()
	r.scene.raise(r)
	r.scene.play(r.scene.launchSound)
	r.scene.debugf("rocket %s launched", r.name)
}

// Update moves the rocket for the current clock reading and draws it unless
// it has exploded.
func (r *Rocket) Update(s gamesetup.Surface) {
	if r.launched && !r.restoring {
		r.SetPosition(gamesetup.Vec2{X: r.origin.X, Y: r.flight.Value()})
		if r.clock.Expired() && !r.exploded {
			r.explode()
		}
	}

	if r.restoring {
		r.SetPosition(gamesetup.Vec2{X: r.origin.X, Y: r.rise.Value()})
		if r.clock.Expired() {
			r.restoring = false
			r.launched = false
			r.clock.SetCeiling(r.scene.cfg.LaunchSeconds)
			r.clock.Reset()
		}
	}

	if !r.exploded {
		r.Sprite.Update(s)
	}
}

func (r *Rocket) explode() {
	r.exploded = true
	for _, p := range r.particles {
		p.SetOrigin(r.Position())
		p.Go()
	}
	r.scene.play(r.scene.bangSound)
	r.scene.game.After(r.scene.cfg.RestoreDelayMs, r.restore)
	r.scene.debugf("rocket %s exploded at y=%.0f", r.name, r.Position().Y)
}

// restore drops the rocket below its pad with a fresh climb height and
// starts it rising back.
func (r *Rocket) restore() {
	r.restoring = true
	r.exploded = false
	r.SetPosition(gamesetup.Vec2{X: r.origin.X, Y: r.origin.Y + restoreDrop})
	r.climb = r.scene.uniform(r.scene.cfg.ClimbMin, r.scene.cfg.ClimbMax)
	r.flight.Retarget(r.origin.Y, r.origin.Y-r.climb, r.scene.cfg.EasingFunc())
	r.clock.Reset()
	r.clock.SetCeiling(r.scene.cfg.RestoreSeconds)
	r.clock.Start()

	for _, p := range r.particles {
		p.Reset()
	}
}
