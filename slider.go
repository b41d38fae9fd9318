package gamesetup

// Slider moves a point in a straight line at constant speed, driven by its
// own clock. Position is computed on demand from elapsed time.
type Slider struct {
	origin   Vec2
	heading  float64
	moving   bool
	distance float64
	seconds  float64
	clock    *Clock
}

// NewSlider creates a stopped slider at pos facing heading degrees.
func NewSlider(pos Vec2, heading float64) *Slider {
	return NewSliderWithSource(pos, heading, SystemTime)
}

// NewSliderWithSource is NewSlider with an explicit time source.
func NewSliderWithSource(pos Vec2, heading float64, src TimeSource) *Slider {
	return &Slider{origin: pos, heading: heading, clock: NewClockWithSource(src)}
}

// Clock returns the slider's clock. Callers poll it to learn whether the
// current move has finished.
func (s *Slider) Clock() *Clock { return s.clock }

// Position returns the current position.
func (s *Slider) Position() Vec2 {
	if !s.moving {
		return s.origin
	}
	if s.seconds <= 0 {
		return s.origin.Polar(s.distance, s.heading)
	}
	return s.origin.Polar(s.distance*s.clock.Elapsed()/s.seconds, s.heading)
}

// SetPosition moves the slider's origin to pos.
func (s *Slider) SetPosition(pos Vec2) { s.origin = pos }

// Heading returns the heading in degrees.
func (s *Slider) Heading() float64 { return s.heading }

// SetHeading sets the heading in degrees.
func (s *Slider) SetHeading(degrees float64) { s.heading = degrees }

// Moving reports whether a Forward move is in effect.
func (s *Slider) Moving() bool { return s.moving }

// Forward starts moving distance along the heading over seconds, from the
// current position.
func (s *Slider) Forward(distance, seconds float64) {
	s.origin = s.Position()
	s.moving = true
	s.distance = distance
	s.seconds = seconds
	s.clock.Reset()
	s.clock.SetCeiling(seconds)
	s.clock.Start()
}

// Stop freezes the slider at its current position.
func (s *Slider) Stop() {
	s.origin = s.Position()
	s.moving = false
	s.clock.Reset()
}
