package gamesetup

import (
	"time"
)

// TimeSource supplies the wall-clock readings clocks are measured against.
type TimeSource interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now() }

// SystemTime reads the monotonic system clock.
var SystemTime TimeSource = systemTime{}

// ManualTime is a controllable time source for tests and scripted runs.
// It starts at an arbitrary fixed instant and only moves when told to.
type ManualTime struct {
	now time.Time
}

// NewManualTime creates a ManualTime.
func NewManualTime() *ManualTime {
	return &ManualTime{now: time.Unix(1_000_000, 0)}
}

// Now returns the current manual time.
func (m *ManualTime) Now() time.Time { return m.now }

// Advance moves the time forward by d.
func (m *ManualTime) Advance(d time.Duration) { m.now = m.now.Add(d) }

// AdvanceSeconds moves the time forward by s seconds.
func (m *ManualTime) AdvanceSeconds(s float64) {
	m.Advance(time.Duration(s * float64(time.Second)))
}

// Clock is a stopwatch measuring seconds. It starts paused at zero.
//
// When a ceiling is set, Elapsed never reports more than the ceiling, and
// once the ceiling is reached it returns exactly the ceiling value, so
// callers may detect expiry with ==.
type Clock struct {
	src        TimeSource
	started    time.Time
	running    bool
	saved      float64
	ceiling    float64
	hasCeiling bool
}

// NewClock creates a paused clock on the system time source.
func NewClock() *Clock {
	return &Clock{src: SystemTime}
}

// NewClockWithSource creates a paused clock reading time from src.
func NewClockWithSource(src TimeSource) *Clock {
	if src == nil {
		src = SystemTime
	}
	return &Clock{src: src}
}

// NewCeilingClock creates a paused clock on src capped at ceiling seconds.
func NewCeilingClock(src TimeSource, ceiling float64) *Clock {
	c := NewClockWithSource(src)
	c.SetCeiling(ceiling)
	return c
}

// Start runs the clock from the banked time. Starting a running clock moves
// its reference point to now, dropping the time since the previous Start.
func (c *Clock) Start() {
	c.started = c.src.Now()
	c.running = true
}

// Stop banks the elapsed time and pauses the clock.
func (c *Clock) Stop() {
	c.saved = c.Elapsed()
	c.running = false
}

// Reset sets the clock back to zero and pauses it.
func (c *Clock) Reset() {
	c.SetTime(0)
}

// SetTime overwrites the elapsed time and pauses the clock.
func (c *Clock) SetTime(seconds float64) {
	c.saved = seconds
	c.running = false
}

// Elapsed returns the seconds on the clock.
func (c *Clock) Elapsed() float64 {
	t := c.saved
	if c.running {
		t += c.src.Now().Sub(c.started).Seconds()
	}
	if c.hasCeiling && t > c.ceiling {
		return c.ceiling
	}
	return t
}

// Running reports whether the clock is advancing.
func (c *Clock) Running() bool {
	return c.running
}

// SetCeiling caps Elapsed at seconds.
func (c *Clock) SetCeiling(seconds float64) {
	c.ceiling = seconds
	c.hasCeiling = true
}

// ClearCeiling removes the cap.
func (c *Clock) ClearCeiling() {
	c.hasCeiling = false
}

// Ceiling returns the cap and whether one is set.
func (c *Clock) Ceiling() (float64, bool) {
	return c.ceiling, c.hasCeiling
}

// Expired reports whether a ceiling is set and has been reached.
func (c *Clock) Expired() bool {
	return c.hasCeiling && c.Elapsed() == c.ceiling
}
