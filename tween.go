package gamesetup

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ClockTween eases a value from one number to another as a Clock advances.
// Unlike a dt-driven tween it holds no progress of its own: the value is
// always derived from the clock, so pausing or resetting the clock pauses
// or rewinds the tween.
type ClockTween struct {
	tween    *gween.Tween
	clock    *Clock
	from, to float64
	duration float64
}

// NewClockTween creates a tween from from to to over duration seconds of
// clock time using the easing function fn (ease.Linear when nil).
func NewClockTween(clock *Clock, from, to, duration float64, fn ease.TweenFunc) *ClockTween {
	if fn == nil {
		fn = ease.Linear
	}
	return &ClockTween{
		tween:    gween.New(float32(from), float32(to), float32(duration), fn),
		clock:    clock,
		from:     from,
		to:       to,
		duration: duration,
	}
}

// Value returns the eased value for the clock's elapsed time. At or past
// the duration it is exactly the target.
func (t *ClockTween) Value() float64 {
	elapsed := t.clock.Elapsed()
	if elapsed >= t.duration {
		return t.to
	}
	if elapsed <= 0 {
		return t.from
	}
	v, _ := t.tween.Set(float32(elapsed))
	return float64(v)
}

// Done reports whether the clock has run the full duration.
func (t *ClockTween) Done() bool {
	return t.clock.Elapsed() >= t.duration
}

// Retarget replaces both end points, keeping the clock and duration.
func (t *ClockTween) Retarget(from, to float64, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	t.from, t.to = from, to
	t.tween = gween.New(float32(from), float32(to), float32(t.duration), fn)
}
