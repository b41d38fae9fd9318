package gamesetup

// Timer is a one-shot deferred callback. It measures its delay on its own
// clock, started when the timer is scheduled.
type Timer struct {
	delayMs   float64
	fn        func()
	clock     *Clock
	completed bool
	list      *timerList
}

// Delay returns the delay in milliseconds.
func (t *Timer) Delay() float64 { return t.delayMs }

// Completed reports whether the callback has fired.
func (t *Timer) Completed() bool { return t.completed }

// check fires the timer if its delay has passed. Reports whether it fired.
func (t *Timer) check() bool {
	if t.completed || t.clock.Elapsed() <= t.delayMs/1000 {
		return false
	}
	t.fn()
	t.list.remove(t)
	t.completed = true
	return true
}

// timerList holds pending timers in registration order.
type timerList struct {
	timers []*Timer
	buf    []*Timer
}

// schedule creates a started timer and appends it to the list.
func (l *timerList) schedule(src TimeSource, delayMs float64, fn func()) *Timer {
	t := &Timer{
		delayMs: delayMs,
		fn:      fn,
		clock:   NewClockWithSource(src),
		list:    l,
	}
	t.clock.Start()
	l.timers = append(l.timers, t)
	return t
}

// pollDue fires every due timer once. Callbacks may schedule new timers;
// those are not considered until the next poll. Returns the number fired.
func (l *timerList) pollDue() int {
	l.buf = append(l.buf[:0], l.timers...)
	fired := 0
	for i, t := range l.buf {
		if t.check() {
			fired++
		}
		l.buf[i] = nil
	}
	return fired
}

func (l *timerList) remove(t *Timer) {
	for i := range l.timers {
		if l.timers[i] == t {
			copy(l.timers[i:], l.timers[i+1:])
			l.timers[len(l.timers)-1] = nil
			l.timers = l.timers[:len(l.timers)-1]
			return
		}
	}
}

func (l *timerList) len() int { return len(l.timers) }
