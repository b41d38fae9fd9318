package gamesetup

// InjectSource is an EventSource fed by synthetic input. Each queued frame
// is returned by one Poll call, so a press and its release land on
// different iterations, as they would with a real pointer.
type InjectSource struct {
	queue  [][]Event
	held   map[Key]bool
	cursor Vec2
}

// NewInjectSource creates an empty source with the pointer at the origin.
func NewInjectSource() *InjectSource {
	return &InjectSource{held: make(map[Key]bool)}
}

// Poll pops one frame of events and applies them to the pointer and key state.
func (s *InjectSource) Poll() []Event {
	if len(s.queue) == 0 {
		return nil
	}
	frame := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue[len(s.queue)-1] = nil
	s.queue = s.queue[:len(s.queue)-1]

	for _, ev := range frame {
		switch ev.Kind {
		case EventPointerDown, EventPointerUp, EventPointerMove:
			s.cursor = ev.Pos
		case EventKeyDown:
			s.held[ev.Key] = true
		case EventKeyUp:
			delete(s.held, ev.Key)
		}
	}
	return frame
}

// IsKeyPressed reports whether key is held.
func (s *InjectSource) IsKeyPressed(key Key) bool { return s.held[key] }

// CursorPosition returns the position of the last delivered pointer event.
func (s *InjectSource) CursorPosition() Vec2 { return s.cursor }

// Pending returns the number of frames not yet polled.
func (s *InjectSource) Pending() int { return len(s.queue) }

// Inject queues one frame containing evs.
func (s *InjectSource) Inject(evs ...Event) {
	s.queue = append(s.queue, evs)
}

// InjectPress queues a press of button at (x, y).
func (s *InjectSource) InjectPress(x, y float64, button MouseButton) {
	s.Inject(Event{Kind: EventPointerDown, Pos: Vec2{x, y}, Button: button})
}

// InjectRelease queues a release of button at (x, y).
func (s *InjectSource) InjectRelease(x, y float64, button MouseButton) {
	s.Inject(Event{Kind: EventPointerUp, Pos: Vec2{x, y}, Button: button})
}

// InjectMove queues a pointer move to (x, y).
func (s *InjectSource) InjectMove(x, y float64) {
	s.Inject(Event{Kind: EventPointerMove, Pos: Vec2{x, y}})
}

// InjectClick is a convenience that queues a left press followed by a
// release at the same coordinates. Consumes two frames.
func (s *InjectSource) InjectClick(x, y float64) {
	s.InjectPress(x, y, MouseButtonLeft)
	s.InjectRelease(x, y, MouseButtonLeft)
}

// InjectKeyDown queues key going down. The key stays held until a matching
// InjectKeyUp is polled.
func (s *InjectSource) InjectKeyDown(key Key) {
	s.Inject(Event{Kind: EventKeyDown, Key: key})
}

// InjectKeyUp queues key going up.
func (s *InjectSource) InjectKeyUp(key Key) {
	s.Inject(Event{Kind: EventKeyUp, Key: key})
}

// InjectKeyTap queues key down then key up. Consumes two frames.
func (s *InjectSource) InjectKeyTap(key Key) {
	s.InjectKeyDown(key)
	s.InjectKeyUp(key)
}

// InjectQuit queues a quit event.
func (s *InjectSource) InjectQuit() {
	s.Inject(Event{Kind: EventQuit})
}

// InjectIdle queues n empty frames.
func (s *InjectSource) InjectIdle(n int) {
	for i := 0; i < n; i++ {
		s.Inject()
	}
}

// Hold marks key as held without producing an event.
func (s *InjectSource) Hold(key Key) { s.held[key] = true }

// Unhold releases a key marked with Hold without producing an event.
func (s *InjectSource) Unhold(key Key) { delete(s.held, key) }
