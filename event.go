package gamesetup

// Event is a single discrete input event delivered by an EventSource.
// Pos and Button are valid for pointer events, Key for key events.
type Event struct {
	Kind   EventKind
	Pos    Vec2
	Button MouseButton
	Key    Key
}

// EventFunc is the one callback signature used for every binding.
type EventFunc func(Event)

// Do adapts a callback that does not need the event.
func Do(fn func()) EventFunc {
	if fn == nil {
		return nil
	}
	return func(Event) { fn() }
}

// KeyState answers whether a key is currently held down.
type KeyState interface {
	IsKeyPressed(key Key) bool
}

// EventSource yields the input of one loop iteration.
type EventSource interface {
	KeyState
	// Poll drains and returns all events that arrived since the last call.
	Poll() []Event
	// CursorPosition returns the last known pointer position.
	CursorPosition() Vec2
}

// EventStore is the interface for optional ECS integration.
// When set on a Game, every dispatched input event is forwarded to it.
type EventStore interface {
	EmitEvent(event Event)
}
