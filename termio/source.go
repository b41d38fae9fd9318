package termio

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/gamesetup"
)

// HoldTimeout is how long a key counts as held after its last press or
// auto-repeat.
const HoldTimeout = 150 * time.Millisecond

var mouseButtons = [...]struct {
	mask tcell.ButtonMask
	btn  gamesetup.MouseButton
}{
	{tcell.ButtonPrimary, gamesetup.MouseButtonLeft},
	{tcell.ButtonMiddle, gamesetup.MouseButtonMiddle},
	{tcell.ButtonSecondary, gamesetup.MouseButtonRight},
}

// Source is a gamesetup.EventSource reading tcell events. A goroutine
// forwards raw events from PollEvent; translation happens in Poll on the
// caller's goroutine.
type Source struct {
	screen *Screen
	events chan tcell.Event
	now    func() time.Time

	buttons tcell.ButtonMask
	cursor  gamesetup.Vec2
	held    map[gamesetup.Key]time.Time // key -> release deadline
	closed  bool
}

// NewSource starts reading events from screen. Mouse reporting is enabled.
func NewSource(screen *Screen) *Source {
	s := newSource(screen)
	screen.EnableMouse()
	go func() {
		for {
			ev := screen.PollEvent()
			s.events <- ev
			if ev == nil {
				return
			}
		}
	}()
	return s
}

func newSource(screen *Screen) *Source {
	return &Source{
		screen: screen,
		events: make(chan tcell.Event, 100),
		now:    time.Now,
		held:   make(map[gamesetup.Key]time.Time),
	}
}

// Poll translates every event received since the last call, then releases
// keys whose hold has timed out.
func (s *Source) Poll() []gamesetup.Event {
	var out []gamesetup.Event
	for {
		select {
		case ev := <-s.events:
			out = s.translate(out, ev)
			continue
		default:
		}
		break
	}
	return s.expire(out)
}

// translate appends the gamesetup events for one tcell event.
func (s *Source) translate(out []gamesetup.Event, ev tcell.Event) []gamesetup.Event {
	switch ev := ev.(type) {
	case nil:
		// The screen was finalized.
		if !s.closed {
			s.closed = true
			out = append(out, gamesetup.Event{Kind: gamesetup.EventQuit})
		}
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return append(out, gamesetup.Event{Kind: gamesetup.EventQuit})
		}
		k, ok := KeyOf(ev)
		if !ok {
			return out
		}
		if _, down := s.held[k]; !down {
			out = append(out, gamesetup.Event{Kind: gamesetup.EventKeyDown, Key: k})
		}
		s.held[k] = s.now().Add(HoldTimeout)
	case *tcell.EventMouse:
		x, y := ev.Position()
		pos := s.screen.Point(x, y)
		if pos != s.cursor {
			s.cursor = pos
			out = append(out, gamesetup.Event{Kind: gamesetup.EventPointerMove, Pos: pos})
		}
		mask := ev.Buttons()
		for _, b := range mouseButtons {
			was, is := s.buttons&b.mask != 0, mask&b.mask != 0
			switch {
			case is && !was:
				out = append(out, gamesetup.Event{Kind: gamesetup.EventPointerDown, Pos: pos, Button: b.btn})
			case was && !is:
				out = append(out, gamesetup.Event{Kind: gamesetup.EventPointerUp, Pos: pos, Button: b.btn})
			}
		}
		s.buttons = mask
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return out
}

// expire releases keys whose deadline has passed.
func (s *Source) expire(out []gamesetup.Event) []gamesetup.Event {
	now := s.now()
	for k, deadline := range s.held {
		if !now.Before(deadline) {
			delete(s.held, k)
			out = append(out, gamesetup.Event{Kind: gamesetup.EventKeyUp, Key: k})
		}
	}
	return out
}

// IsKeyPressed reports whether key was pressed within HoldTimeout.
func (s *Source) IsKeyPressed(key gamesetup.Key) bool {
	_, ok := s.held[key]
	return ok
}

// CursorPosition returns the logical position of the last mouse event.
func (s *Source) CursorPosition() gamesetup.Vec2 { return s.cursor }
