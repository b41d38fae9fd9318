package gamesetup

// Game is the runtime: it owns the widget registry, pending timers, global
// bindings, focus and mute state, and runs the poll-dispatch-update loop.
// Everything runs on the caller's goroutine; nothing here is safe for
// concurrent use.
type Game struct {
	widgets []Element // index is the WidgetID; removed slots are nil
	live    int

	timers timerList

	bindings    []globalBinding
	nextBinding BindingID

	focus    WidgetID
	hasFocus bool

	muted  bool
	sounds []*Sound

	running    bool
	restarting bool

	store  EventStore
	clock  TimeSource
	keys   KeyState
	cursor Vec2
	frame  uint64

	onUpdate func(Surface)
	onEvent  func(Event)

	debug bool
}

type globalBinding struct {
	id   BindingID
	kind EventKind
	fn   EventFunc
}

// registrable is implemented by elements that accept a registry id.
type registrable interface {
	setID(WidgetID)
}

// NewGame creates a running game with an empty registry.
func NewGame() *Game {
	return &Game{running: true, clock: SystemTime}
}

// SetTimeSource replaces the time source used by timers and NewClock.
func (g *Game) SetTimeSource(src TimeSource) {
	if src == nil {
		src = SystemTime
	}
	g.clock = src
}

// TimeSource returns the game's time source.
func (g *Game) TimeSource() TimeSource { return g.clock }

// NewClock creates a paused clock on the game's time source.
func (g *Game) NewClock() *Clock {
	return NewClockWithSource(g.clock)
}

// SetEntityStore sets the optional ECS bridge.
func (g *Game) SetEntityStore(store EventStore) {
	g.store = store
}

// SetUpdateFunc sets the per-frame hook. It runs once per iteration after
// all events have been dispatched and is expected to redraw the frame.
func (g *Game) SetUpdateFunc(fn func(Surface)) {
	g.onUpdate = fn
}

// SetEventFunc sets the per-event hook, called after widgets and global
// bindings have seen the event.
func (g *Game) SetEventFunc(fn func(Event)) {
	g.onEvent = fn
}

// --- Widget registry ---

// Add registers el and returns its id. Registering an element twice
// returns its existing id.
func (g *Game) Add(el Element) WidgetID {
	if id := el.ID(); id >= 0 && int(id) < len(g.widgets) && g.widgets[id] == el {
		return id
	}
	id := WidgetID(len(g.widgets))
	if r, ok := el.(registrable); ok {
		r.setID(id)
	}
	g.widgets = append(g.widgets, el)
	g.live++
	g.debugf("widget %d registered (%d live)", id, g.live)
	return id
}

// Widget returns the element registered under id, or nil.
func (g *Game) Widget(id WidgetID) Element {
	if id < 0 || int(id) >= len(g.widgets) {
		return nil
	}
	return g.widgets[id]
}

// Widgets returns the registered elements in id order.
func (g *Game) Widgets() []Element {
	out := make([]Element, 0, g.live)
	for _, el := range g.widgets {
		if el != nil {
			out = append(out, el)
		}
	}
	return out
}

// RemoveWidget unregisters id. Its id is not reused.
func (g *Game) RemoveWidget(id WidgetID) bool {
	if g.Widget(id) == nil {
		return false
	}
	g.widgets[id] = nil
	g.live--
	if g.hasFocus && g.focus == id {
		g.hasFocus = false
	}
	return true
}

// --- Focus ---

// SetFocus gives focus to the registered widget id.
func (g *Game) SetFocus(id WidgetID) error {
	if g.Widget(id) == nil {
		return &FocusError{ID: id}
	}
	g.focus = id
	g.hasFocus = true
	return nil
}

// ClearFocus removes focus from every widget.
func (g *Game) ClearFocus() {
	g.hasFocus = false
}

// Focus returns the focused widget id, if any.
func (g *Game) Focus() (WidgetID, bool) {
	return g.focus, g.hasFocus
}

// --- Deferred callbacks ---

// After runs fn once, on the first iteration after ms milliseconds have
// passed. There is no way to cancel it.
func (g *Game) After(ms float64, fn func()) *Timer {
	return g.timers.schedule(g.clock, ms, fn)
}

// Pending returns the number of timers that have not fired.
func (g *Game) Pending() int {
	return g.timers.len()
}

// --- Global bindings ---

// Bind calls fn for every event of kind. A zero id picks a fresh one;
// binding an existing id replaces it in place.
func (g *Game) Bind(kind EventKind, fn EventFunc, id BindingID) BindingID {
	if id == 0 {
		id = g.freshBindingID()
	}
	if fn == nil {
		g.Unbind(id)
		return id
	}
	for i := range g.bindings {
		if g.bindings[i].id == id {
			g.bindings[i] = globalBinding{id: id, kind: kind, fn: fn}
			return id
		}
	}
	g.bindings = append(g.bindings, globalBinding{id: id, kind: kind, fn: fn})
	return id
}

func (g *Game) freshBindingID() BindingID {
	for {
		g.nextBinding++
		if !g.IsBound(g.nextBinding) {
			return g.nextBinding
		}
	}
}

// IsBound reports whether id is a global binding.
func (g *Game) IsBound(id BindingID) bool {
	for i := range g.bindings {
		if g.bindings[i].id == id {
			return true
		}
	}
	return false
}

// Unbind removes the global binding id.
func (g *Game) Unbind(id BindingID) {
	for i := range g.bindings {
		if g.bindings[i].id == id {
			copy(g.bindings[i:], g.bindings[i+1:])
			g.bindings[len(g.bindings)-1] = globalBinding{}
			g.bindings = g.bindings[:len(g.bindings)-1]
			return
		}
	}
}

// UnbindAll removes every global binding.
func (g *Game) UnbindAll() {
	clear(g.bindings)
	g.bindings = g.bindings[:0]
}

// --- Lifecycle ---

// Close stops the loop after the current iteration.
func (g *Game) Close() {
	g.running = false
}

// Restart stops the loop and asks the driver for a fresh game.
func (g *Game) Restart() {
	g.running = false
	g.restarting = true
}

// Running reports whether the loop should keep iterating.
func (g *Game) Running() bool { return g.running }

// Restarting reports whether Restart was called.
func (g *Game) Restarting() bool { return g.restarting }

// Cursor returns the pointer position sampled this iteration.
func (g *Game) Cursor() Vec2 { return g.cursor }

// IsKeyPressed reports whether key was held when this iteration polled.
func (g *Game) IsKeyPressed(key Key) bool {
	return g.keys != nil && g.keys.IsKeyPressed(key)
}

// Frame returns the number of iterations run so far.
func (g *Game) Frame() uint64 { return g.frame }

// Step runs one iteration: fire due timers, dispatch every pending event,
// then call the update hook with surf.
func (g *Game) Step(src EventSource, surf Surface) {
	g.frame++
	if n := g.timers.pollDue(); n > 0 {
		g.debugf("frame %d: %d timer(s) fired", g.frame, n)
	}

	g.keys = src
	events := src.Poll()
	g.cursor = src.CursorPosition()
	for _, ev := range events {
		g.dispatch(ev)
	}

	if g.onUpdate != nil {
		g.onUpdate(surf)
	}
}

// dispatch delivers ev to every registered element, every matching global
// binding, the entity store and the event hook. Elements and bindings added
// by a callback do not see the event being dispatched.
func (g *Game) dispatch(ev Event) {
	if ev.Kind == EventQuit {
		g.Close()
	}

	widgets := g.widgets[:len(g.widgets):len(g.widgets)]
	for id, el := range widgets {
		if el == nil || g.widgets[id] != el {
			continue
		}
		el.ProcessEvent(ev, g.keys)
	}

	if len(g.bindings) > 0 {
		snapshot := make([]globalBinding, len(g.bindings))
		copy(snapshot, g.bindings)
		for _, b := range snapshot {
			if b.kind == ev.Kind {
				b.fn(ev)
			}
		}
	}

	if g.store != nil {
		g.store.EmitEvent(ev)
	}
	if g.onEvent != nil {
		g.onEvent(ev)
	}
}

// Mainloop steps until the game is closed. Surfaces implementing Presenter
// are presented after every iteration.
func (g *Game) Mainloop(src EventSource, surf Surface) error {
	p, _ := surf.(Presenter)
	for g.running {
		g.Step(src, surf)
		if p != nil {
			if err := p.Present(); err != nil {
				return err
			}
		}
	}
	return nil
}
