package gamesetup

// WidgetID is a widget's index in its Game's registry. IDs are assigned in
// registration order and never reused within one Game.
type WidgetID int

// BindingID keys a binding. Zero asks the registrant to pick a fresh id.
type BindingID uint32

// BindingKind selects which input a widget binding reacts to.
type BindingKind uint8

const (
	BindClick      BindingKind = iota // pointer button pressed over the widget
	BindRelease                       // pointer button released over the widget
	BindKey                           // key went down
	BindKeyRelease                    // key went up
	BindKeyPress                      // key is held; fires on every processed event
)

// Element is the capability every registered widget variant provides to the
// runtime. *Widget, *Button and *Popup implement it.
type Element interface {
	ID() WidgetID
	Rect() Rect
	IsOver(p Vec2) bool
	ProcessEvent(ev Event, keys KeyState)
	Update(s Surface)
}

type binding struct {
	id     BindingID
	kind   BindingKind
	fn     EventFunc
	button MouseButton
	key    Key
}

// bindingTable is an ordered id-keyed list of bindings. Replacing an
// existing id keeps its position.
type bindingTable struct {
	entries []binding
	nextID  BindingID
}

func (t *bindingTable) index(id BindingID) int {
	for i := range t.entries {
		if t.entries[i].id == id {
			return i
		}
	}
	return -1
}

// freshID returns the lowest generated id not yet in use.
func (t *bindingTable) freshID() BindingID {
	for {
		t.nextID++
		if t.index(t.nextID) < 0 {
			return t.nextID
		}
	}
}

// set registers b, or removes b.id when b.fn is nil. Returns the id used.
func (t *bindingTable) set(b binding) BindingID {
	if b.fn == nil {
		t.remove(b.id)
		return b.id
	}
	if b.id == 0 {
		b.id = t.freshID()
	}
	if i := t.index(b.id); i >= 0 {
		t.entries[i] = b
		return b.id
	}
	t.entries = append(t.entries, b)
	return b.id
}

func (t *bindingTable) remove(id BindingID) bool {
	i := t.index(id)
	if i < 0 {
		return false
	}
	copy(t.entries[i:], t.entries[i+1:])
	t.entries[len(t.entries)-1] = binding{}
	t.entries = t.entries[:len(t.entries)-1]
	return true
}

// Widget is a rectangular, bindable UI element. It is usable on its own as
// an invisible hotspot and is embedded by Button and Popup.
type Widget struct {
	id       WidgetID
	rect     Rect
	game     *Game
	bindings bindingTable

	// OnEvent, when set, is called with every event after the widget's
	// bindings have run.
	OnEvent func(Event)
}

// NewWidget creates a widget covering rect and registers it with g.
func NewWidget(g *Game, rect Rect) *Widget {
	w := &Widget{}
	w.init(g, rect)
	g.Add(w)
	return w
}

func (w *Widget) init(g *Game, rect Rect) {
	w.game = g
	w.rect = rect
	w.id = -1
}

// ID returns the registry id, or -1 before registration.
func (w *Widget) ID() WidgetID { return w.id }

func (w *Widget) setID(id WidgetID) { w.id = id }

// Game returns the game the widget belongs to.
func (w *Widget) Game() *Game { return w.game }

// Rect returns the widget's bounds.
func (w *Widget) Rect() Rect { return w.rect }

// SetRect replaces the widget's bounds.
func (w *Widget) SetRect(r Rect) { w.rect = r }

// Move places the widget at pos, centering it on pos when center is true.
func (w *Widget) Move(pos Vec2, center bool) {
	if center {
		w.rect = w.rect.CenteredAt(pos)
		return
	}
	w.rect.X, w.rect.Y = pos.X, pos.Y
}

// IsOver reports whether p lies strictly inside the widget's bounds.
func (w *Widget) IsOver(p Vec2) bool {
	return w.rect.Inside(p)
}

// Focused reports whether this widget holds the game's focus.
func (w *Widget) Focused() bool {
	if w.game == nil {
		return false
	}
	id, ok := w.game.Focus()
	return ok && id == w.id
}

// SetFocus gives the game's focus to this widget, or clears it.
func (w *Widget) SetFocus(focus bool) error {
	if !focus {
		if w.Focused() {
			w.game.ClearFocus()
		}
		return nil
	}
	if w.game == nil {
		return &FocusError{ID: w.id}
	}
	return w.game.SetFocus(w.id)
}

// Update draws nothing; a bare widget is invisible.
func (w *Widget) Update(Surface) {}

// OnClick binds fn to presses of button over the widget.
// A zero id picks a fresh one; a nil fn removes the binding id.
func (w *Widget) OnClick(id BindingID, button MouseButton, fn EventFunc) BindingID {
	return w.bindings.set(binding{id: id, kind: BindClick, fn: fn, button: button})
}

// OnRelease binds fn to releases of button over the widget.
func (w *Widget) OnRelease(id BindingID, button MouseButton, fn EventFunc) BindingID {
	return w.bindings.set(binding{id: id, kind: BindRelease, fn: fn, button: button})
}

// OnKey binds fn to key going down.
func (w *Widget) OnKey(id BindingID, key Key, fn EventFunc) BindingID {
	return w.bindings.set(binding{id: id, kind: BindKey, fn: fn, key: key})
}

// OnKeyRelease binds fn to key going up.
func (w *Widget) OnKeyRelease(id BindingID, key Key, fn EventFunc) BindingID {
	return w.bindings.set(binding{id: id, kind: BindKeyRelease, fn: fn, key: key})
}

// OnKeyPress binds fn to key being held. It is level-triggered: fn runs for
// every event processed while the key is down, not only on the transition.
func (w *Widget) OnKeyPress(id BindingID, key Key, fn EventFunc) BindingID {
	return w.bindings.set(binding{id: id, kind: BindKeyPress, fn: fn, key: key})
}

// RemoveBinding deletes the binding id. Reports whether it existed.
func (w *Widget) RemoveBinding(id BindingID) bool {
	return w.bindings.remove(id)
}

// HasBinding reports whether id is bound.
func (w *Widget) HasBinding(id BindingID) bool {
	return w.bindings.index(id) >= 0
}

// BindingCount returns the number of bindings.
func (w *Widget) BindingCount() int {
	return len(w.bindings.entries)
}

// matches reports whether b should fire for ev.
func (w *Widget) matches(b *binding, ev Event, keys KeyState) bool {
	switch b.kind {
	case BindClick:
		return ev.Kind == EventPointerDown && ev.Button == b.button && w.IsOver(ev.Pos)
	case BindRelease:
		return ev.Kind == EventPointerUp && ev.Button == b.button && w.IsOver(ev.Pos)
	case BindKey:
		return ev.Kind == EventKeyDown && ev.Key == b.key
	case BindKeyRelease:
		return ev.Kind == EventKeyUp && ev.Key == b.key
	case BindKeyPress:
		return keys != nil && keys.IsKeyPressed(b.key)
	}
	return false
}

// ProcessEvent runs every binding matching ev. Matches are collected before
// any callback runs, so callbacks may add or remove bindings freely.
func (w *Widget) ProcessEvent(ev Event, keys KeyState) {
	var due []EventFunc
	for i := range w.bindings.entries {
		b := &w.bindings.entries[i]
		if w.matches(b, ev, keys) {
			due = append(due, b.fn)
		}
	}
	for _, fn := range due {
		fn(ev)
	}
	if w.OnEvent != nil {
		w.OnEvent(ev)
	}
}
