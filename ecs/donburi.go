package ecs

import (
	"github.com/phanxgames/gamesetup"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for gamesetup input events.
var InputEventType = events.NewEventType[gamesetup.Event]()

// InputState is the latest input seen by a DonburiStore.
type InputState struct {
	Cursor  gamesetup.Vec2
	Buttons map[gamesetup.MouseButton]bool
	Keys    map[gamesetup.Key]bool
	Events  uint64
	Quit    bool
}

// Input is the component type holding InputState.
var Input = donburi.NewComponentType[InputState]()

// DonburiStore is a gamesetup.EventStore backed by a Donburi world.
type DonburiStore struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiStore creates a store publishing to world. Events are queued on
// InputEventType and delivered by events.ProcessAllEvents or
// InputEventType.ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	e := world.Create(Input)
	Input.SetValue(world.Entry(e), InputState{
		Buttons: make(map[gamesetup.MouseButton]bool),
		Keys:    make(map[gamesetup.Key]bool),
	})
	return &DonburiStore{world: world, entity: e}
}

// Entity returns the entity carrying the Input component.
func (s *DonburiStore) Entity() donburi.Entity { return s.entity }

// State returns the current input state.
func (s *DonburiStore) State() *InputState {
	return Input.Get(s.world.Entry(s.entity))
}

// EmitEvent updates the input state and publishes ev.
func (s *DonburiStore) EmitEvent(ev gamesetup.Event) {
	st := s.State()
	st.Events++
	switch ev.Kind {
	case gamesetup.EventQuit:
		st.Quit = true
	case gamesetup.EventPointerDown:
		st.Cursor = ev.Pos
		st.Buttons[ev.Button] = true
	case gamesetup.EventPointerUp:
		st.Cursor = ev.Pos
		delete(st.Buttons, ev.Button)
	case gamesetup.EventPointerMove:
		st.Cursor = ev.Pos
	case gamesetup.EventKeyDown:
		st.Keys[ev.Key] = true
	case gamesetup.EventKeyUp:
		delete(st.Keys, ev.Key)
	}
	InputEventType.Publish(s.world, ev)
}
