// Package ecs bridges gamesetup input into a [Donburi] world.
//
// [NewDonburiStore] publishes every dispatched input event as a typed
// Donburi event and keeps a singleton entity carrying an [InputState]
// component, so systems can either react to events or read the latest
// pointer and key state.
//
// Usage:
//
//	world := donburi.NewWorld()
//	store := ecs.NewDonburiStore(world)
//	game.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
