// Package gamesetup is a small widget, event and timer runtime for 2D games
// on [Ebitengine].
//
// A [Game] owns a registry of widgets, a list of deferred callbacks, global
// event bindings and the mute state of its sounds. Every loop iteration
// fires due timers, polls one batch of input from an [EventSource],
// dispatches each event to every widget and matching binding, then calls
// the update hook with a [Surface] to draw on.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and runs
// games produced by a [Factory]:
//
//	gamesetup.Run(func() (*gamesetup.Game, error) {
//		g := gamesetup.NewGame()
//		gamesetup.NewButton(g, gamesetup.Box{W: 80, H: 30, Text: "Quit"},
//			gamesetup.ButtonConfig{Position: gamesetup.Vec2{X: 320, Y: 240}, Command: g.Close})
//		g.SetUpdateFunc(func(s gamesetup.Surface) {
//			s.Fill(gamesetup.RGB(0, 0, 70))
//			for _, w := range g.Widgets() {
//				w.Update(s)
//			}
//		})
//		return g, nil
//	}, gamesetup.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// Games that call [Game.Restart] are replaced by a fresh one from the
// factory. For headless runs and tests, drive [Loop] or [Game.Step]
// directly with an [InjectSource] or a [ScriptRunner] and a
// [RecordingSurface]. The termio sub-package runs the same games in a
// terminal.
//
// # Widgets and bindings
//
// [Widget] is a rectangular hotspot with declarative bindings: click and
// release of a mouse button over it, key down, key up, and key held
// ([Widget.OnKeyPress], which fires for every processed event while the key
// is down). Every callback has the one signature [EventFunc]. [Button] adds
// a press/release state machine with hover, click and disabled images, and
// [Popup] is a centered dialog whose child buttons only work while it is
// open.
//
// # Time
//
// [Clock] is a pausable stopwatch with an optional ceiling it reports
// exactly once reached. [Game.After] runs a callback once a delay has
// passed. [Slider] and [ClockTween] (via [gween]) derive positions and
// values from a clock. All of them read a [TimeSource], so tests use
// [ManualTime].
//
// # Debugging
//
// [Game.SetDebugMode] logs widget registration, timer firings, restarts
// and end-of-run stats to stderr. The ecs sub-package forwards input into a
// [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package gamesetup
