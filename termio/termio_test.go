package termio

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/gamesetup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSimScreen returns an 60x25 simulation screen presenting a 600x625
// logical surface, so one cell is 10x25 logical units.
func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(60, 25)
	t.Cleanup(sim.Fini)
	return NewScreen(sim, gamesetup.Vec2{X: 600, Y: 625}), sim
}

func cellAt(sim tcell.SimulationScreen, x, y int) tcell.SimCell {
	cells, w, _ := sim.GetContents()
	return cells[y*w+x]
}

func TestScreenScaling(t *testing.T) {
	s, _ := newSimScreen(t)

	x, y, ok := s.Cell(gamesetup.Vec2{X: 105, Y: 520})
	assert.True(t, ok)
	assert.Equal(t, 10, x)
	assert.Equal(t, 20, y)

	_, _, ok = s.Cell(gamesetup.Vec2{X: 600, Y: 10})
	assert.False(t, ok, "right edge is off screen")

	assert.Equal(t, gamesetup.Vec2{X: 105, Y: 512.5}, s.Point(10, 20))
	assert.Equal(t, gamesetup.Vec2{X: 600, Y: 625}, s.Size())
}

func TestScreenBlitBox(t *testing.T) {
	s, sim := newSimScreen(t)
	s.Fill(gamesetup.Color{A: 1})

	box := gamesetup.Box{W: 100, H: 50, Fill: gamesetup.RGB(255, 0, 0), Text: "Go", TextColor: gamesetup.ColorWhite}
	s.Blit(box, gamesetup.Vec2{X: 300, Y: 100}, gamesetup.BlitOptions{CenterX: true, CenterY: true})
	require.NoError(t, s.Present())

	// Box spans cells x 25..34, y 3..4.
	_, bg, _ := cellAt(sim, 25, 3).Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), bg)
	_, bg, _ = cellAt(sim, 35, 3).Style.Decompose()
	assert.NotEqual(t, tcell.NewRGBColor(255, 0, 0), bg)

	assert.Equal(t, "G", string(cellAt(sim, 29, 3).Bytes))
	assert.Equal(t, "o", string(cellAt(sim, 30, 3).Bytes))
}

func TestScreenSkipsPlaceholder(t *testing.T) {
	s, sim := newSimScreen(t)
	s.Fill(gamesetup.RGB(0, 0, 255))
	s.Blit(gamesetup.Placeholder{W: 600, H: 625}, gamesetup.Vec2{}, gamesetup.BlitOptions{})
	require.NoError(t, s.Present())

	c := cellAt(sim, 5, 5)
	assert.Equal(t, " ", string(c.Bytes))
	_, bg, _ := c.Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)
}

func TestScreenDots(t *testing.T) {
	s, sim := newSimScreen(t)
	s.DrawCircle(gamesetup.Vec2{X: 55, Y: 60}, 3, gamesetup.ColorWhite)
	s.DrawLine(gamesetup.Vec2{X: 5, Y: 300}, gamesetup.Vec2{X: 45, Y: 300}, 1, gamesetup.ColorWhite)
	require.NoError(t, s.Present())

	assert.Equal(t, "•", string(cellAt(sim, 5, 2).Bytes))
	for x := 0; x <= 4; x++ {
		assert.Equal(t, "·", string(cellAt(sim, x, 12).Bytes), "cell %d", x)
	}
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want gamesetup.Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), ebiten.KeyM, true},
		{tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModShift), ebiten.KeyR, true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ebiten.KeySpace, true},
		{tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), ebiten.KeyDigit7, true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ebiten.KeyEscape, true},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ebiten.KeyArrowUp, true},
		{tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), 0, false},
	}
	for _, tt := range tests {
		got, ok := KeyOf(tt.ev)
		assert.Equal(t, tt.ok, ok, tt.ev.Name())
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.ev.Name())
		}
	}
}

func TestSourceKeysHoldAndRelease(t *testing.T) {
	s, _ := newSimScreen(t)
	src := newSource(s)
	now := time.Unix(100, 0)
	src.now = func() time.Time { return now }

	evs := src.translate(nil, tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	require.Len(t, evs, 1)
	assert.Equal(t, gamesetup.EventKeyDown, evs[0].Kind)
	assert.True(t, src.IsKeyPressed(ebiten.KeySpace))

	// Auto-repeat extends the hold without a second key-down.
	now = now.Add(100 * time.Millisecond)
	evs = src.translate(nil, tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	assert.Empty(t, evs)

	now = now.Add(100 * time.Millisecond)
	assert.Empty(t, src.expire(nil))

	now = now.Add(HoldTimeout)
	evs = src.expire(nil)
	require.Len(t, evs, 1)
	assert.Equal(t, gamesetup.EventKeyUp, evs[0].Kind)
	assert.Equal(t, ebiten.KeySpace, evs[0].Key)
	assert.False(t, src.IsKeyPressed(ebiten.KeySpace))
}

func TestSourceCtrlCQuits(t *testing.T) {
	s, _ := newSimScreen(t)
	src := newSource(s)
	evs := src.translate(nil, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	require.Len(t, evs, 1)
	assert.Equal(t, gamesetup.EventQuit, evs[0].Kind)

	evs = src.translate(nil, nil)
	evs = src.translate(evs, nil)
	assert.Len(t, evs, 1, "finalized screen quits once")
}

func TestSourceMouseTransitions(t *testing.T) {
	s, _ := newSimScreen(t)
	src := newSource(s)

	evs := src.translate(nil, tcell.NewEventMouse(10, 20, tcell.ButtonPrimary, tcell.ModNone))
	require.Len(t, evs, 2)
	assert.Equal(t, gamesetup.EventPointerMove, evs[0].Kind)
	assert.Equal(t, gamesetup.EventPointerDown, evs[1].Kind)
	assert.Equal(t, gamesetup.MouseButtonLeft, evs[1].Button)
	assert.Equal(t, gamesetup.Vec2{X: 105, Y: 512.5}, evs[1].Pos)

	// Held button with no movement produces nothing.
	evs = src.translate(nil, tcell.NewEventMouse(10, 20, tcell.ButtonPrimary, tcell.ModNone))
	assert.Empty(t, evs)

	evs = src.translate(nil, tcell.NewEventMouse(10, 20, tcell.ButtonSecondary, tcell.ModNone))
	require.Len(t, evs, 2)
	assert.Equal(t, gamesetup.EventPointerDown, evs[0].Kind)
	assert.Equal(t, gamesetup.MouseButtonRight, evs[0].Button)
	assert.Equal(t, gamesetup.EventPointerUp, evs[1].Kind)
	assert.Equal(t, gamesetup.MouseButtonLeft, evs[1].Button)
	assert.Equal(t, gamesetup.Vec2{X: 105, Y: 512.5}, src.CursorPosition())
}

func TestSourceClicksButtonThroughGame(t *testing.T) {
	s, _ := newSimScreen(t)
	src := newSource(s)

	g := gamesetup.NewGame()
	clicks := 0
	gamesetup.NewButton(g, gamesetup.Placeholder{W: 50, H: 50}, gamesetup.ButtonConfig{
		Position: gamesetup.Vec2{X: 100, Y: 500},
		Command:  func() { clicks++ },
	})

	src.events <- tcell.NewEventMouse(10, 20, tcell.ButtonPrimary, tcell.ModNone)
	g.Step(src, s)
	src.events <- tcell.NewEventMouse(10, 20, tcell.ButtonNone, tcell.ModNone)
	g.Step(src, s)
	assert.Equal(t, 1, clicks)
}

func TestRunScreenQuitsOnCtrlC(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(60, 25)
	defer sim.Fini()

	frames := 0
	factory := func() (*gamesetup.Game, error) {
		g := gamesetup.NewGame()
		g.SetUpdateFunc(func(s gamesetup.Surface) {
			frames++
			s.Fill(gamesetup.Color{A: 1})
		})
		return g, nil
	}
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	done := make(chan error, 1)
	go func() {
		done <- RunScreen(sim, factory, Config{Size: gamesetup.Vec2{X: 600, Y: 625}, FrameInterval: time.Millisecond})
	}()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunScreen did not return after Ctrl-C")
	}
	assert.Positive(t, frames)
}
