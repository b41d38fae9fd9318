package fireworks

import (
	"bytes"
	"testing"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/gamesetup"
	"github.com/phanxgames/gamesetup/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type fakePlayer struct {
	samples int
	plays   int
	volume  float64
}

func (p *fakePlayer) Play()                 { p.plays++ }
func (p *fakePlayer) SetVolume(vol float64) { p.volume = vol }

// recordPlayers returns a PlayerFunc and the players it built, in the order
// launch, bang, click.
func recordPlayers() (PlayerFunc, *[]*fakePlayer) {
	var built []*fakePlayer
	return func(buf *beep.Buffer) gamesetup.Player {
		p := &fakePlayer{samples: buf.Len()}
		built = append(built, p)
		return p
	}, &built
}

func TestSceneLayout(t *testing.T) {
	st := newStepper(t, Options{}, nil)
	s := st.scene

	assert.Len(t, s.Rockets(), 5)
	assert.Len(t, s.Particles(), 250)
	require.Len(t, s.LaunchButtons(), 5)
	// Five launch buttons, the finale, the popup and its close button.
	assert.Len(t, s.Game().Widgets(), 8)

	assert.Equal(t, gamesetup.Rect{X: 70, Y: 555, Width: 60, Height: 30}, s.LaunchButtons()[0].Rect())
	assert.Equal(t, gamesetup.Rect{X: 250, Y: 590, Width: 100, Height: 30}, s.FinaleButton().Rect())
	assert.False(t, s.Help().IsOpen())
}

func TestSceneDrawOrder(t *testing.T) {
	st := newStepper(t, Options{}, nil)
	st.step(0)
	assert.Equal(t, 1, st.surf.Fills)
	assert.Equal(t, 5+5+1, st.surf.Blits)
	assert.Zero(t, st.surf.Circles)
}

func TestSpaceLaunchesAll(t *testing.T) {
	st := newStepper(t, Options{}, nil)
	st.src.InjectKeyDown(ebiten.KeySpace)
	st.step(0)
	for _, r := range st.scene.Rockets() {
		assert.True(t, r.Launched(), r.Name())
	}
}

func TestOtherKeysDoNotLaunch(t *testing.T) {
	st := newStepper(t, Options{}, nil)
	st.src.InjectKeyDown(ebiten.KeyA)
	st.step(0)
	for _, r := range st.scene.Rockets() {
		assert.False(t, r.Launched(), r.Name())
	}
}

func TestLaunchButtonClick(t *testing.T) {
	st := newStepper(t, Options{}, nil)
	st.src.InjectClick(200, 570)
	st.step(0)
	assert.False(t, st.scene.Rocket("green").Launched(), "launch waits for the release")
	st.step(0)

	assert.True(t, st.scene.Rocket("green").Launched())
	assert.False(t, st.scene.Rocket("red").Launched())
	names := rocketNames(st.scene.Rockets())
	assert.Equal(t, "green", names[len(names)-1])
}

func TestFinaleButtonLaunchesAll(t *testing.T) {
	st := newStepper(t, Options{}, nil)
	st.scene.Rocket("blue").Launch()
	st.src.InjectClick(300, 605)
	st.step(0)
	st.step(0)
	for _, r := range st.scene.Rockets() {
		assert.True(t, r.Launched(), r.Name())
	}
	assert.Equal(t, []string{"blue", "red", "green", "pink", "yellow"}, rocketNames(st.scene.Rockets()))
}

func TestSoundsAndMute(t *testing.T) {
	players, built := recordPlayers()
	st := newStepper(t, Options{Players: players}, func(c *Config) { c.Volume = 0.6 })
	require.Len(t, *built, 3)
	launch, bang := (*built)[0], (*built)[1]
	assert.Positive(t, launch.samples)
	assert.Equal(t, 0.6, launch.volume)

	st.scene.Rocket("red").Launch()
	assert.Equal(t, 1, launch.plays)
	st.step(0.6)
	assert.Equal(t, 1, bang.plays)

	st.src.InjectKeyDown(ebiten.KeyM)
	st.step(0)
	assert.True(t, st.scene.Game().IsMuted())
	assert.Zero(t, launch.volume)

	st.src.InjectKeyUp(ebiten.KeyM)
	st.src.InjectKeyDown(ebiten.KeyM)
	st.step(0)
	st.step(0)
	assert.False(t, st.scene.Game().IsMuted())
	assert.Equal(t, 0.6, launch.volume)
}

func TestStartMuted(t *testing.T) {
	players, built := recordPlayers()
	st := newStepper(t, Options{Players: players}, func(c *Config) { c.Muted = true })
	assert.True(t, st.scene.Game().IsMuted())
	for _, p := range *built {
		assert.Zero(t, p.volume)
	}
}

func TestHelpPopup(t *testing.T) {
	players, built := recordPlayers()
	st := newStepper(t, Options{Players: players}, nil)
	help := st.scene.Help()
	click := (*built)[2]

	st.src.InjectKeyDown(ebiten.KeyEscape)
	st.step(0)
	require.True(t, help.IsOpen())
	assert.Equal(t, 1, click.plays)
	assert.Equal(t, 5+5+1+1, st.surf.Blits, "open popup is drawn over the scene")

	// The close area sits in the popup's top-right corner.
	st.src.InjectClick(442, 270)
	st.step(0)
	st.step(0)
	assert.False(t, help.IsOpen())

	// Clicking the same spot while closed does nothing.
	st.src.InjectClick(442, 270)
	st.step(0)
	st.step(0)
	assert.False(t, help.IsOpen())
	assert.Equal(t, 2, click.plays)
}

func TestRestartKey(t *testing.T) {
	st := newStepper(t, Options{}, nil)
	st.src.InjectKeyDown(ebiten.KeyR)
	st.step(0)
	assert.True(t, st.scene.Game().Restarting())
	assert.False(t, st.scene.Game().Running())
}

func TestFactoryRestartBuildsFreshGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Stars = 0
	cfg.Seed = 9
	factory, err := NewFactory(cfg, Options{})
	require.NoError(t, err)

	var games []*gamesetup.Game
	counting := func() (*gamesetup.Game, error) {
		g, err := factory()
		games = append(games, g)
		return g, err
	}

	src := gamesetup.NewInjectSource()
	src.InjectKeyTap(ebiten.KeyR)
	src.InjectQuit()
	err = gamesetup.Loop(counting, src, gamesetup.NewRecordingSurface(600, 625), gamesetup.LoopConfig{MaxFrames: 10})
	require.NoError(t, err)

	require.Len(t, games, 2)
	assert.NotSame(t, games[0], games[1])
	assert.True(t, games[0].Restarting())
	assert.False(t, games[1].Running())
}

func TestFactoryRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rockets = nil
	_, err := NewFactory(cfg, Options{})
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Sounds.Bang = "missing.ogg"
	players, _ := recordPlayers()
	_, err = NewFactory(cfg, Options{Players: players})
	assert.ErrorContains(t, err, "sound override")
}

func TestSceneForwardsInputToEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	store := ecs.NewDonburiStore(world)
	st := newStepper(t, Options{Store: func() gamesetup.EventStore { return store }}, nil)

	st.src.InjectKeyDown(ebiten.KeySpace)
	st.step(0)
	assert.Equal(t, uint64(1), store.State().Events)
	assert.True(t, store.State().Keys[ebiten.KeySpace])
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	old := logOutput
	logOutput = &buf
	t.Cleanup(func() { logOutput = old })

	st := newStepper(t, Options{Debug: true}, nil)
	st.scene.Rocket("pink").Launch()

	assert.Contains(t, buf.String(), "[fireworks] scene ready: 5 rockets, 250 particles, 0 stars")
	assert.Contains(t, buf.String(), "[fireworks] rocket pink launched")
}
