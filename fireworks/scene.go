package fireworks

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/gamesetup"
	"github.com/phanxgames/gamesetup/synth"
)

// keyBinding is the id of the scene's global key-down binding.
const keyBinding gamesetup.BindingID = 1

// Night sky and button colors.
var (
	skyColor    = gamesetup.RGB(0, 0, 70)
	buttonFill  = gamesetup.RGB(40, 40, 90)
	buttonHover = gamesetup.RGB(80, 80, 150)
	finaleColor = gamesetup.RGB(255, 201, 14)
)

// logOutput receives scene log lines. Tests swap it out.
var logOutput io.Writer = os.Stderr

// PlayerFunc builds a player for a rendered sound effect.
type PlayerFunc func(buf *beep.Buffer) gamesetup.Player

// EbitenPlayers plays effects through ebiten's audio context.
func EbitenPlayers(buf *beep.Buffer) gamesetup.Player {
	return gamesetup.NewEbitenPlayer(synth.PCM(buf))
}

// SpeakerPlayers plays effects through the beep speaker. The speaker must be
// initialised with synth.InitSpeaker first.
func SpeakerPlayers(buf *beep.Buffer) gamesetup.Player {
	return synth.NewSpeakerPlayer(buf)
}

type silence struct{}

func (silence) Play()             {}
func (silence) SetVolume(float64) {}

// Options wires a scene to its runtime.
type Options struct {
	// Players builds sound players. Nil plays nothing.
	Players PlayerFunc
	// Time drives every clock in the scene. Nil uses the system clock.
	Time gamesetup.TimeSource
	// Debug turns on runtime and scene logging.
	Debug bool
	// Store, when set, is called once per game for an entity store that
	// receives every input event.
	Store func() gamesetup.EventStore
}

// bank holds the players shared by every game a factory builds.
type bank struct {
	launch, bang, click gamesetup.Player
}

func newBank(cfg Config, players PlayerFunc) (*bank, error) {
	if players == nil {
		return &bank{launch: silence{}, bang: silence{}, click: silence{}}, nil
	}
	launch, err := effect(cfg.Sounds.Launch, synth.Launch)
	if err != nil {
		return nil, err
	}
	bang, err := effect(cfg.Sounds.Bang, synth.Bang)
	if err != nil {
		return nil, err
	}
	click, err := synth.Click()
	if err != nil {
		return nil, fmt.Errorf("click sound: %w", err)
	}
	return &bank{
		launch: players(launch),
		bang:   players(bang),
		click:  players(synth.Buffer(click)),
	}, nil
}

// effect loads path, or synthesizes the default voice when path is empty.
func effect(path string, voice func() beep.Streamer) (*beep.Buffer, error) {
	if path == "" {
		return synth.Buffer(voice()), nil
	}
	buf, err := synth.Load(path)
	if err != nil {
		return nil, fmt.Errorf("sound override: %w", err)
	}
	return buf, nil
}

// Scene is one fireworks show bound to its own Game.
type Scene struct {
	cfg  Config
	game *gamesetup.Game
	rng  *rand.Rand
	size gamesetup.Vec2

	rockets   []*Rocket   // draw order; launched rockets move to the end
	particles []*Particle // draw order; drawn before rockets
	buttons   []*gamesetup.Button
	finale    *gamesetup.Button
	help      *gamesetup.Popup
	sky       *Sky

	launchSound *gamesetup.Sound
	bangSound   *gamesetup.Sound
	clickSound  *gamesetup.Sound
}

// New validates cfg and builds a scene with a fresh game.
func New(cfg Config, opts Options) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := newBank(cfg, opts.Players)
	if err != nil {
		return nil, err
	}
	return newScene(cfg, opts, b, newRand(cfg.Seed)), nil
}

// NewFactory returns a factory producing a fresh scene for every game,
// so that Restart starts a new show. Sounds are prepared once, here.
func NewFactory(cfg Config, opts Options) (gamesetup.Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := newBank(cfg, opts.Players)
	if err != nil {
		return nil, err
	}
	var generation int64
	return func() (*gamesetup.Game, error) {
		seed := cfg.Seed
		if seed != 0 {
			seed += generation
		}
		generation++
		return newScene(cfg, opts, b, newRand(seed)).Game(), nil
	}, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

func newScene(cfg Config, opts Options, b *bank, rng *rand.Rand) *Scene {
	g := gamesetup.NewGame()
	g.SetTimeSource(opts.Time)
	g.SetDebugMode(opts.Debug)
	if opts.Store != nil {
		g.SetEntityStore(opts.Store())
	}

	s := &Scene{
		cfg:  cfg,
		game: g,
		rng:  rng,
		size: gamesetup.Vec2{X: float64(cfg.Width), Y: float64(cfg.Height)},
	}

	s.launchSound = g.Sound(b.launch, cfg.Volume)
	s.bangSound = g.Sound(b.bang, cfg.Volume)
	s.clickSound = g.Sound(b.click, cfg.Volume)
	if cfg.Muted {
		g.Mute()
	}

	s.sky = NewSky(cfg.Stars, s.size, g.NewClock(), rng)

	launchImg := gamesetup.Box{W: 60, H: 30, Fill: buttonFill, Stroke: gamesetup.ColorWhite, Text: "LAUNCH"}
	for _, rc := range cfg.Rockets {
		r := newRocket(s, rc)
		s.rockets = append(s.rockets, r)
		s.particles = append(s.particles, r.particles...)

		img := launchImg
		img.Stroke = r.color
		hover := img
		hover.Fill = buttonHover
		s.buttons = append(s.buttons, gamesetup.NewButton(g, img, gamesetup.ButtonConfig{
			Position:   gamesetup.Vec2{X: rc.X, Y: cfg.Ground + 50},
			HoverImage: hover,
			Command:    r.Launch,
		}))
	}

	finale := gamesetup.Box{W: 100, H: 30, Fill: buttonFill, Stroke: finaleColor, Text: "FINALE"}
	finaleHover := finale
	finaleHover.Fill = buttonHover
	s.finale = gamesetup.NewButton(g, finale, gamesetup.ButtonConfig{
		Position:   gamesetup.Vec2{X: s.size.X / 2, Y: cfg.Ground + 85},
		HoverImage: finaleHover,
		Command:    s.LaunchAll,
	})

	s.help = gamesetup.NewPopup(g, gamesetup.Box{
		W:      320,
		H:      120,
		Fill:   gamesetup.RGB(20, 20, 50),
		Stroke: gamesetup.ColorWhite,
		Text:   "space finale | m mute | r restart | esc close",
	}, s.size)
	s.help.AddButton(gamesetup.Rect{X: 290, Y: 5, Width: 25, Height: 25}, s.ToggleHelp)

	g.Bind(gamesetup.EventKeyDown, s.onKey, keyBinding)
	g.SetUpdateFunc(s.update)
	s.debugf("scene ready: %d rockets, %d particles, %d stars", len(s.rockets), len(s.particles), s.sky.Len())
	return s
}

// Game returns the scene's game.
func (s *Scene) Game() *gamesetup.Game { return s.game }

// Config returns the scene configuration.
func (s *Scene) Config() Config { return s.cfg }

// Rockets returns the rockets in draw order.
func (s *Scene) Rockets() []*Rocket { return s.rockets }

// Particles returns every particle in draw order.
func (s *Scene) Particles() []*Particle { return s.particles }

// LaunchButtons returns the per-rocket launch buttons in config order.
func (s *Scene) LaunchButtons() []*gamesetup.Button { return s.buttons }

// FinaleButton returns the launch-all button.
func (s *Scene) FinaleButton() *gamesetup.Button { return s.finale }

// Help returns the help popup.
func (s *Scene) Help() *gamesetup.Popup { return s.help }

// Sky returns the star field.
func (s *Scene) Sky() *Sky { return s.sky }

// Rocket returns the rocket with the given color name, or nil.
func (s *Scene) Rocket(name string) *Rocket {
	for _, r := range s.rockets {
		if r.name == name {
			return r
		}
	}
	return nil
}

// LaunchAll launches every rocket on its pad. Rockets reorder themselves as
// they launch, so the loop walks a copy.
func (s *Scene) LaunchAll() {
	for _, r := range slices.Clone(s.rockets) {
		r.Launch()
	}
}

// ToggleHelp opens or closes the help popup.
func (s *Scene) ToggleHelp() {
	s.help.Toggle()
	s.play(s.clickSound)
}

func (s *Scene) onKey(ev gamesetup.Event) {
	switch ev.Key {
	case ebiten.KeySpace:
		s.LaunchAll()
	case ebiten.KeyM:
		s.game.ToggleMute()
		s.debugf("muted: %v", s.game.IsMuted())
	case ebiten.KeyR:
		s.debugf("restart requested")
		s.game.Restart()
	case ebiten.KeyEscape:
		s.ToggleHelp()
	}
}

// raise moves r and its particles to the end of the draw order.
func (s *Scene) raise(r *Rocket) {
	if i := slices.Index(s.rockets, r); i >= 0 {
		s.rockets = append(slices.Delete(s.rockets, i, i+1), r)
	}
	for _, p := range r.particles {
		if i := slices.Index(s.particles, p); i >= 0 {
			s.particles = append(slices.Delete(s.particles, i, i+1), p)
		}
	}
}

func (s *Scene) play(snd *gamesetup.Sound) {
	if snd != nil {
		snd.Play()
	}
}

// uniform returns a random value in [lo, hi].
func (s *Scene) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Scene) update(surf gamesetup.Surface) {
	surf.Fill(skyColor)
	s.sky.Update(surf)
	for _, p := range s.particles {
		p.Update(surf)
	}
	for _, r := range s.rockets {
		r.Update(surf)
	}
	for _, b := range s.buttons {
		b.Update(surf)
	}
	s.finale.Update(surf)
	s.help.Update(surf)
}

func (s *Scene) debugf(format string, args ...any) {
	if !s.game.DebugMode() {
		return
	}
	_, _ = fmt.Fprintf(logOutput, "[fireworks] "+format+"\n", args...)
}
