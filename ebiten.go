package gamesetup

import (
	"errors"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// --- Images ---

// EbitenImage adapts an *ebiten.Image to Image.
type EbitenImage struct {
	*ebiten.Image
}

// Size returns the image bounds as a Vec2.
func (i EbitenImage) Size() Vec2 {
	b := i.Bounds()
	return Vec2{float64(b.Dx()), float64(b.Dy())}
}

// boxCache keeps one rendered image per distinct Box.
var boxCache = map[Box]*ebiten.Image{}

func boxImage(b Box) *ebiten.Image {
	if img, ok := boxCache[b]; ok {
		return img
	}
	w, h := int(math.Ceil(b.W)), int(math.Ceil(b.H))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := ebiten.NewImage(w, h)
	img.Fill(b.Fill.RGBA())
	if b.Stroke.A > 0 {
		vector.StrokeRect(img, 1, 1, float32(w-2), float32(h-2), 2, b.Stroke.RGBA(), false)
	}
	if b.Text != "" {
		// The debug font is 6x16 per glyph.
		tx := (w - 6*len(b.Text)) / 2
		ty := (h - 16) / 2
		ebitenutil.DebugPrintAt(img, b.Text, tx, ty)
	}
	boxCache[b] = img
	return img
}

// --- Surface ---

// EbitenSurface draws onto an ebiten screen image. Run creates one per
// frame around the screen passed to Draw.
type EbitenSurface struct {
	Screen *ebiten.Image
}

func (s EbitenSurface) Size() Vec2 {
	b := s.Screen.Bounds()
	return Vec2{float64(b.Dx()), float64(b.Dy())}
}

func (s EbitenSurface) Fill(c Color) { s.Screen.Fill(c.RGBA()) }

// Blit draws img. Placeholders are skipped and Box values are rendered
// through a cache; anything else must be an EbitenImage.
func (s EbitenSurface) Blit(img Image, pos Vec2, opts BlitOptions) {
	var src *ebiten.Image
	switch v := img.(type) {
	case Placeholder:
		return
	case Box:
		src = boxImage(v)
	case EbitenImage:
		src = v.Image
	case *EbitenImage:
		src = v.Image
	default:
		return
	}
	size := img.Size()
	origin := blitOrigin(img, pos, opts)

	var op ebiten.DrawImageOptions
	if opts.Rotation != 0 {
		op.GeoM.Translate(-size.X/2, -size.Y/2)
		// Screen y points down, so a counter-clockwise turn is negative.
		op.GeoM.Rotate(-opts.Rotation * math.Pi / 180)
		op.GeoM.Translate(size.X/2, size.Y/2)
	}
	op.GeoM.Translate(origin.X, origin.Y)
	s.Screen.DrawImage(src, &op)
}

func (s EbitenSurface) DrawLine(from, to Vec2, width float64, c Color) {
	vector.StrokeLine(s.Screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y),
		float32(width), c.RGBA(), true)
}

func (s EbitenSurface) DrawCircle(center Vec2, radius float64, c Color) {
	vector.DrawFilledCircle(s.Screen, float32(center.X), float32(center.Y), float32(radius), c.RGBA(), true)
}

// --- Input ---

var ebitenButtons = [...]struct {
	eb  ebiten.MouseButton
	btn MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
	{ebiten.MouseButtonRight, MouseButtonRight},
}

// EbitenSource turns ebiten's per-tick input state into discrete events.
// Capture runs in every Update tick; Poll drains what was captured since the
// previous Poll.
type EbitenSource struct {
	queue   []Event
	keyBuf  []ebiten.Key
	cursor  Vec2
	started bool
}

// NewEbitenSource creates an empty source.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Capture samples input for one tick.
func (s *EbitenSource) Capture() {
	if ebiten.IsWindowBeingClosed() {
		s.queue = append(s.queue, Event{Kind: EventQuit})
	}

	cx, cy := ebiten.CursorPosition()
	pos := Vec2{float64(cx), float64(cy)}
	if s.started && pos != s.cursor {
		s.queue = append(s.queue, Event{Kind: EventPointerMove, Pos: pos})
	}
	s.cursor = pos
	s.started = true

	for _, b := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			s.queue = append(s.queue, Event{Kind: EventPointerDown, Pos: pos, Button: b.btn})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			s.queue = append(s.queue, Event{Kind: EventPointerUp, Pos: pos, Button: b.btn})
		}
	}

	s.keyBuf = inpututil.AppendJustPressedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		s.queue = append(s.queue, Event{Kind: EventKeyDown, Key: k})
	}
	s.keyBuf = inpututil.AppendJustReleasedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		s.queue = append(s.queue, Event{Kind: EventKeyUp, Key: k})
	}
}

// Poll returns the captured events and empties the queue.
func (s *EbitenSource) Poll() []Event {
	evs := s.queue
	s.queue = nil
	return evs
}

func (s *EbitenSource) IsKeyPressed(key Key) bool { return ebiten.IsKeyPressed(key) }

func (s *EbitenSource) CursorPosition() Vec2 { return s.cursor }

// --- Audio ---

// AudioSampleRate is the rate of the shared ebiten audio context.
const AudioSampleRate = 44100

// EbitenPlayer plays a 16-bit little-endian stereo PCM sample through
// ebiten's audio context.
type EbitenPlayer struct {
	p *audio.Player
}

// NewEbitenPlayer wraps pcm, creating the audio context on first use.
func NewEbitenPlayer(pcm []byte) *EbitenPlayer {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(AudioSampleRate)
	}
	return &EbitenPlayer{p: ctx.NewPlayerFromBytes(pcm)}
}

// Play restarts the sample from the beginning.
func (e *EbitenPlayer) Play() {
	if err := e.p.Rewind(); err != nil {
		logf("audio rewind: %v", err)
		return
	}
	e.p.Play()
}

func (e *EbitenPlayer) SetVolume(volume float64) { e.p.SetVolume(volume) }

// --- Driver ---

// RunConfig configures the ebiten window.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws the measured frame rate in the top-left corner.
	ShowFPS bool
	// ScreenshotDir, when set, makes F12 save the current frame there as PNG.
	ScreenshotDir string
}

// ebitenGame adapts a session to ebiten.Game. Input is captured in Update;
// the game steps in Draw, where its update hook has a screen to draw on.
type ebitenGame struct {
	sess  *session
	src   *EbitenSource
	cfg   RunConfig
	fps   *fpsOverlay
	shots screenshots
	done  bool
	err   error
}

func (e *ebitenGame) Update() error {
	if e.err != nil {
		return e.err
	}
	if e.done {
		return ebiten.Termination
	}
	e.src.Capture()
	if e.shots.dir != "" && inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		e.shots.Queue(e.cfg.Title)
	}
	return nil
}

func (e *ebitenGame) Draw(screen *ebiten.Image) {
	if e.done || e.err != nil {
		return
	}
	e.sess.game.Step(e.src, EbitenSurface{Screen: screen})
	if e.fps != nil {
		e.fps.draw(screen)
	}
	e.shots.flush(screen)
	e.done, e.err = e.sess.advance()
}

func (e *ebitenGame) Layout(_, _ int) (int, int) {
	return e.cfg.Width, e.cfg.Height
}

// Run opens a window and runs games from factory until one closes without
// restarting. Closing the window delivers EventQuit instead of exiting.
func Run(factory Factory, cfg RunConfig) error {
	sess, err := newSession(factory)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowClosingHandled(true)

	eg := &ebitenGame{sess: sess, src: NewEbitenSource(), cfg: cfg, shots: screenshots{dir: cfg.ScreenshotDir}}
	if cfg.ShowFPS {
		eg.fps = newFPSOverlay()
	}
	if err := ebiten.RunGame(eg); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
