package gamesetup

// Image is anything a Surface can be asked to blit.
type Image interface {
	Size() Vec2
}

// Placeholder stands in for an image that only has dimensions. Surfaces
// never draw it; widgets use it for invisible hit areas.
type Placeholder struct {
	W, H float64
}

// Size returns the placeholder dimensions.
func (p Placeholder) Size() Vec2 { return Vec2{p.W, p.H} }

// Box is a procedurally drawn image: a filled rectangle with an optional
// outline and a single line of centered text. Every backend knows how to
// render it, so scenes built from boxes need no asset files.
type Box struct {
	W, H      float64
	Fill      Color
	Stroke    Color
	Text      string
	TextColor Color
}

// Size returns the box dimensions.
func (b Box) Size() Vec2 { return Vec2{b.W, b.H} }

// BlitOptions controls how an image is placed.
type BlitOptions struct {
	CenterX  bool    // pos is the horizontal center instead of the left edge
	CenterY  bool    // pos is the vertical center instead of the top edge
	Rotation float64 // counter-clockwise degrees around the image center
}

// Surface is a drawable frame. Implementations: EbitenSurface (window),
// termio.Screen (terminal) and RecordingSurface (headless).
type Surface interface {
	Size() Vec2
	Fill(c Color)
	Blit(img Image, pos Vec2, opts BlitOptions)
	DrawLine(from, to Vec2, width float64, c Color)
	DrawCircle(center Vec2, radius float64, c Color)
}

// Presenter is implemented by surfaces that must be flushed after each frame.
type Presenter interface {
	Present() error
}

// blitOrigin returns the top-left corner for drawing img at pos.
func blitOrigin(img Image, pos Vec2, opts BlitOptions) Vec2 {
	size := img.Size()
	if opts.CenterX {
		pos.X -= size.X / 2
	}
	if opts.CenterY {
		pos.Y -= size.Y / 2
	}
	return pos
}

// RecordingSurface draws nothing and counts what it was asked to draw.
// Used for headless runs and tests.
type RecordingSurface struct {
	W, H    float64
	Fills   int
	Blits   int
	Lines   int
	Circles int
	// LastBlit is the top-left corner of the most recent blit.
	LastBlit Vec2
}

// NewRecordingSurface creates a headless surface of the given size.
func NewRecordingSurface(w, h float64) *RecordingSurface {
	return &RecordingSurface{W: w, H: h}
}

func (r *RecordingSurface) Size() Vec2 { return Vec2{r.W, r.H} }

func (r *RecordingSurface) Fill(Color) { r.Fills++ }

func (r *RecordingSurface) Blit(img Image, pos Vec2, opts BlitOptions) {
	if _, ok := img.(Placeholder); ok {
		return
	}
	r.Blits++
	r.LastBlit = blitOrigin(img, pos, opts)
}

func (r *RecordingSurface) DrawLine(from, to Vec2, width float64, c Color) { r.Lines++ }

func (r *RecordingSurface) DrawCircle(center Vec2, radius float64, c Color) { r.Circles++ }
