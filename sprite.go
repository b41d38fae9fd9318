package gamesetup

import "math"

// Sprite is an image with a position and a heading. Headings are degrees,
// counter-clockwise with 0 pointing right and y pointing up on screen.
type Sprite struct {
	img     Image
	pos     Vec2
	heading float64
	tilt    float64
}

// NewSprite creates a sprite at the origin facing right.
func NewSprite(img Image) *Sprite {
	return &Sprite{img: img}
}

// Image returns the sprite's image.
func (s *Sprite) Image() Image { return s.img }

// SetImage replaces the sprite's image.
func (s *Sprite) SetImage(img Image) { s.img = img }

// Position returns the sprite's center.
func (s *Sprite) Position() Vec2 { return s.pos }

// SetPosition moves the sprite's center to p.
func (s *Sprite) SetPosition(p Vec2) { s.pos = p }

// Heading returns the heading in degrees.
func (s *Sprite) Heading() float64 { return s.heading }

// SetHeading turns the sprite to degrees.
func (s *Sprite) SetHeading(degrees float64) { s.heading = degrees }

// Tilt rotates the source image so that it faces heading 0. An image drawn
// pointing up needs Tilt(-90).
func (s *Sprite) Tilt(degrees float64) { s.tilt = degrees }

// Rotation returns the total draw rotation in degrees.
func (s *Sprite) Rotation() float64 { return s.tilt + s.heading }

// Towards returns the heading from the sprite to p, in [0, 360).
func (s *Sprite) Towards(p Vec2) float64 {
	dx, dy := p.X-s.pos.X, s.pos.Y-p.Y
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Forward moves the sprite distance along its heading.
func (s *Sprite) Forward(distance float64) {
	rad := s.heading * math.Pi / 180
	s.pos.X += distance * math.Cos(rad)
	s.pos.Y -= distance * math.Sin(rad)
}

// Update draws the sprite centered on its position.
func (s *Sprite) Update(surf Surface) {
	surf.Blit(s.img, s.pos, BlitOptions{CenterX: true, CenterY: true, Rotation: s.Rotation()})
}
