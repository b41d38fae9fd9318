package gamesetup

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a surface converts it for drawing.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGB builds an opaque Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Polar returns the point at distance d from v along heading degrees, with
// Y increasing downward.
func (v Vec2) Polar(d, degrees float64) Vec2 {
	rad := degrees * math.Pi / 180
	return Vec2{v.X + d*math.Cos(rad), v.Y + d*math.Sin(rad)}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Inside reports whether p lies strictly inside the rectangle.
// Points on the edge are considered outside.
func (r Rect) Inside(p Vec2) bool {
	return r.X < p.X && p.X < r.X+r.Width &&
		r.Y < p.Y && p.Y < r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// CenteredAt returns a rectangle of the same size whose center is p.
func (r Rect) CenteredAt(p Vec2) Rect {
	return Rect{p.X - r.Width/2, p.Y - r.Height/2, r.Width, r.Height}
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// Key identifies a keyboard key. Every backend reports keys in ebiten's
// key space so bindings are portable between them.
type Key = ebiten.Key

// MouseButton identifies a mouse button. The zero value means no button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota + 1 // primary (left) mouse button
	MouseButtonMiddle                        // middle mouse button (scroll wheel click)
	MouseButtonRight                         // secondary (right) mouse button
)

// EventKind identifies a kind of input event.
type EventKind uint8

const (
	EventQuit        EventKind = iota // window closed or interrupt received
	EventPointerDown                  // a pointer button was pressed
	EventPointerUp                    // a pointer button was released
	EventPointerMove                  // the pointer moved
	EventKeyDown                      // a key went down
	EventKeyUp                        // a key went up
)

var eventKindNames = [...]string{"quit", "pointer-down", "pointer-up", "pointer-move", "key-down", "key-up"}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}
