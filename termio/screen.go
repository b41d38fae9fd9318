package termio

import (
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/gamesetup"
)

// Screen is a gamesetup.Surface drawing onto a tcell screen. Logical
// coordinates are scaled to cells on every call, so resizing the terminal
// rescales the scene.
type Screen struct {
	tcell.Screen
	size gamesetup.Vec2
}

// NewScreen wraps an initialized tcell screen presenting a logical surface
// of size.
func NewScreen(s tcell.Screen, size gamesetup.Vec2) *Screen {
	return &Screen{Screen: s, size: size}
}

// Size returns the logical size.
func (s *Screen) Size() gamesetup.Vec2 { return s.size }

// Cell maps a logical point to a cell, reporting whether it is on screen.
func (s *Screen) Cell(p gamesetup.Vec2) (int, int, bool) {
	cols, rows := s.Screen.Size()
	if cols == 0 || rows == 0 {
		return 0, 0, false
	}
	x := int(math.Floor(p.X * float64(cols) / s.size.X))
	y := int(math.Floor(p.Y * float64(rows) / s.size.Y))
	return x, y, x >= 0 && y >= 0 && x < cols && y < rows
}

// Point maps a cell to the logical point at its center.
func (s *Screen) Point(x, y int) gamesetup.Vec2 {
	cols, rows := s.Screen.Size()
	if cols == 0 || rows == 0 {
		return gamesetup.Vec2{}
	}
	return gamesetup.Vec2{
		X: (float64(x) + 0.5) * s.size.X / float64(cols),
		Y: (float64(y) + 0.5) * s.size.Y / float64(rows),
	}
}

// Color converts a gamesetup color to a tcell color. Alpha darkens the
// color, since cells cannot blend.
func Color(c gamesetup.Color) tcell.Color {
	rgba := c.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

// Fill clears every cell to c.
func (s *Screen) Fill(c gamesetup.Color) {
	s.Screen.SetStyle(tcell.StyleDefault.Background(Color(c)))
	s.Screen.Clear()
}

// cellRect returns the cell bounds covered by a logical rectangle, clipped.
func (s *Screen) cellRect(r gamesetup.Rect) (x0, y0, x1, y1 int) {
	cols, rows := s.Screen.Size()
	x0 = int(math.Floor(r.X * float64(cols) / s.size.X))
	y0 = int(math.Floor(r.Y * float64(rows) / s.size.Y))
	x1 = int(math.Ceil((r.X + r.Width) * float64(cols) / s.size.X))
	y1 = int(math.Ceil((r.Y + r.Height) * float64(rows) / s.size.Y))
	return max(x0, 0), max(y0, 0), min(x1, cols), min(y1, rows)
}

// Blit draws a Box as a filled block with its text centered. Other images
// are drawn as a shaded block of their size. Rotation is ignored.
func (s *Screen) Blit(img gamesetup.Image, pos gamesetup.Vec2, opts gamesetup.BlitOptions) {
	if _, ok := img.(gamesetup.Placeholder); ok {
		return
	}
	size := img.Size()
	if opts.CenterX {
		pos.X -= size.X / 2
	}
	if opts.CenterY {
		pos.Y -= size.Y / 2
	}
	x0, y0, x1, y1 := s.cellRect(gamesetup.Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y})

	box, ok := img.(gamesetup.Box)
	if !ok {
		st := tcell.StyleDefault.Foreground(tcell.ColorSilver)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				s.SetContent(x, y, '▒', nil, st)
			}
		}
		return
	}

	st := tcell.StyleDefault.Background(Color(box.Fill)).Foreground(Color(box.TextColor))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.SetContent(x, y, ' ', nil, st)
		}
	}
	if box.Text == "" || y1 <= y0 {
		return
	}
	n := utf8.RuneCountInString(box.Text)
	tx := x0 + (x1-x0-n)/2
	ty := y0 + (y1-y0-1)/2
	for _, r := range box.Text {
		if tx >= x0 && tx < x1 {
			s.SetContent(tx, ty, r, nil, st)
		}
		tx++
	}
}

// DrawLine plots the cells between from and to.
func (s *Screen) DrawLine(from, to gamesetup.Vec2, width float64, c gamesetup.Color) {
	fx, fy, _ := s.Cell(from)
	tx, ty, _ := s.Cell(to)
	steps := max(abs(tx-fx), abs(ty-fy))
	st := tcell.StyleDefault.Foreground(Color(c))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		p := gamesetup.Vec2{X: from.X + (to.X-from.X)*t, Y: from.Y + (to.Y-from.Y)*t}
		s.plot(p, '·', st)
	}
}

// DrawCircle marks the cell under center.
func (s *Screen) DrawCircle(center gamesetup.Vec2, radius float64, c gamesetup.Color) {
	glyph := '•'
	if radius < 2 {
		glyph = '·'
	}
	s.plot(center, glyph, tcell.StyleDefault.Foreground(Color(c)))
}

// plot sets one cell, keeping the background already there.
func (s *Screen) plot(p gamesetup.Vec2, r rune, st tcell.Style) {
	x, y, ok := s.Cell(p)
	if !ok {
		return
	}
	_, _, old, _ := s.GetContent(x, y)
	_, bg, _ := old.Decompose()
	s.SetContent(x, y, r, nil, st.Background(bg))
}

// Present flushes the frame to the terminal.
func (s *Screen) Present() error {
	s.Show()
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
