package gamesetup

// Popup is a dialog image drawn centered on the surface, with child buttons
// whose commands only run while the popup is open.
type Popup struct {
	Widget
	img     Image
	screen  Vec2
	buttons []*Button
	open    bool
}

// NewPopup creates a closed popup for a surface of size screen and
// registers it with g.
func NewPopup(g *Game, img Image, screen Vec2) *Popup {
	p := &Popup{img: img, screen: screen}
	size := img.Size()
	p.init(g, Rect{Width: size.X, Height: size.Y}.CenteredAt(Vec2{screen.X / 2, screen.Y / 2}))
	g.Add(p)
	return p
}

// AddButton creates an invisible child button. local is relative to the
// popup's top-left corner. The wrapped command is ignored while closed.
func (p *Popup) AddButton(local Rect, command func()) *Button {
	origin := Vec2{p.rect.X, p.rect.Y}
	b := NewButton(p.game, Placeholder{W: local.Width, H: local.Height}, ButtonConfig{
		Position: origin.Add(Vec2{local.X, local.Y}),
		Command: func() {
			if p.open && command != nil {
				command()
			}
		},
	})
	p.buttons = append(p.buttons, b)
	return b
}

// Buttons returns the child buttons.
func (p *Popup) Buttons() []*Button { return p.buttons }

// Open shows the popup.
func (p *Popup) Open() { p.open = true }

// Close hides the popup.
func (p *Popup) Close() { p.open = false }

// Toggle flips the popup between open and closed.
func (p *Popup) Toggle() { p.open = !p.open }

// IsOpen reports whether the popup is shown.
func (p *Popup) IsOpen() bool { return p.open }

// Update draws the popup and its buttons while open.
func (p *Popup) Update(s Surface) {
	if !p.open {
		return
	}
	size := s.Size()
	s.Blit(p.img, Vec2{size.X / 2, size.Y / 2}, BlitOptions{CenterX: true, CenterY: true})
	for _, b := range p.buttons {
		b.Update(s)
	}
}
