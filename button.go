package gamesetup

// ButtonState is the press state of a Button.
type ButtonState uint8

const (
	ButtonIdle    ButtonState = iota // not being pressed
	ButtonPressed                    // pressed over the button, awaiting release
)

func (s ButtonState) String() string {
	if s == ButtonPressed {
		return "pressed"
	}
	return "idle"
}

// ButtonConfig holds a button's options. The zero value is a usable idle
// button at the origin with no command.
type ButtonConfig struct {
	// Position is the button's center for drawable images, or its top-left
	// corner for a Placeholder.
	Position Vec2
	// Command runs once per completed click.
	Command func()
	// HoverImage is shown while the pointer is over the button.
	HoverImage Image
	// ClickImage is shown while the button is pressed and the pointer is over it.
	ClickImage Image
	// DisabledImage is shown while Disabled is set.
	DisabledImage Image
	// Disabled ignores presses and suppresses Command.
	Disabled bool
}

// Button is a clickable widget. A press of the left button over it arms the
// button; the matching release runs Command if it also lands over it.
type Button struct {
	Widget
	img     Image
	current Image
	cfg     ButtonConfig
	state   ButtonState
}

// NewButton creates a button showing img and registers it with g.
// Pass a Placeholder for an invisible button of that size.
func NewButton(g *Game, img Image, cfg ButtonConfig) *Button {
	b := &Button{img: img, cfg: cfg}
	b.init(g, Rect{})
	b.layout(img)
	g.Add(b)
	return b
}

// layout recomputes the bounds from the image in effect.
func (b *Button) layout(img Image) {
	b.current = img
	size := img.Size()
	if _, ok := img.(Placeholder); ok {
		b.rect = Rect{b.cfg.Position.X, b.cfg.Position.Y, size.X, size.Y}
		return
	}
	b.rect = Rect{Width: size.X, Height: size.Y}.CenteredAt(b.cfg.Position)
}

// ProcessEvent advances the press state machine, then runs user bindings.
func (b *Button) ProcessEvent(ev Event, keys KeyState) {
	if ev.Button == MouseButtonLeft {
		switch ev.Kind {
		case EventPointerDown:
			if !b.cfg.Disabled && b.state == ButtonIdle && b.IsOver(ev.Pos) {
				b.state = ButtonPressed
			}
		case EventPointerUp:
			if b.state == ButtonPressed {
				b.state = ButtonIdle
				if !b.cfg.Disabled && b.cfg.Command != nil && b.IsOver(ev.Pos) {
					b.cfg.Command()
				}
			}
		}
	}
	b.Widget.ProcessEvent(ev, keys)
}

// Update picks the image for the current state, refreshes the bounds and
// draws the button. A pressed button whose pointer has wandered off reverts
// to idle without running Command.
func (b *Button) Update(s Surface) {
	over := b.IsOver(b.game.Cursor())
	if b.state == ButtonPressed && !over {
		b.state = ButtonIdle
	}

	img := b.img
	switch {
	case b.cfg.Disabled:
		if b.cfg.DisabledImage != nil {
			img = b.cfg.DisabledImage
		}
	case b.state == ButtonPressed && b.cfg.ClickImage != nil:
		img = b.cfg.ClickImage
	case over && b.cfg.HoverImage != nil:
		img = b.cfg.HoverImage
	}

	b.layout(img)
	if _, ok := img.(Placeholder); ok {
		return
	}
	s.Blit(img, b.cfg.Position, BlitOptions{CenterX: true, CenterY: true})
}

// State returns the press state.
func (b *Button) State() ButtonState { return b.state }

// Image returns the base image.
func (b *Button) Image() Image { return b.img }

// CurrentImage returns the image chosen by the last Update.
func (b *Button) CurrentImage() Image { return b.current }

// SetImage replaces the base image.
func (b *Button) SetImage(img Image) {
	b.img = img
	b.layout(img)
}

// SetDisabled enables or disables the button.
func (b *Button) SetDisabled(disabled bool) {
	b.cfg.Disabled = disabled
	if disabled {
		b.state = ButtonIdle
	}
}

// Disabled reports whether the button is disabled.
func (b *Button) Disabled() bool { return b.cfg.Disabled }

// SetCommand replaces the command.
func (b *Button) SetCommand(fn func()) { b.cfg.Command = fn }

// SetPosition moves the button.
func (b *Button) SetPosition(p Vec2) {
	b.cfg.Position = p
	b.layout(b.current)
}

// Config returns a copy of the button's options.
func (b *Button) Config() ButtonConfig { return b.cfg }
