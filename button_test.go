package gamesetup

import "testing"

func newClickGame() (*Game, *InjectSource, *RecordingSurface) {
	g := NewGame()
	return g, NewInjectSource(), NewRecordingSurface(600, 625)
}

func TestButtonClickRunsCommandOnce(t *testing.T) {
	g, in, surf := newClickGame()
	n := 0
	b := NewButton(g, Placeholder{W: 50, H: 50}, ButtonConfig{Command: func() { n++ }})
	if got, want := b.Rect(), (Rect{0, 0, 50, 50}); got != want {
		t.Fatalf("Rect = %v, want %v", got, want)
	}

	in.InjectPress(25, 25, MouseButtonLeft)
	g.Step(in, surf)
	if b.State() != ButtonPressed {
		t.Fatalf("State = %v, want pressed", b.State())
	}
	if n != 0 {
		t.Fatal("command ran on press")
	}

	in.InjectRelease(25, 25, MouseButtonLeft)
	g.Step(in, surf)
	if n != 1 {
		t.Errorf("command ran %d times, want 1", n)
	}
	if b.State() != ButtonIdle {
		t.Errorf("State = %v, want idle", b.State())
	}
}

func TestButtonReleaseOutsideSkipsCommand(t *testing.T) {
	g, in, surf := newClickGame()
	n := 0
	b := NewButton(g, Placeholder{W: 50, H: 50}, ButtonConfig{Command: func() { n++ }})

	in.InjectPress(25, 25, MouseButtonLeft)
	in.InjectRelease(1000, 1000, MouseButtonLeft)
	g.Step(in, surf)
	g.Step(in, surf)
	if n != 0 {
		t.Errorf("command ran %d times, want 0", n)
	}
	if b.State() != ButtonIdle {
		t.Errorf("State = %v, want idle", b.State())
	}
}

func TestButtonIgnoresOtherButtons(t *testing.T) {
	g, in, surf := newClickGame()
	n := 0
	b := NewButton(g, Placeholder{W: 50, H: 50}, ButtonConfig{Command: func() { n++ }})

	in.InjectPress(25, 25, MouseButtonRight)
	in.InjectRelease(25, 25, MouseButtonRight)
	g.Step(in, surf)
	g.Step(in, surf)
	if n != 0 || b.State() != ButtonIdle {
		t.Errorf("right click: n = %d, state = %v", n, b.State())
	}
}

func TestButtonDisabled(t *testing.T) {
	g, in, surf := newClickGame()
	n := 0
	NewButton(g, Placeholder{W: 50, H: 50}, ButtonConfig{Command: func() { n++ }, Disabled: true})

	in.InjectClick(25, 25)
	g.Step(in, surf)
	g.Step(in, surf)
	if n != 0 {
		t.Errorf("disabled button ran command %d times", n)
	}
}

func TestButtonPointerLeaveReverts(t *testing.T) {
	g, in, surf := newClickGame()
	n := 0
	b := NewButton(g, Placeholder{W: 50, H: 50}, ButtonConfig{Command: func() { n++ }})
	g.SetUpdateFunc(func(s Surface) { b.Update(s) })

	in.InjectPress(25, 25, MouseButtonLeft)
	g.Step(in, surf)
	in.InjectMove(200, 200)
	g.Step(in, surf)
	if b.State() != ButtonIdle {
		t.Fatalf("State = %v after leaving, want idle", b.State())
	}
	in.InjectRelease(25, 25, MouseButtonLeft)
	g.Step(in, surf)
	if n != 0 {
		t.Errorf("command ran after the press was abandoned")
	}
}

func TestButtonImages(t *testing.T) {
	g, in, surf := newClickGame()
	base := Box{W: 40, H: 20, Text: "base"}
	hover := Box{W: 40, H: 20, Text: "hover"}
	click := Box{W: 44, H: 22, Text: "click"}
	b := NewButton(g, base, ButtonConfig{Position: Vec2{100, 100}, HoverImage: hover, ClickImage: click})
	g.SetUpdateFunc(func(s Surface) { b.Update(s) })

	if got, want := b.Rect(), (Rect{80, 90, 40, 20}); got != want {
		t.Fatalf("Rect = %v, want %v", got, want)
	}

	g.Step(in, surf)
	if b.CurrentImage() != base {
		t.Errorf("idle image = %v, want base", b.CurrentImage())
	}
	in.InjectMove(100, 100)
	g.Step(in, surf)
	if b.CurrentImage() != hover {
		t.Errorf("hover image = %v, want hover", b.CurrentImage())
	}
	in.InjectPress(100, 100, MouseButtonLeft)
	g.Step(in, surf)
	if b.CurrentImage() != click {
		t.Errorf("pressed image = %v, want click", b.CurrentImage())
	}
	if got, want := b.Rect(), (Rect{78, 89, 44, 22}); got != want {
		t.Errorf("pressed Rect = %v, want %v", got, want)
	}
	if got, want := surf.LastBlit, (Vec2{78, 89}); got != want {
		t.Errorf("LastBlit = %v, want %v", got, want)
	}
}

func TestButtonUserBindingsStillRun(t *testing.T) {
	g, in, surf := newClickGame()
	b := NewButton(g, Placeholder{W: 50, H: 50}, ButtonConfig{})
	n := 0
	b.OnClick(0, MouseButtonLeft, Do(func() { n++ }))
	in.InjectPress(10, 10, MouseButtonLeft)
	g.Step(in, surf)
	if n != 1 {
		t.Errorf("user click binding ran %d times, want 1", n)
	}
}
