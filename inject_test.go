package gamesetup

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInjectClickSpansTwoFrames(t *testing.T) {
	in := NewInjectSource()
	in.InjectClick(50, 60)
	if in.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", in.Pending())
	}

	evs := in.Poll()
	if len(evs) != 1 || evs[0].Kind != EventPointerDown || evs[0].Button != MouseButtonLeft {
		t.Fatalf("frame 1 = %v, want left press", evs)
	}
	if in.CursorPosition() != (Vec2{50, 60}) {
		t.Errorf("CursorPosition = %v, want (50, 60)", in.CursorPosition())
	}
	evs = in.Poll()
	if len(evs) != 1 || evs[0].Kind != EventPointerUp {
		t.Fatalf("frame 2 = %v, want release", evs)
	}
	if evs := in.Poll(); evs != nil {
		t.Errorf("empty queue returned %v", evs)
	}
}

func TestInjectKeyState(t *testing.T) {
	in := NewInjectSource()
	in.InjectKeyTap(ebiten.KeyR)

	if in.IsKeyPressed(ebiten.KeyR) {
		t.Error("key held before delivery")
	}
	in.Poll()
	if !in.IsKeyPressed(ebiten.KeyR) {
		t.Error("key not held after key down")
	}
	in.Poll()
	if in.IsKeyPressed(ebiten.KeyR) {
		t.Error("key still held after key up")
	}
}

func TestInjectIdleAndQuit(t *testing.T) {
	in := NewInjectSource()
	in.InjectIdle(2)
	in.InjectQuit()
	if in.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", in.Pending())
	}
	in.Poll()
	in.Poll()
	evs := in.Poll()
	if len(evs) != 1 || evs[0].Kind != EventQuit {
		t.Errorf("last frame = %v, want quit", evs)
	}
}
