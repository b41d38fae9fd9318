package gamesetup

import "testing"

type fakePlayer struct {
	plays  int
	volume float64
}

func (p *fakePlayer) Play()                 { p.plays++ }
func (p *fakePlayer) SetVolume(vol float64) { p.volume = vol }

func TestSoundFollowsGameMute(t *testing.T) {
	g := NewGame()
	p := &fakePlayer{}
	s := g.Sound(p, 0.8)
	if p.volume != 0.8 {
		t.Fatalf("volume = %v, want 0.8", p.volume)
	}

	g.ToggleMute()
	if !g.IsMuted() || !s.Muted() {
		t.Fatal("ToggleMute did not mute")
	}
	if p.volume != 0 {
		t.Errorf("muted volume = %v, want 0", p.volume)
	}

	s.SetVolume(0.5)
	if p.volume != 0 {
		t.Errorf("SetVolume while muted changed player volume to %v", p.volume)
	}

	g.ToggleMute()
	if p.volume != 0.5 {
		t.Errorf("unmuted volume = %v, want 0.5", p.volume)
	}

	s.Play()
	s.Play()
	if p.plays != 2 {
		t.Errorf("plays = %d, want 2", p.plays)
	}
}

func TestSoundRegisteredWhileMuted(t *testing.T) {
	g := NewGame()
	g.Mute()
	p := &fakePlayer{volume: -1}
	s := g.Sound(p, 1)
	if !s.Muted() || p.volume != 0 {
		t.Errorf("muted = %v, volume = %v, want true, 0", s.Muted(), p.volume)
	}
	if len(g.Sounds()) != 1 {
		t.Errorf("len(Sounds) = %d, want 1", len(g.Sounds()))
	}
}
