package gamesetup

// Player is a playable audio sample with volume control. EbitenPlayer and
// synth.SpeakerPlayer implement it.
type Player interface {
	Play()
	SetVolume(volume float64)
}

// Sound is a Player registered with a Game so that it follows the game's
// mute state. Its volume is remembered while muted.
type Sound struct {
	player Player
	volume float64
	muted  bool
}

// Sound registers player at volume. If the game is muted the sound starts
// muted.
func (g *Game) Sound(player Player, volume float64) *Sound {
	s := &Sound{player: player}
	s.volume = volume
	s.Unmute()
	if g.muted {
		s.Mute()
	}
	g.sounds = append(g.sounds, s)
	return s
}

// Sounds returns every registered sound.
func (g *Game) Sounds() []*Sound { return g.sounds }

// Mute silences every registered sound.
func (g *Game) Mute() {
	for _, s := range g.sounds {
		s.Mute()
	}
	g.muted = true
}

// Unmute restores every registered sound to its own volume.
func (g *Game) Unmute() {
	for _, s := range g.sounds {
		s.Unmute()
	}
	g.muted = false
}

// ToggleMute flips the mute state.
func (g *Game) ToggleMute() {
	if g.muted {
		g.Unmute()
		return
	}
	g.Mute()
}

// IsMuted reports whether the game is muted.
func (g *Game) IsMuted() bool { return g.muted }

// Play starts the sample from the beginning.
func (s *Sound) Play() { s.player.Play() }

// Volume returns the volume the sound plays at when unmuted.
func (s *Sound) Volume() float64 { return s.volume }

// SetVolume changes the unmuted volume. It takes effect immediately unless
// the sound is muted.
func (s *Sound) SetVolume(volume float64) {
	s.volume = volume
	if !s.muted {
		s.player.SetVolume(volume)
	}
}

// Mute silences the sound.
func (s *Sound) Mute() {
	s.muted = true
	s.player.SetVolume(0)
}

// Unmute restores the sound's volume.
func (s *Sound) Unmute() {
	s.muted = false
	s.player.SetVolume(s.volume)
}

// Muted reports whether the sound is silenced.
func (s *Sound) Muted() bool { return s.muted }
