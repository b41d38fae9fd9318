package gamesetup

import (
	"fmt"
	"time"
)

// Factory builds a fresh game. Drivers call it once at startup and again
// whenever a game exits through Restart.
type Factory func() (*Game, error)

// LoopConfig controls Loop pacing.
type LoopConfig struct {
	// FrameInterval is the minimum time between iterations. Zero runs
	// iterations back to back.
	FrameInterval time.Duration
	// MaxFrames stops the loop after that many iterations across all
	// restarts. Zero means no limit.
	MaxFrames uint64
}

// session tracks the current game produced by a Factory and swaps in a new
// one when the current game restarts.
type session struct {
	factory  Factory
	game     *Game
	restarts int
}

func newSession(factory Factory) (*session, error) {
	s := &session{factory: factory}
	if err := s.create(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) create() error {
	g, err := s.factory()
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	s.game = g
	return nil
}

// advance inspects the current game after an iteration. It reports done
// when the game closed without restarting, and builds the replacement game
// when it restarted.
func (s *session) advance() (done bool, err error) {
	if s.game.Running() {
		return false, nil
	}
	if !s.game.Restarting() {
		s.game.debugStats()
		return true, nil
	}
	old := s.game
	if err := s.create(); err != nil {
		return true, err
	}
	s.restarts++
	old.debugf("restart %d: fresh game created", s.restarts)
	return false, nil
}

// Loop runs games from factory against src and surf until a game closes
// without restarting.
func Loop(factory Factory, src EventSource, surf Surface, cfg LoopConfig) error {
	s, err := newSession(factory)
	if err != nil {
		return err
	}
	p, _ := surf.(Presenter)

	var tick <-chan time.Time
	if cfg.FrameInterval > 0 {
		ticker := time.NewTicker(cfg.FrameInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	var frames uint64
	for {
		s.game.Step(src, surf)
		frames++
		if p != nil {
			if err := p.Present(); err != nil {
				return fmt.Errorf("present frame %d: %w", frames, err)
			}
		}
		done, err := s.advance()
		if err != nil || done {
			return err
		}
		if cfg.MaxFrames > 0 && frames >= cfg.MaxFrames {
			s.game.debugStats()
			return nil
		}
		if tick != nil {
			<-tick
		}
	}
}
