package termio

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/gamesetup"
)

// Config configures Run.
type Config struct {
	// Size is the logical surface size games draw on.
	Size gamesetup.Vec2
	// FrameInterval paces the loop. Defaults to 1/60 s.
	FrameInterval time.Duration
}

// Run takes over the terminal and runs games from factory until one closes
// without restarting.
func Run(factory gamesetup.Factory, cfg Config) error {
	ts, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("termio: %w", err)
	}
	if err := ts.Init(); err != nil {
		return fmt.Errorf("termio: %w", err)
	}
	defer ts.Fini()
	return RunScreen(ts, factory, cfg)
}

// RunScreen is Run on an already initialized screen. The caller keeps
// ownership of ts.
func RunScreen(ts tcell.Screen, factory gamesetup.Factory, cfg Config) error {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = time.Second / 60
	}
	screen := NewScreen(ts, cfg.Size)
	return gamesetup.Loop(factory, NewSource(screen), screen, gamesetup.LoopConfig{FrameInterval: cfg.FrameInterval})
}
