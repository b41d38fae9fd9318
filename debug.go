package gamesetup

import (
	"fmt"
	"io"
	"os"
)

// logOutput receives debug lines. Tests swap it out.
var logOutput io.Writer = os.Stderr

// SetDebugMode enables or disables debug mode. When enabled, widget
// registration, timer firings, restarts and per-frame stats are logged to
// stderr.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// DebugMode reports whether debug logging is on.
func (g *Game) DebugMode() bool { return g.debug }

func (g *Game) debugf(format string, args ...any) {
	if !g.debug {
		return
	}
	logf(format, args...)
}

// logf prints one prefixed line to the log output.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[gamesetup] "+format+"\n", args...)
}

// frameStats summarises one headless run for the debug log.
type frameStats struct {
	frames   uint64
	widgets  int
	pending  int
	bindings int
}

func (g *Game) stats() frameStats {
	return frameStats{
		frames:   g.frame,
		widgets:  g.live,
		pending:  g.timers.len(),
		bindings: len(g.bindings),
	}
}

func (g *Game) debugStats() {
	if !g.debug {
		return
	}
	st := g.stats()
	logf("frames: %d | widgets: %d | pending timers: %d | global bindings: %d",
		st.frames, st.widgets, st.pending, st.bindings)
}
