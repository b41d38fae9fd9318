package gamesetup

import (
	"bytes"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := logOutput
	logOutput = &buf
	t.Cleanup(func() { logOutput = old })
	return &buf
}

func TestDebugModeLogsRegistrationAndTimers(t *testing.T) {
	buf := captureLog(t)
	src := NewManualTime()
	g := NewGame()
	g.SetTimeSource(src)
	g.SetDebugMode(true)

	NewWidget(g, Rect{})
	g.After(1, func() {})
	src.AdvanceSeconds(1)
	g.Step(NewInjectSource(), NewRecordingSurface(1, 1))

	out := buf.String()
	for _, want := range []string{"[gamesetup] widget 0 registered", "timer(s) fired"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestDebugModeOffIsSilent(t *testing.T) {
	buf := captureLog(t)
	g := NewGame()
	NewWidget(g, Rect{})
	g.debugStats()
	if buf.Len() != 0 {
		t.Errorf("debug off wrote %q", buf.String())
	}
}

func TestDebugStatsOnClose(t *testing.T) {
	buf := captureLog(t)
	in := NewInjectSource()
	in.InjectQuit()
	factory := func() (*Game, error) {
		g := NewGame()
		g.SetDebugMode(true)
		g.Bind(EventQuit, Do(func() {}), 0)
		return g, nil
	}
	if err := Loop(factory, in, NewRecordingSurface(1, 1), LoopConfig{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "frames: 1 | widgets: 0 | pending timers: 0 | global bindings: 1") {
		t.Errorf("unexpected stats line:\n%s", buf.String())
	}
}
