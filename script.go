package gamesetup

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Button string  `json:"button,omitempty"`
	Key    string  `json:"key,omitempty"`
	Frames int     `json:"frames,omitempty"`

	key Key
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON input script as an EventSource. Each Poll
// executes script steps until one of them queues input or waits, then
// delivers one frame of the queued input.
//
// Supported actions: click, press, release, move, key (tap), keydown,
// keyup, wait and quit. Keys use ebiten key names ("space", "m", "escape").
type ScriptRunner struct {
	*InjectSource
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadInputScript parses a JSON input script.
func LoadInputScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: %w", ErrNoSteps)
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		if _, err := parseButton(st.Button); err != nil {
			return nil, fmt.Errorf("parse input script: step %d: %w", i, err)
		}
		switch st.Action {
		case "key", "keydown", "keyup":
			if err := st.key.UnmarshalText([]byte(st.Key)); err != nil {
				return nil, fmt.Errorf("parse input script: step %d: %w", i, err)
			}
		case "click", "press", "release", "move", "wait", "quit":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{InjectSource: NewInjectSource(), steps: script.Steps}, nil
}

func parseButton(name string) (MouseButton, error) {
	switch name {
	case "", "left":
		return MouseButtonLeft, nil
	case "middle":
		return MouseButtonMiddle, nil
	case "right":
		return MouseButtonRight, nil
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

// Done reports whether every step has run and all queued input was delivered.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Poll advances the script by one frame.
func (r *ScriptRunner) Poll() []Event {
	r.step()
	evs := r.InjectSource.Poll()
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.Pending() == 0 {
		r.done = true
	}
	return evs
}

func (r *ScriptRunner) step() {
	if r.done || r.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	for r.cursor < len(r.steps) && r.Pending() == 0 {
		st := r.steps[r.cursor]
		r.cursor++
		button, _ := parseButton(st.Button)

		switch st.Action {
		case "click":
			r.InjectPress(st.X, st.Y, button)
			r.InjectRelease(st.X, st.Y, button)
		case "press":
			r.InjectPress(st.X, st.Y, button)
		case "release":
			r.InjectRelease(st.X, st.Y, button)
		case "move":
			r.InjectMove(st.X, st.Y)
		case "key":
			r.InjectKeyTap(st.key)
		case "keydown":
			r.InjectKeyDown(st.key)
		case "keyup":
			r.InjectKeyUp(st.key)
		case "quit":
			r.InjectQuit()
		case "wait":
			if st.Frames > 0 {
				r.waitCount = st.Frames - 1 // this frame counts as one
				return
			}
		}
	}
}
