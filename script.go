package rowan

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an interaction script.
type scriptStep struct {
	Action  string  `json:"action"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Seconds float64 `json:"seconds,omitempty"`
	Key     string  `json:"key,omitempty"`
}

// interactionScript is the top-level JSON structure for a script.
type interactionScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected input events across frames for automated
// behavior testing: clicks at screen coordinates, real-time waits, key
// presses, and a stop step. Call Step once per frame with the frame's dt and
// the surface (or any Dispatcher) to inject into.
type ScriptRunner struct {
	steps    []scriptStep
	cursor   int
	waitLeft float64
	done     bool
}

// Injector is the subset of Dispatcher the script runner drives.
type Injector interface {
	InjectClick(x, y float64)
	InjectKey(k Key)
	InjectedPending() int
}

// LoadScript parses a JSON interaction script.
//
// Step actions: "click" (x, y), "wait" (seconds), "key" (key: "escape",
// "space", "enter"), and "stop" (shorthand for an escape key press).
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script interactionScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse interaction script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse interaction script: no steps")
	}
	for _, st := range script.Steps {
		switch st.Action {
		case "click", "wait", "key", "stop":
		default:
			return nil, fmt.Errorf("parse interaction script: unknown action %q", st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame. Pending injections drain before the
// next step executes, so a click lands before a following wait starts
// counting.
func (r *ScriptRunner) Step(in Injector, dt float64) {
	if r.done {
		return
	}
	if in.InjectedPending() > 0 {
		return
	}
	if r.waitLeft > 0 {
		r.waitLeft -= dt
		if r.waitLeft > 0 {
			return
		}
		r.waitLeft = 0
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		in.InjectClick(st.X, st.Y)
	case "wait":
		r.waitLeft = st.Seconds
	case "key":
		in.InjectKey(parseKey(st.Key))
	case "stop":
		in.InjectKey(KeyEscape)
	}

	if r.cursor >= len(r.steps) && r.waitLeft == 0 && in.InjectedPending() == 0 {
		r.done = true
	}
}

// parseKey maps script key names to Key values. Unknown names map to Escape.
func parseKey(name string) Key {
	switch name {
	case "space":
		return KeySpace
	case "enter":
		return KeyEnter
	}
	return KeyEscape
}
