package rowan

import (
	"strings"
	"testing"
)

func TestLoadScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"malformed json", `{steps:}`, "parse interaction script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`, `unknown action "teleport"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tc.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadScriptValid(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "click", "x": 10, "y": 20},
		{"action": "wait", "seconds": 0.5},
		{"action": "stop"}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if r.Done() {
		t.Error("fresh runner reports done")
	}
}

func TestParseKey(t *testing.T) {
	if parseKey("space") != KeySpace || parseKey("enter") != KeyEnter {
		t.Error("named keys misparsed")
	}
	if parseKey("escape") != KeyEscape || parseKey("bogus") != KeyEscape {
		t.Error("escape fallback misparsed")
	}
}

func TestScriptRunnerWaitSpansFrames(t *testing.T) {
	d := &Dispatcher{}
	keys := 0
	d.OnKey(func(Key) { keys++ })

	r, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "seconds": 1.0},
		{"action": "key", "key": "space"}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	// Frame 1 starts the wait; frames 2-4 count it down; the key injects on
	// the frame the wait elapses.
	for i := 0; i < 4; i++ {
		r.Step(d, 0.25)
		d.DrainInjected()
		if keys != 0 {
			t.Fatalf("key injected early, frame %d", i+1)
		}
	}
	r.Step(d, 0.25)
	d.DrainInjected()
	if keys != 1 {
		t.Fatalf("key not injected after wait, fired=%d", keys)
	}

	r.Step(d, 0.25)
	if !r.Done() {
		t.Error("runner not done after last step delivered")
	}
}

func TestScriptDrivesRuntimeEndToEnd(t *testing.T) {
	o := NewObject("cube", "cube")
	acc := newMapAccessor(o)
	acc.hit = func(ev PointerEvent) (string, bool) {
		if ev.X == 400 && ev.Y == 300 {
			return "cube", true
		}
		return "", false
	}
	sink := &recorderSink{}

	g := NewBehaviorGraph()
	g.Append(TriggerClick, ActionVisible, map[string]any{"visible": false})

	d := &Dispatcher{}
	rt := NewRuntime(acc, d)
	rt.SetEventSink(sink)
	if err := rt.Start([]BehaviorObject{{ID: "cube", Graph: g}}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	r, err := LoadScript([]byte(`{"steps": [
		{"action": "click", "x": 400, "y": 300},
		{"action": "wait", "seconds": 0.25},
		{"action": "stop"}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	// Drive frames the way a surface host would: script, injection drain,
	// runtime tick.
	for i := 0; i < 20 && !r.Done(); i++ {
		r.Step(d, 0.25)
		d.DrainInjected()
		rt.Update(0.25)
	}

	if !r.Done() {
		t.Fatal("script never finished")
	}
	if o.Visible() {
		t.Error("scripted click did not run the click procedure")
	}
	if rt.Running() {
		t.Error("scripted stop did not stop the runtime")
	}
	if sink.count(EventClickDispatched) != 1 {
		t.Errorf("click events = %d, want 1", sink.count(EventClickDispatched))
	}
}
