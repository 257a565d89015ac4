package rowan

import (
	"testing"
	"time"
)

func TestClockDrivesWaitToCompletion(t *testing.T) {
	o := NewObject("cube", "cube")
	acc := newMapAccessor(o)
	sink := &recorderSink{}

	g := NewBehaviorGraph()
	g.Append(TriggerStart, ActionWait, map[string]any{"seconds": 0.05})
	g.Append(TriggerStart, ActionVisible, map[string]any{"visible": false})

	rt := NewRuntime(acc, &Dispatcher{})
	rt.SetEventSink(sink)
	if err := rt.Start([]BehaviorObject{{ID: "cube", Graph: g}}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	clk := NewClock(rt)
	clk.Run()

	// The wait is wall-clock time; give it a generous margin, then join the
	// tick goroutine before inspecting state it wrote.
	time.Sleep(500 * time.Millisecond)
	clk.Stop()

	if o.Visible() {
		t.Error("instance did not complete under the clock")
	}
	if sink.count(EventInstanceCompleted) != 1 {
		t.Errorf("completed events = %d, want 1", sink.count(EventInstanceCompleted))
	}
}

func TestClockIntervalMatchesTickRate(t *testing.T) {
	clk := NewClock(NewRuntime(newMapAccessor(), &Dispatcher{}))
	if clk.interval != time.Second/60 {
		t.Errorf("interval = %v, want %v", clk.interval, time.Second/60)
	}
}

func TestClockStopIdempotent(t *testing.T) {
	rt := NewRuntime(newMapAccessor(), &Dispatcher{})
	if err := rt.Start(nil); err != nil {
		t.Fatalf("Start: %v", err)
	}

	clk := NewClock(rt)
	clk.Run()
	clk.Run() // second Run: no-op

	clk.Stop()
	if rt.Running() {
		t.Error("runtime still running after clock stop")
	}
	clk.Stop() // second Stop: no-op
}

func TestClockStopWithoutRun(t *testing.T) {
	rt := NewRuntime(newMapAccessor(), &Dispatcher{})
	clk := NewClock(rt)
	clk.Stop() // never ran: still stops the runtime safely
}

func TestClockExitsWhenRuntimeStops(t *testing.T) {
	rt := NewRuntime(newMapAccessor(), &Dispatcher{})
	if err := rt.Start(nil); err != nil {
		t.Fatalf("Start: %v", err)
	}

	clk := NewClock(rt)
	clk.Run()

	// Cancelling the session out from under the clock (the flag is the one
	// cross-goroutine signal) makes the tick loop exit on its own.
	rt.sess.stop()

	deadline := time.After(2 * time.Second)
	select {
	case <-clk.stopped:
	case <-deadline:
		t.Fatal("tick loop did not exit after the runtime stopped")
	}
	clk.Stop()
}
