package ecs

import (
	"testing"

	"github.com/phanxgames/rowan"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []rowan.BehaviorEvent
	BehaviorEventType.Subscribe(world, func(w donburi.World, e rowan.BehaviorEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(rowan.BehaviorEvent{
		Type:       rowan.EventInstanceLaunched,
		ObjectID:   "cube-1",
		Trigger:    rowan.TriggerStart,
		InstanceID: 7,
	})

	sink.EmitEvent(rowan.BehaviorEvent{
		Type:     rowan.EventClickDispatched,
		ObjectID: "cube-1",
		Trigger:  rowan.TriggerClick,
		X:        320,
		Y:        240,
	})

	// Events are queued — process them.
	BehaviorEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != rowan.EventInstanceLaunched || e0.ObjectID != "cube-1" {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.InstanceID != 7 {
		t.Errorf("event 0 instance: %d", e0.InstanceID)
	}

	e1 := received[1]
	if e1.Type != rowan.EventClickDispatched || e1.X != 320 || e1.Y != 240 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink rowan.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	BehaviorEventType.Subscribe(world, func(w donburi.World, e rowan.BehaviorEvent) {
		count1++
	})
	BehaviorEventType.Subscribe(world, func(w donburi.World, e rowan.BehaviorEvent) {
		count2++
	})

	sink.EmitEvent(rowan.BehaviorEvent{Type: rowan.EventInstanceCompleted})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
