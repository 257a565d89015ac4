package ecs

import (
	"github.com/phanxgames/rowan"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// BehaviorEventType is the Donburi event type for rowan behavior events.
// Subscribe to this in your ECS systems to receive instance lifecycle and
// click dispatch events.
var BehaviorEventType = events.NewEventType[rowan.BehaviorEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Behavior
// events are published to BehaviorEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) rowan.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event rowan.BehaviorEvent) {
	BehaviorEventType.Publish(s.world, event)
}
