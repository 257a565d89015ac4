// Package ecs provides ECS adapters for rowan's behavior event system.
//
// The primary adapter is [NewDonburiSink], which bridges rowan behavior
// lifecycle events (instance launched, completed, aborted, click dispatched)
// into a [Donburi] world as typed events. Subscribe to [BehaviorEventType]
// in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	runtime.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
