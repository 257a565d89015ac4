package rowan

// EventType identifies a behavior lifecycle event kind.
type EventType uint8

const (
	// EventInstanceLaunched fires when a procedure instance starts executing.
	EventInstanceLaunched EventType = iota
	// EventInstanceCompleted fires when an instance finishes its last op.
	EventInstanceCompleted
	// EventInstanceAborted fires when an instance aborts, either from a
	// recovered fault or from cooperative cancellation at stop.
	EventInstanceAborted
	// EventClickDispatched fires when a click resolves to an object,
	// whether or not that object has a click procedure.
	EventClickDispatched
)

// BehaviorEvent carries behavior lifecycle data for the optional event sink.
type BehaviorEvent struct {
	Type       EventType
	ObjectID   string
	Trigger    Trigger
	InstanceID uint32
	// Click fields (valid for EventClickDispatched)
	X, Y   float64
	Button MouseButton
}

// EventSink is the interface for optional ECS or telemetry integration.
// When set on a Runtime, behavior lifecycle events are forwarded to it.
// See the ecs subpackage for a Donburi-backed sink.
type EventSink interface {
	EmitEvent(event BehaviorEvent)
}
