package rowan

// syntheticEvent is a single injected input event: either a click or a key.
type syntheticEvent struct {
	isKey bool
	click PointerEvent
	key   Key
}

// InjectClick queues a synthetic click at the given screen coordinates (left
// button). Injected events are consumed one per frame by DrainInjected, so a
// surface implementation delivers them exactly like real input.
func (d *Dispatcher) InjectClick(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticEvent{
		click: PointerEvent{X: x, Y: y, Button: MouseButtonLeft},
	})
}

// InjectKey queues a synthetic key press.
func (d *Dispatcher) InjectKey(k Key) {
	d.injectQueue = append(d.injectQueue, syntheticEvent{isKey: true, key: k})
}

// InjectedPending returns the number of queued synthetic events not yet
// delivered.
func (d *Dispatcher) InjectedPending() int {
	return len(d.injectQueue)
}

// DrainInjected pops one synthetic event from the queue and dispatches it.
// Returns true if an event was consumed (surface implementations skip real
// hardware input for that frame).
func (d *Dispatcher) DrainInjected() bool {
	if len(d.injectQueue) == 0 {
		return false
	}
	evt := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]

	if evt.isKey {
		d.DispatchKey(evt.key)
	} else {
		d.DispatchClick(evt.click)
	}
	return true
}
