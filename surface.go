package rowan

// MouseButton identifies which mouse button produced a pointer event.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Key identifies a keyboard key in key events. Only the keys the runtime
// reacts to are enumerated.
type Key uint8

const (
	KeyEscape Key = iota
	KeySpace
	KeyEnter
)

// PointerEvent carries the screen-space coordinates and button of one click.
type PointerEvent struct {
	X, Y   float64
	Button MouseButton
}

// Surface is the rendering surface the runtime binds its input listeners
// against. EbitenSurface is the windowed implementation; tests and headless
// hosts can embed Dispatcher to satisfy it.
type Surface interface {
	OnClick(fn func(PointerEvent)) Handle
	OnKey(fn func(Key)) Handle
}

// --- Handler registry ---

type surfaceEvent uint8

const (
	surfaceEventClick surfaceEvent = iota
	surfaceEventKey
)

type clickBinding struct {
	id uint32
	fn func(PointerEvent)
}

type keyBinding struct {
	id uint32
	fn func(Key)
}

// Dispatcher is an embeddable Surface implementation: it stores click and key
// bindings and fans events out to them. Surface implementations feed it from
// whatever input source they poll (see EbitenSurface); tests drive it
// directly with DispatchClick and DispatchKey.
type Dispatcher struct {
	clicks      []clickBinding
	keys        []keyBinding
	nextID      uint32
	injectQueue []syntheticEvent
}

// OnClick registers a callback for click events.
func (d *Dispatcher) OnClick(fn func(PointerEvent)) Handle {
	d.nextID++
	d.clicks = append(d.clicks, clickBinding{id: d.nextID, fn: fn})
	return Handle{id: d.nextID, disp: d, event: surfaceEventClick}
}

// OnKey registers a callback for key events.
func (d *Dispatcher) OnKey(fn func(Key)) Handle {
	d.nextID++
	d.keys = append(d.keys, keyBinding{id: d.nextID, fn: fn})
	return Handle{id: d.nextID, disp: d, event: surfaceEventKey}
}

// DispatchClick fires every bound click callback with the event.
// Iterates a snapshot: a callback may remove bindings mid-dispatch
// (the runtime's Escape handler stops the session, which unbinds).
func (d *Dispatcher) DispatchClick(ev PointerEvent) {
	for _, b := range append([]clickBinding(nil), d.clicks...) {
		b.fn(ev)
	}
}

// DispatchKey fires every bound key callback with the key.
// Iterates a snapshot for the same reason as DispatchClick.
func (d *Dispatcher) DispatchKey(k Key) {
	for _, b := range append([]keyBinding(nil), d.keys...) {
		b.fn(k)
	}
}

// Handle allows removing a registered surface callback.
type Handle struct {
	id    uint32
	disp  *Dispatcher
	event surfaceEvent
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h Handle) Remove() {
	if h.disp == nil {
		return
	}
	switch h.event {
	case surfaceEventClick:
		h.disp.clicks = removeClickBinding(h.disp.clicks, h.id)
	case surfaceEventKey:
		h.disp.keys = removeKeyBinding(h.disp.keys, h.id)
	}
}

func removeClickBinding(s []clickBinding, id uint32) []clickBinding {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = clickBinding{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeKeyBinding(s []keyBinding, id uint32) []keyBinding {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = keyBinding{}
			return s[:len(s)-1]
		}
	}
	return s
}
