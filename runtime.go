package rowan

import (
	"fmt"
	"sync/atomic"
)

// session is the cancellation context for one simulation run. A fresh session
// is created per Start call and shared by every instance spawned during that
// run, so independent runtimes (or back-to-back runs of one runtime) can
// never cancel each other's instances. The flag is atomic so a Stop issued
// from outside the tick goroutine still cancels cooperatively.
type session struct {
	running atomic.Bool
}

func newSession() *session {
	s := &session{}
	s.running.Store(true)
	return s
}

func (s *session) active() bool { return s.running.Load() }
func (s *session) stop()        { s.running.Store(false) }

// BehaviorObject pairs a scene object ID with its behavior graph for Start.
type BehaviorObject struct {
	ID    string
	Graph *BehaviorGraph
}

// procedures is one registry entry: the compiled start and click procedures
// for an object. Hover is reserved and never dispatched, so a compiled hover
// procedure is dropped at registration.
type procedures struct {
	start *Procedure
	click *Procedure
}

// Runtime owns all compiled procedures for one simulation session: it
// launches start procedures, resolves clicks to objects through the accessor,
// spawns click instances, and advances every live instance one cooperative
// step per tick.
//
// Scheduling is single-threaded and cooperative: exactly one op's synchronous
// portion runs at a time, instances interleave only at suspension points, and
// there is no ordering guarantee across instances. All Runtime methods must
// be called from the goroutine that drives Update (Stop is additionally safe
// from other goroutines through Clock.Stop).
type Runtime struct {
	accessor ObjectAccessor
	surface  Surface
	sink     EventSink
	debug    bool

	sess         *session
	registry     map[string]procedures
	instances    []*Instance
	clickHandle  Handle
	keyHandle    Handle
	nextInstance uint32
	stats        debugStats
}

// NewRuntime creates a runtime bound to the scene accessor and input surface.
func NewRuntime(accessor ObjectAccessor, surface Surface) *Runtime {
	return &Runtime{accessor: accessor, surface: surface}
}

// SetEventSink sets the optional lifecycle event bridge.
func (r *Runtime) SetEventSink(sink EventSink) {
	r.sink = sink
}

// Running reports whether a session is active.
func (r *Runtime) Running() bool {
	return r.sess != nil && r.sess.active()
}

// LiveInstances returns the number of non-terminal procedure instances.
func (r *Runtime) LiveInstances() int {
	return len(r.instances)
}

// Start compiles every object's behavior graph, registers the resulting
// procedures, binds one click and one key listener on the surface, and
// launches every start procedure as an independent concurrent instance.
//
// Start returns once each launched instance has either completed or begun its
// first suspension; long-running procedures continue across subsequent
// Update ticks. A fault inside one instance is confined to that instance —
// the others still launch and run.
//
// An absent surface is an initialization fault: Start returns the error and
// launches nothing.
func (r *Runtime) Start(objects []BehaviorObject) error {
	if r.Running() {
		return fmt.Errorf("rowan: runtime already started")
	}
	if r.surface == nil {
		return fmt.Errorf("rowan: no rendering surface to bind input listeners")
	}

	r.sess = newSession()
	r.registry = make(map[string]procedures, len(objects))
	r.stats = debugStats{}

	// Snapshot: graphs are compiled once here; later edits don't affect the
	// running session.
	for _, obj := range objects {
		compiled := Compile(obj.ID, obj.Graph)
		entry := procedures{start: compiled[TriggerStart], click: compiled[TriggerClick]}
		if entry.start == nil && entry.click == nil {
			continue
		}
		r.registry[obj.ID] = entry
	}

	r.clickHandle = r.surface.OnClick(r.dispatchClick)
	r.keyHandle = r.surface.OnKey(r.dispatchKey)

	for _, entry := range r.registry {
		if entry.start != nil {
			r.launch(entry.start)
		}
	}
	return nil
}

// Stop ends the session: the shared flag is cleared synchronously, listeners
// are detached, every suspended instance aborts at its next resume boundary
// (performed immediately here — no instance is mid-step between ticks), and
// the registry is discarded. Idempotent and safe to call when not running.
func (r *Runtime) Stop() {
	if r.sess == nil {
		return
	}
	r.sess.stop()
	r.clickHandle.Remove()
	r.keyHandle.Remove()

	// Each instance observes the cleared flag and aborts without writing.
	for _, in := range r.instances {
		in.resume(0)
		r.finish(in)
	}
	r.instances = nil
	r.registry = nil
}

// Update advances the simulation by one tick of dt real seconds: every live
// instance is resumed once, and instances that reach a terminal state are
// dropped after their lifecycle event fires.
func (r *Runtime) Update(dt float64) {
	if !r.Running() {
		return
	}
	live := r.instances[:0]
	for _, in := range r.instances {
		in.resume(dt)
		if in.terminal() {
			r.finish(in)
		} else {
			live = append(live, in)
		}
	}
	for i := len(live); i < len(r.instances); i++ {
		r.instances[i] = nil
	}
	r.instances = live

	if r.debug {
		r.debugLog()
	}
}

// launch spawns a new independent instance of proc and runs it synchronously
// to completion or its first suspension point.
func (r *Runtime) launch(proc *Procedure) {
	r.nextInstance++
	in := &Instance{
		id:       r.nextInstance,
		proc:     proc,
		session:  r.sess,
		accessor: r.accessor,
	}
	r.stats.launched++
	r.emit(BehaviorEvent{
		Type:       EventInstanceLaunched,
		ObjectID:   proc.ObjectID,
		Trigger:    proc.Trigger,
		InstanceID: in.id,
	})

	in.resume(0)
	if in.terminal() {
		r.finish(in)
		return
	}
	r.instances = append(r.instances, in)
}

// dispatchClick resolves a click to an object via ray intersection and, if
// that object has a click procedure, launches a new independent instance of
// it. Rapid repeated clicks launch multiple concurrent instances of the same
// procedure — no deduplication, queuing, or cancellation of earlier ones.
func (r *Runtime) dispatchClick(ev PointerEvent) {
	if !r.Running() {
		return
	}
	id, ok := r.accessor.RayIntersect(ev)
	if !ok {
		return
	}
	r.stats.clicks++
	r.emit(BehaviorEvent{
		Type:     EventClickDispatched,
		ObjectID: id,
		Trigger:  TriggerClick,
		X:        ev.X,
		Y:        ev.Y,
		Button:   ev.Button,
	})
	entry, ok := r.registry[id]
	if !ok || entry.click == nil {
		return
	}
	r.launch(entry.click)
}

// dispatchKey stops the simulation on Escape.
func (r *Runtime) dispatchKey(k Key) {
	if k == KeyEscape {
		r.Stop()
	}
}

// finish emits the terminal lifecycle event for an instance.
func (r *Runtime) finish(in *Instance) {
	typ := EventInstanceCompleted
	if in.state == StateAborted {
		typ = EventInstanceAborted
		r.stats.aborted++
	} else {
		r.stats.completed++
	}
	r.emit(BehaviorEvent{
		Type:       typ,
		ObjectID:   in.proc.ObjectID,
		Trigger:    in.proc.Trigger,
		InstanceID: in.id,
	})
}

func (r *Runtime) emit(ev BehaviorEvent) {
	if r.sink != nil {
		r.sink.EmitEvent(ev)
	}
}
