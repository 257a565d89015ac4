package rowan

import (
	"fmt"
	"os"
)

// InstanceState is the lifecycle state of one procedure instance.
//
// Instances move Pending → Running → {Suspended ⇄ Running} → Completed, or to
// Aborted from any suspension the first time a resume observes that the
// session has stopped (or when a fault is recovered at the instance
// boundary). Completed and Aborted are terminal.
type InstanceState uint8

const (
	StatePending InstanceState = iota
	StateRunning
	StateSuspended
	StateCompleted
	StateAborted
)

// String returns the lowercase state name.
func (s InstanceState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateSuspended:
		return "suspended"
	case StateCompleted:
		return "completed"
	case StateAborted:
		return "aborted"
	}
	return "unknown"
}

// Instance is one running execution of a Procedure. Multiple instances of the
// same procedure may coexist; each owns its own program counter and
// in-flight op state, and none can affect another. All property mutations
// flow through the accessor's ObjectNode.
type Instance struct {
	id       uint32
	proc     *Procedure
	session  *session
	accessor ObjectAccessor

	state InstanceState
	pc    int

	// In-flight suspended op, at most one of:
	anim     *opAnim // interpolating move/rotate/moveTo
	waiting  bool    // wait op in progress
	waitLeft float64 // remaining wait, real seconds
}

// ID returns the instance's runtime-unique identifier.
func (in *Instance) ID() uint32 { return in.id }

// ObjectID returns the object the instance's procedure is bound to.
func (in *Instance) ObjectID() string { return in.proc.ObjectID }

// Trigger returns the trigger kind the instance's procedure was compiled from.
func (in *Instance) Trigger() Trigger { return in.proc.Trigger }

// State returns the instance's current lifecycle state.
func (in *Instance) State() InstanceState { return in.state }

func (in *Instance) terminal() bool {
	return in.state == StateCompleted || in.state == StateAborted
}

// node re-resolves the target object every step so that an object removed
// mid-procedure degrades the remaining primitives to silent no-ops.
func (in *Instance) node() ObjectNode {
	return in.accessor.ObjectNode(in.proc.ObjectID)
}

// resume advances the instance by exactly one resume boundary: it first
// checks the session flag (cooperative cancellation), then steps the
// in-flight op once if there is one, then runs ops until the next suspension
// point or the end of the procedure. A panic anywhere inside is recovered
// here, logged, and aborts only this instance.
func (in *Instance) resume(dt float64) {
	if in.terminal() {
		return
	}
	if !in.session.active() {
		in.state = StateAborted
		return
	}
	in.state = StateRunning
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "[rowan] instance %d (%s/%s) fault: %v\n",
				in.id, in.proc.ObjectID, in.proc.Trigger, r)
			in.state = StateAborted
		}
	}()

	// One step of the op that suspended us.
	if in.waiting {
		in.waitLeft -= dt
		if in.waitLeft > 0 {
			in.state = StateSuspended
			return
		}
		in.waiting = false
		in.pc++
	} else if in.anim != nil {
		if !in.anim.step(in.node()) {
			in.state = StateSuspended
			return
		}
		in.anim = nil
		in.pc++
	}

	// Run forward until the next suspension point.
	for in.pc < len(in.proc.Ops) {
		if in.begin(in.proc.Ops[in.pc]) {
			in.state = StateSuspended
			return
		}
		in.pc++
	}
	in.state = StateCompleted
}

// begin starts executing one op. Instantaneous ops apply immediately and
// return false; suspension-bearing ops set up their in-flight state and
// return true. Interpolating ops whose target object is absent resolve
// immediately as silent no-ops.
func (in *Instance) begin(op Op) bool {
	switch op.Kind {
	case OpWait:
		if op.Seconds <= 0 {
			return false
		}
		in.waiting = true
		in.waitLeft = op.Seconds
		return true
	case OpMove, OpRotate:
		node := in.node()
		if node == nil {
			return false
		}
		in.anim = newRelativeAnim(op, node)
		return true
	case OpMoveTo:
		node := in.node()
		if node == nil {
			return false
		}
		if op.Seconds <= 0 {
			applyInstant(op, node)
			return false
		}
		in.anim = newMoveToAnim(op, node)
		return true
	default:
		applyInstant(op, in.node())
		return false
	}
}
