package rowan

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// tickSeconds is the nominal duration of one runtime tick (~16ms).
	// Interpolation primitives advance one step per tick.
	tickSeconds = 1.0 / 60

	// relativeSteps is the fixed step count for MOVE and ROTATE interpolation.
	relativeSteps = 30

	// moveToStepsPerSecond converts an OpMoveTo duration into a step count.
	moveToStepsPerSecond = 60
)

// opAnim is the in-flight state of one interpolating op. It animates up to 3
// float64 components of the target object's position or rotation, one step
// per runtime tick, writing through the ObjectNode after every step. The
// runtime checks its cancellation flag before each step, so a cancelled
// animation leaves the property at its last-written intermediate value.
type opAnim struct {
	kind      OpKind
	axis      Axis // relative move/rotate
	tweens    [3]*gween.Tween
	count     int
	stepsLeft int
	stepDur   float32
}

// newRelativeAnim starts an OpMove or OpRotate: the selected component is
// eased from its current value to current+amount over relativeSteps steps
// with ease-out-cubic easing.
func newRelativeAnim(op Op, node ObjectNode) *opAnim {
	var from float64
	if op.Kind == OpRotate {
		from = node.Rotation().Component(op.Axis)
	} else {
		from = node.Position().Component(op.Axis)
	}
	a := &opAnim{
		kind:      op.Kind,
		axis:      op.Axis,
		count:     1,
		stepsLeft: relativeSteps,
		stepDur:   float32(tickSeconds),
	}
	duration := float32(relativeSteps * tickSeconds)
	a.tweens[0] = gween.New(float32(from), float32(from+op.Amount), duration, ease.OutCubic)
	return a
}

// newMoveToAnim starts an OpMoveTo: all three position components move
// linearly to the target in lockstep, at moveToStepsPerSecond steps per
// second of duration. Callers handle Seconds <= 0 (instant apply) before
// constructing an animation.
func newMoveToAnim(op Op, node ObjectNode) *opAnim {
	from := node.Position()
	steps := int(math.Ceil(op.Seconds * moveToStepsPerSecond))
	if steps < 1 {
		steps = 1
	}
	duration := float32(op.Seconds)
	a := &opAnim{
		kind:      OpMoveTo,
		count:     3,
		stepsLeft: steps,
		stepDur:   duration / float32(steps),
	}
	a.tweens[0] = gween.New(float32(from.X), float32(op.Target.X), duration, ease.Linear)
	a.tweens[1] = gween.New(float32(from.Y), float32(op.Target.Y), duration, ease.Linear)
	a.tweens[2] = gween.New(float32(from.Z), float32(op.Target.Z), duration, ease.Linear)
	return a
}

// step advances the animation by one tick and writes the new values through
// node. Returns true when the final step has been applied. A nil node (object
// removed mid-animation) finishes the op as a silent no-op.
func (a *opAnim) step(node ObjectNode) bool {
	if node == nil {
		return true
	}
	a.stepsLeft--
	dt := a.stepDur
	if a.stepsLeft <= 0 {
		// float32 dt accumulation can land a hair short of the tween
		// duration; overshoot the final step so gween clamps to its exact
		// end value.
		dt = a.stepDur * 2
	}

	var vals [3]float64
	for i := 0; i < a.count; i++ {
		v, _ := a.tweens[i].Update(dt)
		vals[i] = float64(v)
	}

	switch a.kind {
	case OpRotate:
		r := node.Rotation()
		r.SetComponent(a.axis, vals[0])
		node.SetRotation(r)
	case OpMoveTo:
		node.SetPosition(Vec3{X: vals[0], Y: vals[1], Z: vals[2]})
	default: // OpMove
		p := node.Position()
		p.SetComponent(a.axis, vals[0])
		node.SetPosition(p)
	}
	return a.stepsLeft <= 0
}

// applyInstant executes an op that carries no suspension point: scale, color,
// and visibility writes, the no-op, and the degenerate instant form of
// moveTo. A nil node is a silent no-op.
func applyInstant(op Op, node ObjectNode) {
	if node == nil {
		return
	}
	switch op.Kind {
	case OpScale:
		node.SetScale(Vec3{X: op.Factor, Y: op.Factor, Z: op.Factor})
	case OpColor:
		node.SetColor(op.Color)
	case OpVisible:
		node.SetVisible(op.Visible)
	case OpMoveTo:
		node.SetPosition(op.Target)
	}
}
