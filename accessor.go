package rowan

// ObjectNode is one renderable scene object as seen by the animation
// primitives: direct property mutation, no batching or transactions. The
// scene graph that owns the node belongs to another subsystem; rowan only
// writes through this interface.
//
// Implementations whose nodes can lack a material should make SetColor a
// silent no-op in that case rather than returning or raising an error.
type ObjectNode interface {
	Position() Vec3
	SetPosition(Vec3)
	Rotation() Vec3
	SetRotation(Vec3)
	Scale() Vec3
	SetScale(Vec3)
	SetColor(Color)
	SetVisible(bool)
}

// ObjectAccessor is the runtime's view into the externally owned scene graph.
type ObjectAccessor interface {
	// ObjectNode resolves the node for an object ID, or nil if the object
	// does not exist (or has been removed). A nil result makes every
	// primitive targeting that object a silent no-op.
	ObjectNode(id string) ObjectNode

	// RayIntersect resolves which object, if any, a pointer event lands on,
	// honoring the same occlusion and traversal rules as the rendering
	// subsystem. Called synchronously at click-dispatch time.
	RayIntersect(ev PointerEvent) (id string, ok bool)
}
