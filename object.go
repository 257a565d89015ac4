package rowan

// Object is one element of the reference scene graph: a flat struct holding
// the mutable properties the animation primitives write (position, rotation,
// scale, color, visibility) plus a picking sphere and tree links. It
// implements ObjectNode, so the reference scene can stand in for an
// externally owned scene graph in tests and headless hosts.
//
// Rotation components are in degrees. An object's world position composes
// parent translations only; picking bounds do not inherit parent rotation.
type Object struct {
	id   string
	name string

	parent   *Object
	children []*Object

	position Vec3
	rotation Vec3
	scale    Vec3
	color    Color
	visible  bool

	// BoundsRadius is the local-space picking sphere radius. Objects with a
	// zero radius (grouping containers) are not hit-testable.
	BoundsRadius float64

	disposed bool
}

// NewObject creates an object with identity scale, white color, and full
// visibility. IDs are assigned by the application and must be unique within
// a scene.
func NewObject(id, name string) *Object {
	return &Object{
		id:      id,
		name:    name,
		scale:   Vec3{1, 1, 1},
		color:   ColorWhite,
		visible: true,
	}
}

// ID returns the object's application-assigned identifier.
func (o *Object) ID() string { return o.id }

// Name returns the object's display name.
func (o *Object) Name() string { return o.name }

// --- ObjectNode ---

// Position returns the object's local position.
func (o *Object) Position() Vec3 { return o.position }

// SetPosition sets the object's local position.
func (o *Object) SetPosition(p Vec3) { o.position = p }

// Rotation returns the object's local rotation in degrees.
func (o *Object) Rotation() Vec3 { return o.rotation }

// SetRotation sets the object's local rotation in degrees.
func (o *Object) SetRotation(r Vec3) { o.rotation = r }

// Scale returns the object's local scale.
func (o *Object) Scale() Vec3 { return o.scale }

// SetScale sets the object's local scale.
func (o *Object) SetScale(s Vec3) { o.scale = s }

// Color returns the object's material color.
func (o *Object) Color() Color { return o.color }

// SetColor sets the object's material color.
func (o *Object) SetColor(c Color) { o.color = c }

// Visible reports whether the object is visible. Invisible objects and their
// descendants are neither rendered nor hit-testable.
func (o *Object) Visible() bool { return o.visible }

// SetVisible sets the object's visibility.
func (o *Object) SetVisible(v bool) { o.visible = v }

// --- Tree manipulation ---

// AddChild appends child to this object's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this object (cycle).
func (o *Object) AddChild(child *Object) {
	if child == nil {
		panic("rowan: cannot add nil child")
	}
	if globalDebug.Load() {
		debugCheckDisposed(o, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, o) {
		panic("rowan: adding child would create a cycle")
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = o
	o.children = append(o.children, child)
	if globalDebug.Load() {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this object.
// Panics if child's parent is not this object.
func (o *Object) RemoveChild(child *Object) {
	if child.parent != o {
		panic("rowan: child's parent is not this object")
	}
	o.removeChildByPtr(child)
	child.parent = nil
}

// RemoveFromParent detaches this object from its parent.
// No-op if this object has no parent.
func (o *Object) RemoveFromParent() {
	if o.parent == nil {
		return
	}
	o.parent.RemoveChild(o)
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (o *Object) Children() []*Object {
	return o.children
}

// NumChildren returns the number of children.
func (o *Object) NumChildren() int {
	return len(o.children)
}

// Parent returns the object's parent, or nil for a root.
func (o *Object) Parent() *Object {
	return o.parent
}

// WorldPosition returns the object's position composed through its ancestors'
// translations.
func (o *Object) WorldPosition() Vec3 {
	p := o.position
	for a := o.parent; a != nil; a = a.parent {
		p = p.Add(a.position)
	}
	return p
}

// worldVisible reports whether the object and all its ancestors are visible.
func (o *Object) worldVisible() bool {
	for a := o; a != nil; a = a.parent {
		if !a.visible {
			return false
		}
	}
	return true
}

// pickRadius is the effective picking sphere radius: the local radius scaled
// by the largest scale component.
func (o *Object) pickRadius() float64 {
	r := o.scale.X
	if o.scale.Y > r {
		r = o.scale.Y
	}
	if o.scale.Z > r {
		r = o.scale.Z
	}
	return o.BoundsRadius * r
}

// --- Disposal ---

// Dispose removes this object from its parent, marks it as disposed, and
// recursively disposes all descendants. Primitives targeting a disposed
// object degrade to silent no-ops.
func (o *Object) Dispose() {
	if o.disposed {
		return
	}
	o.RemoveFromParent()
	o.dispose()
}

func (o *Object) dispose() {
	o.disposed = true
	for _, child := range o.children {
		child.parent = nil
		child.dispose()
	}
	o.children = nil
	o.parent = nil
}

// IsDisposed returns true if this object has been disposed.
func (o *Object) IsDisposed() bool {
	return o.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of obj.
func isAncestor(candidate, obj *Object) bool {
	for p := obj; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from o.children without clearing
// child.parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (o *Object) removeChildByPtr(child *Object) {
	for i, c := range o.children {
		if c == child {
			copy(o.children[i:], o.children[i+1:])
			o.children[len(o.children)-1] = nil
			o.children = o.children[:len(o.children)-1]
			return
		}
	}
}
