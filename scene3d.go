package rowan

import "math"

// Scene is the reference in-memory scene graph: an object tree with an ID
// index and a picking camera. It implements ObjectAccessor, so it can host a
// Runtime directly — in production the accessor is usually an adapter over
// the application's real rendering scene, but tests, headless hosts, and the
// examples use this one.
type Scene struct {
	root   *Object
	byID   map[string]*Object
	camera *Camera
	hitBuf []*Object // reused traversal buffer
}

// NewScene creates a scene with a pre-created root object. The root has no
// ID and is not hit-testable.
func NewScene() *Scene {
	return &Scene{
		root: NewObject("", "root"),
		byID: make(map[string]*Object),
	}
}

// Root returns the scene's root object.
func (s *Scene) Root() *Object {
	return s.root
}

// SetCamera sets the picking camera. Without a camera, RayIntersect never
// hits.
func (s *Scene) SetCamera(c *Camera) {
	s.camera = c
}

// Camera returns the picking camera, or nil if unset.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Add attaches an object to the scene root and indexes it by ID.
// Panics if the ID is already present.
func (s *Scene) Add(o *Object) {
	s.AddTo(s.root, o)
}

// AddTo attaches an object under the given parent and indexes it by ID.
// Panics if the ID is already present or the parent is not in this scene.
func (s *Scene) AddTo(parent, o *Object) {
	if o.id != "" {
		if _, exists := s.byID[o.id]; exists {
			panic("rowan: duplicate object id " + o.id)
		}
	}
	parent.AddChild(o)
	if o.id != "" {
		s.byID[o.id] = o
	}
}

// Remove disposes an object and drops it (and all descendants) from the ID
// index. No-op for objects not in this scene.
func (s *Scene) Remove(o *Object) {
	s.unindex(o)
	o.Dispose()
}

func (s *Scene) unindex(o *Object) {
	if o.id != "" {
		delete(s.byID, o.id)
	}
	for _, child := range o.children {
		s.unindex(child)
	}
}

// Object returns the object with the given ID, or nil if absent.
func (s *Scene) Object(id string) *Object {
	return s.byID[id]
}

// --- ObjectAccessor ---

// ObjectNode resolves the node for an object ID. Returns nil for absent or
// disposed objects, which makes primitives targeting them silent no-ops.
func (s *Scene) ObjectNode(id string) ObjectNode {
	o, ok := s.byID[id]
	if !ok || o.disposed {
		return nil
	}
	return o
}

// RayIntersect casts a picking ray through the pointer position and returns
// the ID of the nearest visible object whose bounding sphere it hits.
// Invisible subtrees are skipped and the nearest hit wins — the same
// occlusion rules the renderer applies. Returns ok=false with no camera, no
// hit, or a hit on an object without an ID.
func (s *Scene) RayIntersect(ev PointerEvent) (string, bool) {
	if s.camera == nil {
		return "", false
	}
	origin, dir := s.camera.ScreenRay(ev.X, ev.Y)

	s.hitBuf = s.collectPickable(s.root, s.hitBuf[:0])

	var best *Object
	bestT := math.Inf(1)
	for _, o := range s.hitBuf {
		t, ok := raySphere(origin, dir, o.WorldPosition(), o.pickRadius())
		if ok && t < bestT {
			best = o
			bestT = t
		}
	}
	if best == nil || best.id == "" {
		return "", false
	}
	return best.id, true
}

// collectPickable walks the tree appending hit-testable objects to buf.
// Skips invisible subtrees entirely.
func (s *Scene) collectPickable(o *Object, buf []*Object) []*Object {
	if !o.visible {
		return buf
	}
	if o.BoundsRadius > 0 {
		buf = append(buf, o)
	}
	for _, child := range o.children {
		buf = s.collectPickable(child, buf)
	}
	return buf
}

// raySphere intersects a ray (unit direction) with a sphere and returns the
// nearest non-negative hit distance.
func raySphere(origin, dir, center Vec3, radius float64) (float64, bool) {
	if radius <= 0 {
		return 0, false
	}
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq // ray starts inside the sphere
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
