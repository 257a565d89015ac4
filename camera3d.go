package rowan

import "math"

// Camera generates picking rays from screen-space pointer coordinates using a
// standard perspective projection: position, look-at target, vertical field
// of view, and the viewport the scene is rendered into. It exists for the
// reference scene's ray intersection; rendering itself belongs to another
// subsystem.
type Camera struct {
	// Position is the camera's world-space position.
	Position Vec3
	// Target is the world-space point the camera looks at.
	Target Vec3
	// Up is the camera's up hint. Defaults to +Y.
	Up Vec3
	// FOV is the vertical field of view in degrees.
	FOV float64
	// ViewportW and ViewportH are the rendered surface size in pixels.
	ViewportW, ViewportH float64
}

// NewCamera creates a camera at (0, 0, 10) looking at the origin with a 60°
// vertical field of view and the given viewport size.
func NewCamera(viewportW, viewportH float64) *Camera {
	return &Camera{
		Position:  Vec3{Z: 10},
		Up:        Vec3{Y: 1},
		FOV:       60,
		ViewportW: viewportW,
		ViewportH: viewportH,
	}
}

// ScreenRay converts screen coordinates (origin top-left, Y down) into a
// world-space picking ray. The returned direction is unit length.
func (c *Camera) ScreenRay(x, y float64) (origin, dir Vec3) {
	forward := c.Target.Sub(c.Position).Normalize()
	up := c.Up
	if up == (Vec3{}) {
		up = Vec3{Y: 1}
	}
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	// NDC: x in [-1, 1] left→right, y in [-1, 1] bottom→top.
	ndcX := 2*x/c.ViewportW - 1
	ndcY := 1 - 2*y/c.ViewportH

	tanHalf := math.Tan(c.FOV * math.Pi / 360)
	aspect := c.ViewportW / c.ViewportH

	dir = forward.
		Add(right.Mul(ndcX * tanHalf * aspect)).
		Add(trueUp.Mul(ndcY * tanHalf)).
		Normalize()
	return c.Position, dir
}
