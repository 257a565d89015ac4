package rowan

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Axis selects one spatial component of a position or rotation.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis maps the graph-level axis strings ("x", "y", "z") to an Axis.
// The second result is false for anything else.
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "x":
		return AxisX, true
	case "y":
		return AxisY, true
	case "z":
		return AxisZ, true
	}
	return AxisX, false
}

// String returns the graph-level name of the axis.
func (a Axis) String() string {
	switch a {
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "x"
}

// Vec3 is a 3D vector used for positions, rotations, and scale factors.
// Rotation components are in degrees.
type Vec3 struct {
	X, Y, Z float64
}

// Component returns the component selected by axis.
func (v Vec3) Component(a Axis) float64 {
	switch a {
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	return v.X
}

// SetComponent sets the component selected by axis.
func (v *Vec3) SetComponent(a Axis, f float64) {
	switch a {
	case AxisY:
		v.Y = f
	case AxisZ:
		v.Z = f
	default:
		v.X = f
	}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns v scaled by f.
func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorRed is the default COLOR action color (#ff0000).
var ColorRed = Color{1, 0, 0, 1}

// ParseHexColor parses a "#rrggbb" hex string into a Color with full alpha.
// The second result is false when the string is not a valid hex color.
func ParseHexColor(s string) (Color, bool) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, false
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, true
}

// Hex returns the "#rrggbb" representation of the color. Alpha is dropped.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hex()
}
