// Package geom provides the vector and polygon primitives the solid
// metrics engine is built on. Everything here operates on plain value
// types and is side-effect free.
package geom

import "math"

// Vec3 is a 3D vector value type.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a scaled by s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns |a|.
func (a Vec3) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

// Normalize returns the unit vector in the direction of a. A zero-length
// input returns the zero vector; callers must treat that as "no
// well-defined direction".
func (a Vec3) Normalize() Vec3 {
	l := a.Length()
	if l < 1e-12 {
		return Vec3{}
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// AngleAroundAxis returns the angle of p around axis, measured in a local
// 2D frame built from a reference direction: u = axis × ref, v = axis × u.
// The result is stable for any axis orientation, which is what makes dual
// face reconstruction possible without a face orientation convention.
func AngleAroundAxis(p, axis, ref Vec3) float64 {
	u := axis.Cross(ref)
	v := axis.Cross(u)
	return math.Atan2(p.Dot(u), p.Dot(v))
}
