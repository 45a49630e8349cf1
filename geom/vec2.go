// Package geom provides the float32 vector and affine-matrix primitives
// shared by the path, raster and rasterimg packages.
package geom

import "github.com/chewxy/math32"

// Vec2 is an ordered pair of 32-bit floats (x, y).
type Vec2 struct {
	X, Y float32
}

// Vec2At builds a Vec2 from its two components.
func Vec2At(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

func (a Vec2) Scale(s float32) Vec2 { return Vec2{a.X * s, a.Y * s} }

func (a Vec2) Dot(b Vec2) float32 { return a.X*b.X + a.Y*b.Y }

// Cross returns the z-component of the 3D cross product of a and b.
func (a Vec2) Cross(b Vec2) float32 { return a.X*b.Y - a.Y*b.X }

func (a Vec2) Length() float32 { return math32.Hypot(a.X, a.Y) }

func (a Vec2) LengthSquared() float32 { return a.X*a.X + a.Y*a.Y }

// Normalize returns a unit vector in the direction of a, or the zero
// vector if a is the zero vector.
func (a Vec2) Normalize() Vec2 {
	l := a.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Perp returns a rotated 90 degrees counter-clockwise (in a y-down
// raster coordinate system, this turns a "right" tangent into its
// outward normal).
func (a Vec2) Perp() Vec2 { return Vec2{-a.Y, a.X} }

func (a Vec2) Equal(b Vec2) bool { return a.X == b.X && a.Y == b.Y }

// Lerp linearly interpolates between a and b at parameter t.
func Lerp(a, b Vec2, t float32) Vec2 {
	return Vec2{
		a.X + t*(b.X-a.X),
		a.Y + t*(b.Y-a.Y),
	}
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
