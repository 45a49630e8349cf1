package geom

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Mat3 is a 3x3 affine transform acting on Vec2, stored in the same
// row-major layout as golang.org/x/image/math/f32.Mat3 so that the
// bottom row is always {0, 0, 1}:
//
//	| m[0] m[1] m[2] |   | a c tx |
//	| m[3] m[4] m[5] | = | b d ty |
//	| m[6] m[7] m[8] |   | 0 0 1  |
type Mat3 f32.Mat3

// Identity is the identity transform.
var Identity = Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Translation builds a pure translation matrix.
func Translation(tx, ty float32) Mat3 {
	return Mat3{1, 0, tx, 0, 1, ty, 0, 0, 1}
}

// Scaling builds a pure scale matrix.
func Scaling(sx, sy float32) Mat3 {
	return Mat3{sx, 0, 0, 0, sy, 0, 0, 0, 1}
}

// Rotation builds a rotation matrix for an angle in radians.
func Rotation(radians float32) Mat3 {
	s, c := math32.Sin(radians), math32.Cos(radians)
	return Mat3{c, -s, 0, s, c, 0, 0, 0, 1}
}

// Mul returns a*b (apply b first, then a).
func (a Mat3) Mul(b Mat3) Mat3 {
	return Mat3{
		a[0]*b[0] + a[1]*b[3] + a[2]*b[6],
		a[0]*b[1] + a[1]*b[4] + a[2]*b[7],
		a[0]*b[2] + a[1]*b[5] + a[2]*b[8],

		a[3]*b[0] + a[4]*b[3] + a[5]*b[6],
		a[3]*b[1] + a[4]*b[4] + a[5]*b[7],
		a[3]*b[2] + a[4]*b[5] + a[5]*b[8],

		a[6]*b[0] + a[7]*b[3] + a[8]*b[6],
		a[6]*b[1] + a[7]*b[4] + a[8]*b[7],
		a[6]*b[2] + a[7]*b[5] + a[8]*b[8],
	}
}

// Translate post-multiplies a translation onto m.
func (m Mat3) Translate(tx, ty float32) Mat3 { return m.Mul(Translation(tx, ty)) }

// Scale post-multiplies a scale onto m.
func (m Mat3) Scale(sx, sy float32) Mat3 { return m.Mul(Scaling(sx, sy)) }

// Rotate post-multiplies a rotation (radians) onto m.
func (m Mat3) Rotate(radians float32) Mat3 { return m.Mul(Rotation(radians)) }

// Apply transforms a point, applying the translation component.
func (m Mat3) Apply(v Vec2) Vec2 {
	return Vec2{
		m[0]*v.X + m[1]*v.Y + m[2],
		m[3]*v.X + m[4]*v.Y + m[5],
	}
}

// ApplyVector transforms a direction vector, ignoring translation.
func (m Mat3) ApplyVector(v Vec2) Vec2 {
	return Vec2{
		m[0]*v.X + m[1]*v.Y,
		m[3]*v.X + m[4]*v.Y,
	}
}
