// Package geom holds the 3D point and vector primitives used by the projection
// pipeline. Both types are plain mutable values: methods with pointer receivers
// change the receiver in place, methods with value receivers never do.
package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrDegenerate is returned when an operation needs a non-zero vector and gets a zero one.
var ErrDegenerate = errors.New("geom: degenerate geometry")

// Vector is a direction with magnitude.
type Vector struct {
	X, Y, Z float64
}

// V is shorthand for a Vector literal.
func V(x, y, z float64) Vector { return Vector{X: x, Y: y, Z: z} }

func (v Vector) vec3() mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

func fromVec3(m mgl64.Vec3) Vector { return Vector{X: m[0], Y: m[1], Z: m[2]} }

// Set overwrites all three components.
func (v *Vector) Set(x, y, z float64) {
	v.X, v.Y, v.Z = x, y, z
}

// SetBetween points v from `from` to `to`.
func (v *Vector) SetBetween(from, to Point) {
	*v = from.VectorTo(to)
}

// Add adds o to v in place.
func (v *Vector) Add(o Vector) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// Sub subtracts o from v in place.
func (v *Vector) Sub(o Vector) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

// AddScaled adds o*s to v.
func (v *Vector) AddScaled(o Vector, s float64) {
	v.X += o.X * s
	v.Y += o.Y * s
	v.Z += o.Z * s
}

// Scale multiplies every component by s in place.
func (v *Vector) Scale(s float64) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// Invert flips v to point the opposite way.
func (v *Vector) Invert() {
	v.Scale(-1)
}

// Scaled and Inverted are the copying forms of Scale and Invert.
func (v Vector) Scaled(s float64) Vector { return fromVec3(v.vec3().Mul(s)) }
func (v Vector) Inverted() Vector        { return v.Scaled(-1) }

// Dot is the dot product of v and o.
func (v Vector) Dot(o Vector) float64 { return v.vec3().Dot(o.vec3()) }

// DotPoint treats p's coordinates as a vector.
func (v Vector) DotPoint(p Point) float64 { return v.vec3().Dot(p.vec3()) }

// LengthSq is the dot product of v with itself.
func (v Vector) LengthSq() float64 { return v.Dot(v) }

// Len is the Euclidean length of v.
func (v Vector) Len() float64 { return v.vec3().Len() }

// Cross is the cross product v × o.
func (v Vector) Cross(o Vector) Vector { return fromVec3(v.vec3().Cross(o.vec3())) }

// IsZero reports whether all components are exactly zero.
func (v Vector) IsZero() bool { return v == Vector{} }

// Normalize scales v to unit length. A zero vector is left untouched and
// ErrDegenerate is returned.
func (v *Vector) Normalize() error {
	n, err := v.Normalized()
	if err != nil {
		return err
	}
	*v = n
	return nil
}

// Normalized returns v scaled to unit length.
func (v Vector) Normalized() (Vector, error) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return v, fmt.Errorf("normalize %v: %w", v, ErrDegenerate)
	}
	return Vector{X: v.X / l, Y: v.Y / l, Z: v.Z / l}, nil
}

// ScalarProjection returns the signed length of a along b: dot(a, b) / |b|.
func ScalarProjection(a, b Vector) (float64, error) {
	l := b.Len()
	if l == 0 {
		return 0, fmt.Errorf("project onto %v: %w", b, ErrDegenerate)
	}
	return a.Dot(b) / l, nil
}

// RotateXY rotates v in the XY plane by deg degrees:
// x' = x cos - y sin, y' = x sin + y cos.
func (v *Vector) RotateXY(deg float64) {
	*v = fromVec3(mgl64.Rotate3DZ(mgl64.DegToRad(deg)).Mul3x1(v.vec3()))
}

// RotateXZ rotates v in the XZ plane by deg degrees:
// x' = x cos + z sin, z' = -x sin + z cos.
// Positive angles match the camera's right turn.
func (v *Vector) RotateXZ(deg float64) {
	*v = fromVec3(mgl64.Rotate3DY(mgl64.DegToRad(deg)).Mul3x1(v.vec3()))
}

// RotateYZ rotates v in the YZ plane by deg degrees:
// y' = y cos - z sin, z' = y sin + z cos.
func (v *Vector) RotateYZ(deg float64) {
	*v = fromVec3(mgl64.Rotate3DX(mgl64.DegToRad(deg)).Mul3x1(v.vec3()))
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
