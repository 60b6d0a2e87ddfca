package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a position in world space.
//
// Polygons keep *Point corners that are shared with the shape that owns them,
// so moving the shape moves the polygon. Only the owning shape should write.
type Point struct {
	X, Y, Z float64
}

// P is shorthand for a Point literal.
func P(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }

func (p Point) vec3() mgl64.Vec3 { return mgl64.Vec3{p.X, p.Y, p.Z} }

// Set moves p to (x, y, z).
func (p *Point) Set(x, y, z float64) {
	p.X, p.Y, p.Z = x, y, z
}

// SetTo copies o's coordinates into p.
func (p *Point) SetTo(o Point) {
	*p = o
}

// Add moves p by v.
func (p *Point) Add(v Vector) {
	p.AddScaled(v, 1)
}

// AddScaled moves p by v*s.
func (p *Point) AddScaled(v Vector, s float64) {
	p.X += v.X * s
	p.Y += v.Y * s
	p.Z += v.Z * s
}

// Sub moves p by -v.
func (p *Point) Sub(v Vector) {
	p.SubScaled(v, 1)
}

// SubScaled moves p by -v*s.
func (p *Point) SubScaled(v Vector, s float64) {
	p.AddScaled(v, -s)
}

// VectorTo returns the vector from p to q.
func (p Point) VectorTo(q Point) Vector {
	return fromVec3(q.vec3().Sub(p.vec3()))
}

// Offset returns p moved by v without changing p.
func (p Point) Offset(v Vector) Point {
	p.Add(v)
	return p
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
