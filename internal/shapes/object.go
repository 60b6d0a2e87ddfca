package shapes

import "paintcam/internal/geom"

const (
	// ObjectTurnStep is the per-update rotation of a turning object, in degrees.
	ObjectTurnStep = 4.0
	// ObjectSpeed scales the direction vector per update while moving.
	ObjectSpeed    = 0.3
)

// Object moves and rotates a set of shared points around an origin.
// Every polygon built over the same points follows.
type Object struct {
	origin    *geom.Point
	direction geom.Vector
	points    []*geom.Point

	turning int
	moving  bool
}

// NewObject wraps points. origin is owned by the object and moves with it.
func NewObject(origin geom.Point, direction geom.Vector, points []*geom.Point) *Object {
	return &Object{
		origin:    &origin,
		direction: direction,
		points:    points,
	}
}

func (o *Object) Origin() geom.Point     { return *o.origin }
func (o *Object) Direction() geom.Vector { return o.direction }
func (o *Object) Points() []*geom.Point  { return o.points }

// SetDirection replaces the heading with dir scaled by scale.
func (o *Object) SetDirection(dir geom.Vector, scale float64) {
	o.direction = dir.Scaled(scale)
}

// RotateXZ rotates the points about the origin in the horizontal plane.
// The heading is not changed.
func (o *Object) RotateXZ(deg float64) {
	rotateAbout(*o.origin, o.points, func(v *geom.Vector) { v.RotateXZ(deg) })
}

// RotateYZ tilts the points about the origin.
func (o *Object) RotateYZ(deg float64) {
	rotateAbout(*o.origin, o.points, func(v *geom.Vector) { v.RotateYZ(deg) })
}

// Move shifts the origin and every point by v*factor.
func (o *Object) Move(v geom.Vector, factor float64) {
	o.origin.AddScaled(v, factor)
	for _, p := range o.points {
		p.AddScaled(v, factor)
	}
}

// SetPosition moves the object so that its origin lands on p.
func (o *Object) SetPosition(p geom.Point) {
	o.Move(o.origin.VectorTo(p), 1)
}

// Turn sets the turning intent: negative turns left, positive right, zero stops.
func (o *Object) Turn(sign int) {
	switch {
	case sign < 0:
		o.turning = -1
	case sign > 0:
		o.turning = 1
	default:
		o.turning = 0
	}
}

func (o *Object) SetMoving(on bool) { o.moving = on }

// Update applies one frame of turning and moving.
func (o *Object) Update() {
	if o.turning != 0 {
		step := float64(o.turning) * ObjectTurnStep
		o.RotateXZ(step)
		o.direction.RotateXZ(step)
	}
	if o.moving {
		o.Move(o.direction, ObjectSpeed)
	}
}
