package shapes

import (
	"fmt"
	"image/color"

	"paintcam/internal/geom"
	"paintcam/internal/poly"
	"paintcam/internal/scene"
)

// MinSegments is the fewest side faces a cylinder can have.
const MinSegments = 3

// Cylinder is an open tube of quads around a vertical axis.
type Cylinder struct {
	center   *geom.Point
	upper    []*geom.Point
	lower    []*geom.Point
	all      []*geom.Point
	polygons []*poly.Polygon
}

// NewCylinder builds segments side faces around center. The faces ramp from
// dark red to orange and back.
func NewCylinder(sc *scene.Scene, center geom.Point, height, radius float64, segments int) (*Cylinder, error) {
	if segments < MinSegments {
		return nil, fmt.Errorf("build cylinder: %d segments: %w", segments, poly.ErrMalformed)
	}
	cy := &Cylinder{
		center: &center,
		upper:  make([]*geom.Point, segments),
		lower:  make([]*geom.Point, segments),
	}

	step := 360.0 / float64(segments)
	red, green := 10, 0
	ramp := (220 - red) / (segments / 2)

	b := &builder{sc: sc}
	face := func(i, j int, c color.RGBA) error {
		p, err := b.add(c, cy.upper[i], cy.upper[j], cy.lower[j], cy.lower[i])
		if err != nil {
			return b.fail("cylinder", err)
		}
		cy.polygons = append(cy.polygons, p)
		return nil
	}

	rim := geom.V(radius, 0, 0) // X/Y here map to world X/Z
	for i := 0; i < segments; i++ {
		cy.lower[i] = &geom.Point{X: center.X + rim.X, Y: center.Y, Z: center.Z + rim.Y}
		cy.upper[i] = &geom.Point{X: center.X + rim.X, Y: center.Y + height, Z: center.Z + rim.Y}

		if i != 0 {
			red += ramp
			green += ramp / 3
			if err := face(i-1, i, color.RGBA{R: clampChannel(red), G: clampChannel(green), A: 255}); err != nil {
				return nil, err
			}
			if i == segments/2 {
				ramp = -ramp
			}
		}
		rim.RotateXY(-step)
	}
	red += ramp
	if err := face(segments-1, 0, color.RGBA{R: clampChannel(red), A: 255}); err != nil {
		return nil, err
	}

	cy.all = append(append(cy.all, cy.upper...), cy.lower...)
	return cy, nil
}

func (cy *Cylinder) Center() geom.Point        { return *cy.center }
func (cy *Cylinder) Polygons() []*poly.Polygon { return cy.polygons }

// Move shifts the cylinder and its center by v.
func (cy *Cylinder) Move(v geom.Vector) {
	cy.center.Add(v)
	for _, p := range cy.all {
		p.Add(v)
	}
}

// Spin rotates the cylinder about its center by deg in each of the XY, XZ
// and YZ planes, in that order.
func (cy *Cylinder) Spin(deg float64) {
	rotateAbout(*cy.center, cy.all, func(v *geom.Vector) {
		v.RotateXY(deg)
		v.RotateXZ(deg)
		v.RotateYZ(deg)
	})
}
