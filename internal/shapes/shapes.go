// Package shapes builds polygon groups over shared corner points and moves
// them as one piece.
package shapes

import (
	"fmt"
	"image/color"

	"paintcam/internal/geom"
	"paintcam/internal/poly"
	"paintcam/internal/scene"
)

// builder registers polygons and removes all of them again if any step fails,
// so a failed shape leaves no partial geometry behind.
type builder struct {
	sc    *scene.Scene
	added []*poly.Polygon
}

func (b *builder) add(c color.RGBA, corners ...*geom.Point) (*poly.Polygon, error) {
	p, err := poly.New(c, corners...)
	if err != nil {
		return nil, err
	}
	if err := b.sc.Add(p); err != nil {
		return nil, err
	}
	b.added = append(b.added, p)
	return p, nil
}

func (b *builder) rollback() {
	for _, p := range b.added {
		b.sc.Remove(p)
	}
	b.added = nil
}

func (b *builder) fail(shape string, err error) error {
	b.rollback()
	return fmt.Errorf("build %s: %w", shape, err)
}

// rotateAbout rotates every point about origin with rotate.
func rotateAbout(origin geom.Point, points []*geom.Point, rotate func(v *geom.Vector)) {
	var v geom.Vector
	for _, p := range points {
		v.SetBetween(origin, *p)
		rotate(&v)
		*p = origin.Offset(v)
	}
}

func clampChannel(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
