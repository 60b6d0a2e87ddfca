// Package scene holds the ordered set of polygons a camera projects and draws.
package scene

import (
	"errors"
	"fmt"
	"slices"

	"paintcam/internal/poly"
)

// DefaultCapacity is the polygon limit used when none is configured.
const DefaultCapacity = 10000

// ErrCapacityExceeded is returned by Add when the scene is full.
var ErrCapacityExceeded = errors.New("scene: capacity exceeded")

// Scene is an ordered, growable collection of polygons with an optional upper
// bound. It is not safe for concurrent use; one frame loop owns it.
type Scene struct {
	polygons []*poly.Polygon
	capacity int
}

// New returns an empty scene. A capacity of 0 means unbounded; negative
// values are treated as 0.
func New(capacity int) *Scene {
	if capacity < 0 {
		capacity = 0
	}
	return &Scene{capacity: capacity}
}

// Add appends p to the end of the draw order.
func (s *Scene) Add(p *poly.Polygon) error {
	if p == nil {
		return fmt.Errorf("scene: add nil polygon: %w", poly.ErrMalformed)
	}
	if s.capacity > 0 && len(s.polygons) >= s.capacity {
		return fmt.Errorf("add polygon %d of %d: %w", len(s.polygons)+1, s.capacity, ErrCapacityExceeded)
	}
	s.polygons = append(s.polygons, p)
	return nil
}

// Remove deletes p and reports whether it was present.
func (s *Scene) Remove(p *poly.Polygon) bool {
	i := slices.Index(s.polygons, p)
	if i < 0 {
		return false
	}
	s.polygons = slices.Delete(s.polygons, i, i+1)
	return true
}

func (s *Scene) Len() int      { return len(s.polygons) }
func (s *Scene) Capacity() int { return s.capacity }

// Polygons returns the polygons in current draw order. The slice is owned by
// the scene and is only valid until the next Add, Remove or Sort.
func (s *Scene) Polygons() []*poly.Polygon { return s.polygons }

// Project recomputes every polygon against v.
func (s *Scene) Project(v poly.Viewer) {
	for _, p := range s.polygons {
		p.Project(v)
	}
}

// Sort reorders the scene with cmp. Equal elements keep their relative order.
func (s *Scene) Sort(cmp func(a, b *poly.Polygon) int) {
	slices.SortStableFunc(s.polygons, cmp)
}
