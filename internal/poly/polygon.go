// Package poly implements the convex polygons that make up a scene: projecting
// their corners against a camera and drawing them onto a 2D surface.
package poly

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"paintcam/internal/geom"
)

// ErrMalformed is returned for a polygon with fewer than three corners.
var ErrMalformed = errors.New("poly: malformed polygon")

// MinCorners is the smallest ring New accepts.
const MinCorners = 3

// nearLimit is the only near-plane test: a corner must be further than this
// along the view direction to be kept.
const nearLimit = 1.0

var (
	// DefaultFill is used when a polygon is created without a color.
	DefaultFill    = color.RGBA{R: 255, G: 175, B: 175, A: 255}
	// DefaultOutline is the wireframe color.
	DefaultOutline = color.RGBA{R: 255, G: 175, B: 175, A: 255}
)

// Viewer is the camera state a polygon projects against.
type Viewer interface {
	Origin() geom.Point
	Direction() geom.Vector
	Right() geom.Vector
	Up() geom.Vector
	FOV() float64
	Viewport() (w, h int)
}

// ScreenPoint is a projected corner relative to the screen center.
type ScreenPoint struct {
	X, Y float64
}

// Polygon is an ordered ring of corners. The corners are shared with the
// caller; the polygon never copies them.
type Polygon struct {
	corners   []*geom.Point
	projected []ScreenPoint
	visible   int
	screen    []image.Point // scratch for drawing

	fill    color.RGBA
	outline color.RGBA
	depth   float64
}

// New builds a polygon over corners. A zero fill means DefaultFill.
func New(fill color.RGBA, corners ...*geom.Point) (*Polygon, error) {
	if len(corners) < MinCorners {
		return nil, fmt.Errorf("%d corners: %w", len(corners), ErrMalformed)
	}
	for i, c := range corners {
		if c == nil {
			return nil, fmt.Errorf("corner %d is nil: %w", i, ErrMalformed)
		}
	}
	if fill == (color.RGBA{}) {
		fill = DefaultFill
	}
	return &Polygon{
		corners:   corners,
		projected: make([]ScreenPoint, len(corners)),
		screen:    make([]image.Point, 0, len(corners)),
		fill:      fill,
		outline:   DefaultOutline,
	}, nil
}

// Corners returns the shared corner ring. Mutating a corner moves every
// polygon built over it.
func (p *Polygon) Corners() []*geom.Point { return p.corners }

// Visible returns the corners accepted by the last Project call, in ring order.
func (p *Polygon) Visible() []ScreenPoint { return p.projected[:p.visible] }

// Depth is the sort key computed by the last Project call.
func (p *Polygon) Depth() float64 { return p.depth }

// Color is the fill color; Outline is the wireframe color.
func (p *Polygon) Color() color.RGBA       { return p.fill }
func (p *Polygon) SetColor(c color.RGBA)   { p.fill = c }
func (p *Polygon) Outline() color.RGBA     { return p.outline }
func (p *Polygon) SetOutline(c color.RGBA) { p.outline = c }

// Move shifts every corner by v. Corners shared with other polygons move too.
func (p *Polygon) Move(v geom.Vector) {
	for _, c := range p.corners {
		c.Add(v)
	}
}

// Project recomputes the visible screen points and the depth metric against v.
//
// Corners that are not more than one unit in front of the camera, or whose
// screen position leaves ±viewport width, are dropped rather than clipped.
// The depth metric is min+max of the squared camera-to-corner distances over
// all corners, visible or not.
func (p *Polygon) Project(v Viewer) {
	origin := v.Origin()
	dir, right, up := v.Direction(), v.Right(), v.Up()
	fov := v.FOV()
	w, h := v.Viewport()

	// Integer division: a 1240 wide viewport scales x by 206.
	scaleX := float64(w / 2 / 3)
	scaleY := float64(h/2) / 1.5
	bound := float64(w)

	minD, maxD := math.Inf(1), math.Inf(-1)
	n := 0
	for _, c := range p.corners {
		toCorner := origin.VectorTo(*c)
		d := toCorner.LengthSq()
		minD = min(minD, d)
		maxD = max(maxD, d)

		wF, err := geom.ScalarProjection(toCorner, dir)
		if err != nil || !(wF > nearLimit) {
			continue
		}
		wR, err := geom.ScalarProjection(toCorner, right)
		if err != nil {
			continue
		}
		wU, err := geom.ScalarProjection(toCorner, up)
		if err != nil {
			continue
		}

		x := fov / wF * wR * scaleX
		y := fov / wF * wU * scaleY
		if !(x < bound && x > -bound && y < bound && y > -bound) {
			continue
		}
		p.projected[n] = ScreenPoint{X: x, Y: y}
		n++
	}
	p.visible = n
	p.depth = minD + maxD
}

func (p *Polygon) screenPoints(center image.Point) []image.Point {
	p.screen = p.screen[:0]
	for _, sp := range p.projected[:p.visible] {
		p.screen = append(p.screen, image.Pt(int(sp.X)+center.X, int(sp.Y)+center.Y))
	}
	return p.screen
}

// DrawFilled fills the visible outline. Fewer than three visible points draw nothing.
func (p *Polygon) DrawFilled(s Surface, center image.Point) {
	if p.visible < MinCorners {
		return
	}
	s.FillPolygon(p.screenPoints(center), p.fill)
}

// DrawWireframe strokes the visible outline, closing it from the last point to the first.
func (p *Polygon) DrawWireframe(s Surface, center image.Point) {
	if p.visible < 1 {
		return
	}
	pts := p.screenPoints(center)
	for i := range pts {
		s.DrawLine(pts[i], pts[(i+1)%len(pts)], p.outline)
	}
}

// ByDepthDescending orders larger depth metrics first, which is back to front.
func ByDepthDescending(a, b *Polygon) int {
	return cmp.Compare(b.depth, a.depth)
}
