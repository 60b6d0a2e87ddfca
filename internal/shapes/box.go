package shapes

import (
	"fmt"
	"image/color"

	"paintcam/internal/geom"
	"paintcam/internal/poly"
	"paintcam/internal/scene"
)

// boxFaces indexes the eight corners of a box, four per face.
var boxFaces = [6][4]int{
	{0, 1, 2, 3}, // front
	{5, 4, 7, 6}, // back
	{4, 0, 3, 7}, // left
	{1, 5, 6, 2}, // right
	{3, 2, 6, 7}, // top
	{4, 5, 1, 0}, // bottom
}

// boxShade darkens faces so edges stay readable without lighting.
var boxShade = [6]float64{1, 0.55, 0.7, 0.85, 0.95, 0.45}

// Box is a cuboid driven by an Object, so it can turn and drive around.
type Box struct {
	*Object
	polygons []*poly.Polygon
}

// NewBox builds a box of the given size centered on center, heading +Z.
func NewBox(sc *scene.Scene, center geom.Point, size geom.Vector, base color.RGBA) (*Box, error) {
	b := &builder{sc: sc}
	corners, polygons, err := b.box(center, size, base)
	if err != nil {
		return nil, b.fail("box", err)
	}
	return &Box{Object: NewObject(center, geom.V(0, 0, 1), corners), polygons: polygons}, nil
}

// box adds a shaded cuboid and returns its eight corners and six faces.
func (b *builder) box(center geom.Point, size geom.Vector, base color.RGBA) ([]*geom.Point, []*poly.Polygon, error) {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, nil, fmt.Errorf("size %v: %w", size, geom.ErrDegenerate)
	}
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	corners := []*geom.Point{
		{X: center.X - hx, Y: center.Y - hy, Z: center.Z - hz},
		{X: center.X + hx, Y: center.Y - hy, Z: center.Z - hz},
		{X: center.X + hx, Y: center.Y + hy, Z: center.Z - hz},
		{X: center.X - hx, Y: center.Y + hy, Z: center.Z - hz},
		{X: center.X - hx, Y: center.Y - hy, Z: center.Z + hz},
		{X: center.X + hx, Y: center.Y - hy, Z: center.Z + hz},
		{X: center.X + hx, Y: center.Y + hy, Z: center.Z + hz},
		{X: center.X - hx, Y: center.Y + hy, Z: center.Z + hz},
	}

	polygons := make([]*poly.Polygon, 0, len(boxFaces))
	for i, f := range boxFaces {
		p, err := b.add(shade(base, boxShade[i]), corners[f[0]], corners[f[1]], corners[f[2]], corners[f[3]])
		if err != nil {
			return nil, nil, err
		}
		polygons = append(polygons, p)
	}
	return corners, polygons, nil
}

func (b *Box) Polygons() []*poly.Polygon { return b.polygons }

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: clampChannel(int(float64(c.R) * f)),
		G: clampChannel(int(float64(c.G) * f)),
		B: clampChannel(int(float64(c.B) * f)),
		A: 255,
	}
}
