// Package raster is a software render target: an RGBA frame that polygons are
// filled and stroked into.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Canvas is an RGBA frame with polygon fill and line drawing.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewCanvas allocates a w×h frame.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
}

// Image returns the backing frame. Pixels are tightly packed RGBA rows.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (w, h int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the whole frame with col.
func (c *Canvas) Clear(col color.RGBA) {
	pix := c.img.Pix
	if len(pix) < 4 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = col.R, col.G, col.B, col.A
	for n := 4; n < len(pix); n *= 2 {
		copy(pix[n:], pix[:n])
	}
}

// FillPolygon fills the closed outline pts with col. Fewer than three points draw nothing.
// Only the bounding box of pts, clipped to the frame, is rasterized.
func (c *Canvas) FillPolygon(pts []image.Point, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	r := bounds(pts).Intersect(c.img.Rect)
	if r.Empty() {
		return
	}
	c.z.Reset(r.Dx(), r.Dy())
	c.z.DrawOp = draw.Over
	c.z.MoveTo(float32(pts[0].X-r.Min.X), float32(pts[0].Y-r.Min.Y))
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p.X-r.Min.X), float32(p.Y-r.Min.Y))
	}
	c.z.ClosePath()
	c.z.Draw(c.img, r, image.NewUniform(col), image.Point{})
}

// bounds returns the smallest rectangle holding every pixel pts touch.
func bounds(pts []image.Point) image.Rectangle {
	r := image.Rectangle{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	r.Max = r.Max.Add(image.Pt(1, 1))
	return r
}

// DrawLine draws a line from a to b. Pixels outside the frame are skipped.
func (c *Canvas) DrawLine(a, b image.Point, col color.RGBA) {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		c.set(a.X, a.Y, col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(a.X)
	y := float64(a.Y)

	for i := 0; i <= int(steps); i++ {
		c.set(int(math.Round(x)), int(math.Round(y)), col)
		x += xInc
		y += yInc
	}
}

func (c *Canvas) set(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return
	}
	offset := c.img.PixOffset(x, y)
	c.img.Pix[offset] = col.R
	c.img.Pix[offset+1] = col.G
	c.img.Pix[offset+2] = col.B
	c.img.Pix[offset+3] = col.A
}
