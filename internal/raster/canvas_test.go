package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

func TestClear(t *testing.T) {
	c := NewCanvas(7, 5)
	c.Clear(green)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			assert.Equal(t, green, c.Image().RGBAAt(x, y))
		}
	}
}

func TestFillPolygon(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(black)
	c.FillPolygon([]image.Point{{5, 5}, {15, 5}, {15, 15}, {5, 15}}, red)

	assert.Equal(t, red, c.Image().RGBAAt(10, 10))
	assert.Equal(t, red, c.Image().RGBAAt(6, 14))
	assert.Equal(t, black, c.Image().RGBAAt(2, 2))
	assert.Equal(t, black, c.Image().RGBAAt(17, 10))
}

func TestFillPolygonPartlyOffscreen(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(black)
	c.FillPolygon([]image.Point{{-30, -30}, {10, -30}, {10, 40}, {-30, 40}}, red)

	assert.Equal(t, red, c.Image().RGBAAt(0, 0))
	assert.Equal(t, red, c.Image().RGBAAt(8, 19))
	assert.Equal(t, black, c.Image().RGBAAt(15, 10))
}

func TestFillPolygonAtOffset(t *testing.T) {
	c := NewCanvas(40, 40)
	c.Clear(black)
	c.FillPolygon([]image.Point{{20, 10}, {30, 10}, {30, 20}, {20, 20}}, red)

	img := c.Image()
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			want := black
			if x >= 20 && x < 30 && y >= 10 && y < 20 {
				want = red
			}
			assert.Equal(t, want, img.RGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestFillPolygonKeepsBoxRemainder(t *testing.T) {
	c := NewCanvas(40, 40)
	c.Clear(green)
	c.FillPolygon([]image.Point{{10, 10}, {30, 10}, {10, 30}}, red)

	img := c.Image()
	assert.Equal(t, red, img.RGBAAt(12, 12))
	// inside the bounding box but outside the triangle
	assert.Equal(t, green, img.RGBAAt(28, 28))
	assert.Equal(t, green, img.RGBAAt(25, 25))
	assert.Equal(t, green, img.RGBAAt(5, 5))
	assert.Equal(t, green, img.RGBAAt(35, 20))
}

func TestFillPolygonOffscreen(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(black)
	assert.NotPanics(t, func() {
		c.FillPolygon([]image.Point{{20, 20}, {30, 20}, {30, 30}}, red)
	})
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(t, black, c.Image().RGBAAt(x, y))
		}
	}
}

func TestFillPolygonDegenerate(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(black)
	c.FillPolygon([]image.Point{{1, 1}, {8, 8}}, red)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(t, black, c.Image().RGBAAt(x, y))
		}
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(black)
	c.DrawLine(image.Pt(1, 1), image.Pt(8, 1), red)
	for x := 1; x <= 8; x++ {
		assert.Equal(t, red, c.Image().RGBAAt(x, 1))
	}
	assert.Equal(t, black, c.Image().RGBAAt(9, 1))

	c.DrawLine(image.Pt(0, 0), image.Pt(9, 9), green)
	for i := 0; i < 10; i++ {
		assert.Equal(t, green, c.Image().RGBAAt(i, i))
	}

	c.DrawLine(image.Pt(4, 4), image.Pt(4, 4), red)
	assert.Equal(t, red, c.Image().RGBAAt(4, 4))
}

func TestDrawLineClipsToFrame(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(black)
	assert.NotPanics(t, func() {
		c.DrawLine(image.Pt(-50, 5), image.Pt(50, 5), red)
	})
	assert.Equal(t, red, c.Image().RGBAAt(0, 5))
	assert.Equal(t, red, c.Image().RGBAAt(9, 5))
}
