package poly

import (
	"image"
	"image/color"
)

// Surface is a 2D pixel target. Implementations clip anything out of bounds.
type Surface interface {
	FillPolygon(pts []image.Point, c color.RGBA)
	DrawLine(a, b image.Point, c color.RGBA)
}
