package shapes

import (
	"fmt"
	"image/color"

	"paintcam/internal/geom"
	"paintcam/internal/poly"
	"paintcam/internal/scene"
)

// Wall is a vertical grid of quads between two floor points. A negative
// height builds the wall upwards on screen, since screen Y grows downwards.
type Wall struct {
	polygons []*poly.Polygon
	points   [][]*geom.Point // [row][column]
}

// NewWall builds cols×rows quads from start to end. Colors shade per column
// from `from` towards `to`.
func NewWall(sc *scene.Scene, start, end geom.Point, height float64, cols, rows int, from, to color.RGBA) (*Wall, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("build wall: %dx%d grid: %w", cols, rows, poly.ErrMalformed)
	}
	step := start.VectorTo(end)
	blockWidth := step.Len() / float64(cols)
	if err := step.Normalize(); err != nil {
		return nil, fmt.Errorf("build wall from %v to %v: %w", start, end, err)
	}
	step.Scale(blockWidth)
	blockHeight := height / float64(rows)

	r, g, bl := float64(from.R), float64(from.G), float64(from.B)
	dr := (float64(from.R) - float64(to.R)) / float64(cols+1)
	dg := (float64(from.G) - float64(to.G)) / float64(cols+1)
	db := (float64(from.B) - float64(to.B)) / float64(cols+1)

	w := &Wall{points: make([][]*geom.Point, rows+1)}
	for j := range w.points {
		w.points[j] = make([]*geom.Point, cols+1)
	}

	b := &builder{sc: sc}
	at := start
	for i := 0; i <= cols; i++ {
		r, g, bl = r-dr, g-dg, bl-db
		c := color.RGBA{R: clampChannel(int(r)), G: clampChannel(int(g)), B: clampChannel(int(bl)), A: 255}

		for j := 0; j <= rows; j++ {
			w.points[j][i] = &geom.Point{X: at.X, Y: at.Y + blockHeight*float64(j), Z: at.Z}
			if i == 0 || j == 0 {
				continue
			}
			p, err := b.add(c, w.points[j][i-1], w.points[j][i], w.points[j-1][i], w.points[j-1][i-1])
			if err != nil {
				return nil, b.fail("wall", err)
			}
			w.polygons = append(w.polygons, p)
		}
		at.Add(step)
	}
	return w, nil
}

func (w *Wall) Polygons() []*poly.Polygon { return w.polygons }

// Move shifts the whole wall by v.
func (w *Wall) Move(v geom.Vector) {
	for _, row := range w.points {
		for _, p := range row {
			p.Add(v)
		}
	}
}
