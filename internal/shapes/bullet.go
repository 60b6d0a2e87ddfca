package shapes

import (
	"image/color"

	"paintcam/internal/geom"
	"paintcam/internal/poly"
	"paintcam/internal/scene"
)

// BulletSpeed scales the firing direction. The object speed applies on top.
const BulletSpeed = 0.8

const bulletRadius = 0.5

var (
	bulletYellow = color.RGBA{R: 255, G: 255, A: 255}
	bulletOrange = color.RGBA{R: 255, G: 200, A: 255}
)

// bulletFaces are the eight triangles of a double pyramid over a square
// ring (0..3) with a top (4) and bottom (5) tip.
var bulletFaces = [8][3]int{
	{0, 1, 4}, {0, 1, 5},
	{1, 2, 4}, {1, 2, 5},
	{2, 3, 4}, {2, 3, 5},
	{3, 0, 4}, {3, 0, 5},
}

// Bullet is a small diamond that flies in a straight line once shot.
type Bullet struct {
	*Object
	polygons []*poly.Polygon
}

// NewBullet builds a resting bullet at at.
func NewBullet(sc *scene.Scene, at geom.Point) (*Bullet, error) {
	r := bulletRadius
	pts := []*geom.Point{
		{X: at.X, Y: at.Y, Z: at.Z - r},
		{X: at.X - r, Y: at.Y, Z: at.Z},
		{X: at.X, Y: at.Y, Z: at.Z + r},
		{X: at.X + r, Y: at.Y, Z: at.Z},
		{X: at.X, Y: at.Y + r, Z: at.Z},
		{X: at.X, Y: at.Y - r, Z: at.Z},
	}

	b := &builder{sc: sc}
	bullet := &Bullet{Object: NewObject(at, geom.V(0, 0, 1), pts)}
	for i, f := range bulletFaces {
		c := bulletYellow
		if i%4 == 1 || i%4 == 2 {
			c = bulletOrange
		}
		p, err := b.add(c, pts[f[0]], pts[f[1]], pts[f[2]])
		if err != nil {
			return nil, b.fail("bullet", err)
		}
		bullet.polygons = append(bullet.polygons, p)
	}
	return bullet, nil
}

func (b *Bullet) Polygons() []*poly.Polygon { return b.polygons }

// Shoot places the bullet at from and sends it along dir.
func (b *Bullet) Shoot(from geom.Point, dir geom.Vector) {
	b.SetPosition(from)
	b.SetDirection(dir, BulletSpeed)
	b.SetMoving(true)
}
