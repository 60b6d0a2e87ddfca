package shapes

import (
	"image/color"

	"paintcam/internal/geom"
	"paintcam/internal/poly"
	"paintcam/internal/scene"
)

// TurretTurnStep is the per-update rotation of a turning turret, in degrees.
const TurretTurnStep = 4.0

// Tank is a hull box with a turret and barrel on top. The hull drives; the
// turret follows it and can also turn on its own.
type Tank struct {
	hull     *Object
	turret   *Object
	polygons []*poly.Polygon

	lift  float64 // turret center height above the hull center
	reach float64 // barrel tip distance from the turret axis

	turretTurning int
}

// NewTank builds a tank whose hull of the given size is centered on center,
// heading +Z.
func NewTank(sc *scene.Scene, center geom.Point, size geom.Vector, hull, turret color.RGBA) (*Tank, error) {
	b := &builder{sc: sc}
	t := &Tank{}

	hullCorners, polygons, err := b.box(center, size, hull)
	if err != nil {
		return nil, b.fail("tank hull", err)
	}
	t.polygons = append(t.polygons, polygons...)

	ts := geom.V(size.X*0.6, size.Y*0.6, size.Z*0.45)
	t.lift = -(size.Y + ts.Y) / 2
	turretCenter := geom.P(center.X, center.Y+t.lift, center.Z)
	turretCorners, polygons, err := b.box(turretCenter, ts, turret)
	if err != nil {
		return nil, b.fail("tank turret", err)
	}
	t.polygons = append(t.polygons, polygons...)

	bs := geom.V(size.X*0.12, size.Y*0.12, size.Z*0.6)
	t.reach = ts.Z/2 + bs.Z
	barrelCenter := geom.P(center.X, turretCenter.Y, center.Z+ts.Z/2+bs.Z/2)
	barrelCorners, polygons, err := b.box(barrelCenter, bs, turret)
	if err != nil {
		return nil, b.fail("tank barrel", err)
	}
	t.polygons = append(t.polygons, polygons...)

	t.hull = NewObject(center, geom.V(0, 0, 1), hullCorners)
	t.turret = NewObject(center, geom.V(0, 0, 1), append(turretCorners, barrelCorners...))
	return t, nil
}

func (t *Tank) Origin() geom.Point        { return t.hull.Origin() }
func (t *Tank) Direction() geom.Vector    { return t.hull.Direction() }
func (t *Tank) Polygons() []*poly.Polygon { return t.polygons }

// Aim is the horizontal direction the barrel points in.
func (t *Tank) Aim() geom.Vector {
	d := t.turret.Direction()
	d.Y = 0
	return d
}

// Muzzle is the tip of the barrel.
func (t *Tank) Muzzle() geom.Point {
	o := t.turret.Origin()
	o.Y += t.lift
	return o.Offset(t.Aim().Scaled(t.reach))
}

// Turn sets the hull turning intent; the turret turns along with the hull.
func (t *Tank) Turn(sign int) {
	t.hull.Turn(sign)
	t.turret.Turn(sign)
}

func (t *Tank) SetMoving(on bool) { t.hull.SetMoving(on) }

// TurnTurret sets the turret's own turning intent: negative turns left,
// positive right, zero stops.
func (t *Tank) TurnTurret(sign int) {
	t.turretTurning = min(max(sign, -1), 1)
}

// Update applies one frame of hull and turret motion.
func (t *Tank) Update() {
	t.hull.Update()
	t.turret.Update()
	t.turret.SetPosition(t.hull.Origin())

	if t.turretTurning != 0 {
		step := float64(t.turretTurning) * TurretTurnStep
		t.turret.RotateXZ(step)
		t.turret.direction.RotateXZ(step)
	}
}
