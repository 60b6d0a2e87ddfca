// Package level reads arena descriptions from YAML and builds their shapes
// into a scene.
package level

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"paintcam/internal/geom"
	"paintcam/internal/poly"
	"paintcam/internal/scene"
	"paintcam/internal/shapes"
)

//go:embed arena.yaml
var defaultArena []byte

// Vec3 is an [x, y, z] triple.
type Vec3 [3]float64

func (v Vec3) Point() geom.Point   { return geom.P(v[0], v[1], v[2]) }
func (v Vec3) Vector() geom.Vector { return geom.V(v[0], v[1], v[2]) }

// Color is an opaque RGB color written as "#rrggbb".
type Color color.RGBA

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	rgb, ok := strings.CutPrefix(s, "#")
	if !ok || len(rgb) != 6 {
		return fmt.Errorf("line %d: color %q: want #rrggbb", value.Line, s)
	}
	n, err := strconv.ParseUint(rgb, 16, 32)
	if err != nil {
		return fmt.Errorf("line %d: color %q: %w", value.Line, s, err)
	}
	*c = Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}

// Level is one arena file.
type Level struct {
	Camera    CameraStart    `yaml:"camera"`
	Walls     []WallSpec     `yaml:"walls"`
	Cylinders []CylinderSpec `yaml:"cylinders"`
	Boxes     []BoxSpec      `yaml:"boxes"`
	Tanks     []TankSpec     `yaml:"tanks"`
}

type CameraStart struct {
	Position  Vec3 `yaml:"position"`
	Direction Vec3 `yaml:"direction"`
}

type WallSpec struct {
	Start   Vec3    `yaml:"start"`
	End     Vec3    `yaml:"end"`
	Height  float64 `yaml:"height"`
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	From    Color   `yaml:"from"`
	To      Color   `yaml:"to"`
}

type CylinderSpec struct {
	Center   Vec3    `yaml:"center"`
	Height   float64 `yaml:"height"`
	Radius   float64 `yaml:"radius"`
	Segments int     `yaml:"segments"`
	Spin     float64 `yaml:"spin"` // degrees per frame
}

type BoxSpec struct {
	Center Vec3  `yaml:"center"`
	Size   Vec3  `yaml:"size"`
	Color  Color `yaml:"color"`
}

// TankSpec places a tank. Size is the hull; the turret is scaled from it.
type TankSpec struct {
	Center Vec3  `yaml:"center"`
	Size   Vec3  `yaml:"size"`
	Color  Color `yaml:"color"`
	Turret Color `yaml:"turret"`
	Player bool  `yaml:"player"`
}

// Parse decodes a level. Unknown keys are rejected.
func Parse(r io.Reader) (*Level, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var lvl Level
	if err := dec.Decode(&lvl); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty level")
		}
		return nil, err
	}
	if lvl.Camera.Direction.Vector().IsZero() {
		return nil, fmt.Errorf("camera direction: %w", geom.ErrDegenerate)
	}
	players := 0
	for _, t := range lvl.Tanks {
		if t.Player {
			players++
		}
	}
	if players > 1 {
		return nil, fmt.Errorf("%d tanks marked as player, want at most one", players)
	}
	return &lvl, nil
}

// Load reads a level file. An empty path loads the built-in arena.
func Load(path string) (*Level, error) {
	if path == "" {
		lvl, err := Parse(bytes.NewReader(defaultArena))
		if err != nil {
			return nil, fmt.Errorf("parsing built-in arena: %w", err)
		}
		return lvl, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening level %s: %w", path, err)
	}
	defer f.Close()

	lvl, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing level %s: %w", path, err)
	}
	return lvl, nil
}

// Cylinder is a built cylinder with its spin rate.
type Cylinder struct {
	*shapes.Cylinder
	SpinRate float64
}

// World holds the shapes a level built.
type World struct {
	Walls     []*shapes.Wall
	Cylinders []Cylinder
	Boxes     []*shapes.Box
	Tanks     []*shapes.Tank
	Player    *shapes.Tank   // nil if no tank is marked as player
	Bullet    *shapes.Bullet // the player's bullet, nil without a player
}

// Build adds every shape of the level to sc. On error every shape built so
// far is removed again.
func (l *Level) Build(sc *scene.Scene) (*World, error) {
	w := &World{}
	for i, s := range l.Walls {
		wall, err := shapes.NewWall(sc, s.Start.Point(), s.End.Point(), s.Height, s.Columns, s.Rows,
			color.RGBA(s.From), color.RGBA(s.To))
		if err != nil {
			w.remove(sc)
			return nil, fmt.Errorf("wall %d: %w", i, err)
		}
		w.Walls = append(w.Walls, wall)
	}
	for i, s := range l.Cylinders {
		cy, err := shapes.NewCylinder(sc, s.Center.Point(), s.Height, s.Radius, s.Segments)
		if err != nil {
			w.remove(sc)
			return nil, fmt.Errorf("cylinder %d: %w", i, err)
		}
		w.Cylinders = append(w.Cylinders, Cylinder{Cylinder: cy, SpinRate: s.Spin})
	}
	for i, s := range l.Boxes {
		box, err := shapes.NewBox(sc, s.Center.Point(), s.Size.Vector(), color.RGBA(s.Color))
		if err != nil {
			w.remove(sc)
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		w.Boxes = append(w.Boxes, box)
	}
	for i, s := range l.Tanks {
		tank, err := shapes.NewTank(sc, s.Center.Point(), s.Size.Vector(), color.RGBA(s.Color), color.RGBA(s.Turret))
		if err != nil {
			w.remove(sc)
			return nil, fmt.Errorf("tank %d: %w", i, err)
		}
		w.Tanks = append(w.Tanks, tank)
		if s.Player {
			w.Player = tank
		}
	}
	if w.Player != nil {
		// parked inside the hull until fired
		bullet, err := shapes.NewBullet(sc, w.Player.Origin())
		if err != nil {
			w.remove(sc)
			return nil, fmt.Errorf("bullet: %w", err)
		}
		w.Bullet = bullet
	}
	return w, nil
}

// Fire shoots the player's bullet from the muzzle along the barrel. It
// reports false when there is no player.
func (w *World) Fire() bool {
	if w.Player == nil || w.Bullet == nil {
		return false
	}
	w.Bullet.Shoot(w.Player.Muzzle(), w.Player.Aim())
	return true
}

// Update spins the cylinders and advances every box, tank and the bullet
// one frame.
func (w *World) Update() {
	for _, c := range w.Cylinders {
		if c.SpinRate != 0 {
			c.Spin(c.SpinRate)
		}
	}
	for _, b := range w.Boxes {
		b.Update()
	}
	for _, t := range w.Tanks {
		t.Update()
	}
	if w.Bullet != nil {
		w.Bullet.Update()
	}
}

func (w *World) Polygons() []*poly.Polygon {
	var out []*poly.Polygon
	for _, wall := range w.Walls {
		out = append(out, wall.Polygons()...)
	}
	for _, c := range w.Cylinders {
		out = append(out, c.Polygons()...)
	}
	for _, b := range w.Boxes {
		out = append(out, b.Polygons()...)
	}
	for _, t := range w.Tanks {
		out = append(out, t.Polygons()...)
	}
	if w.Bullet != nil {
		out = append(out, w.Bullet.Polygons()...)
	}
	return out
}

func (w *World) remove(sc *scene.Scene) {
	for _, p := range w.Polygons() {
		sc.Remove(p)
	}
}
