// Package camera drives a scene frame by frame: it applies movement intents,
// reprojects every polygon, sorts them back to front and draws them.
package camera

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"paintcam/internal/geom"
	"paintcam/internal/poly"
	"paintcam/internal/scene"
)

const (
	DefaultWidth      = 1240
	DefaultHeight     = 720
	DefaultFOV        = 4.0
	DefaultMoveFactor = 0.3

	// TurnStep is the rotation applied per Update while turning, in degrees.
	TurnStep = 2.0
)

// Basis selects how the right and up vectors follow the direction.
type Basis uint8

const (
	// BasisLegacy keeps the cheap basis: right = (d.z, 0, -d.x) and
	// up = (-d.x, -d.z, -d.y) at construction, with only right's X/Z
	// refreshed after a turn. Direction is not renormalised after turns.
	BasisLegacy Basis = iota
	// BasisOrthonormal renormalises direction after each turn and derives
	// right and up from cross products with the world up axis.
	BasisOrthonormal
)

var worldUp = geom.V(0, 1, 0)

// Camera is a single viewer over one scene. It is not safe for concurrent use.
type Camera struct {
	origin    geom.Point
	direction geom.Vector
	right     geom.Vector
	up        geom.Vector

	fov        float64
	width      int
	height     int
	moveFactor float64
	basis      Basis
	wireframe  bool

	move   motion
	strafe motion
	turn   motion

	scene *scene.Scene
	log   *slog.Logger
}

// Option configures a Camera at construction.
type Option func(*Camera)

// WithViewport sets the screen size in pixels. Defaults to 1240x720.
func WithViewport(w, h int) Option {
	return func(c *Camera) { c.width, c.height = w, h }
}

// WithFOV sets the projection scale factor. Defaults to 4.
func WithFOV(fov float64) Option {
	return func(c *Camera) { c.fov = fov }
}

// WithMoveFactor sets the distance moved or strafed per Update. Defaults to 0.3.
func WithMoveFactor(f float64) Option {
	return func(c *Camera) { c.moveFactor = f }
}

// WithWireframe turns the outline pass on or off. Defaults to on.
func WithWireframe(on bool) Option {
	return func(c *Camera) { c.wireframe = on }
}

// WithBasis selects how right and up follow the direction. Defaults to BasisLegacy.
func WithBasis(b Basis) Option {
	return func(c *Camera) { c.basis = b }
}

// WithLogger sets the logger for basis diagnostics. A nil logger keeps
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Camera) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a camera at origin facing direction over sc. The camera keeps
// its own copies of origin and direction.
func New(origin geom.Point, direction geom.Vector, sc *scene.Scene, opts ...Option) (*Camera, error) {
	if direction.IsZero() {
		return nil, fmt.Errorf("camera direction: %w", geom.ErrDegenerate)
	}
	if sc == nil {
		return nil, errors.New("camera: nil scene")
	}
	c := &Camera{
		origin:     origin,
		direction:  direction,
		fov:        DefaultFOV,
		width:      DefaultWidth,
		height:     DefaultHeight,
		moveFactor: DefaultMoveFactor,
		wireframe:  true,
		scene:      sc,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.width <= 0 || c.height <= 0 {
		return nil, fmt.Errorf("camera viewport %dx%d must be positive", c.width, c.height)
	}

	switch c.basis {
	case BasisOrthonormal:
		if err := c.direction.Normalize(); err != nil {
			return nil, err
		}
		if err := c.orthonormalize(); err != nil {
			return nil, fmt.Errorf("camera basis: %w", err)
		}
	default:
		d := c.direction
		c.right = geom.V(d.Z, 0, -d.X)
		c.up = geom.V(-d.X, -d.Z, -d.Y)
	}
	return c, nil
}

// Accessors return copies; callers cannot alias camera state.
func (c *Camera) Origin() geom.Point     { return c.origin }
func (c *Camera) Direction() geom.Vector { return c.direction }
func (c *Camera) Right() geom.Vector     { return c.right }
func (c *Camera) Up() geom.Vector        { return c.up }
func (c *Camera) FOV() float64           { return c.fov }
func (c *Camera) Viewport() (int, int)   { return c.width, c.height }
func (c *Camera) MoveFactor() float64    { return c.moveFactor }
func (c *Camera) Basis() Basis           { return c.basis }
func (c *Camera) Wireframe() bool        { return c.wireframe }
func (c *Camera) Scene() *scene.Scene    { return c.scene }

// Setters. SetPosition and Move change only the origin; the basis is kept.
func (c *Camera) SetFOV(fov float64)       { c.fov = fov }
func (c *Camera) SetMoveFactor(f float64)  { c.moveFactor = f }
func (c *Camera) SetWireframe(on bool)     { c.wireframe = on }
func (c *Camera) ToggleWireframe()         { c.wireframe = !c.wireframe }
func (c *Camera) SetPosition(p geom.Point) { c.origin = p }
func (c *Camera) Move(v geom.Vector)       { c.origin.Add(v) }

// RotateXZ turns the camera by deg degrees in the horizontal plane and
// refreshes the basis.
func (c *Camera) RotateXZ(deg float64) {
	c.direction.RotateXZ(deg)
	if c.basis == BasisOrthonormal {
		if err := c.direction.Normalize(); err != nil {
			c.log.Debug("camera direction collapsed after turn", "err", err)
		}
	}
	c.updateRightAndUp()
}

// SetDirection aims the camera at target, flattened onto the horizontal
// plane: the resulting direction has Y == 0 and unit length. If target is
// the camera position, or straight above or below it, the direction is left
// unchanged and an error wrapping geom.ErrDegenerate is returned.
func (c *Camera) SetDirection(target geom.Point) error {
	d, err := c.origin.VectorTo(target).Normalized()
	if err != nil {
		return fmt.Errorf("aim at %v: %w", target, err)
	}
	d.Y = 0
	if d, err = d.Normalized(); err != nil {
		return fmt.Errorf("aim at %v: %w", target, err)
	}
	c.direction = d
	c.updateRightAndUp()
	return nil
}

func (c *Camera) updateRightAndUp() {
	if c.basis == BasisOrthonormal {
		if err := c.orthonormalize(); err != nil {
			c.log.Debug("camera basis not refreshed", "direction", c.direction, "err", err)
		}
		return
	}
	// up keeps its constructed value.
	c.right.X = c.direction.Z
	c.right.Z = -c.direction.X
}

// orthonormalize derives right and up from direction and the world up axis.
// The previous basis is kept if direction is parallel to world up.
func (c *Camera) orthonormalize() error {
	right, err := worldUp.Cross(c.direction).Normalized()
	if err != nil {
		return err
	}
	up, err := right.Cross(c.direction).Normalized()
	if err != nil {
		return err
	}
	c.right, c.up = right, up
	return nil
}

// Update applies pending intents, reprojects the scene and sorts it back to
// front. Call once per frame before Render.
func (c *Camera) Update() {
	switch c.move {
	case forward:
		c.origin.AddScaled(c.direction, c.moveFactor)
	case backward:
		c.origin.SubScaled(c.direction, c.moveFactor)
	}

	switch c.turn {
	case left:
		c.RotateXZ(-TurnStep)
	case right:
		c.RotateXZ(TurnStep)
	}

	switch c.strafe {
	case left:
		c.origin.SubScaled(c.right, c.moveFactor)
	case right:
		c.origin.AddScaled(c.right, c.moveFactor)
	}

	c.scene.Project(c)
	c.scene.Sort(poly.ByDepthDescending)
}

// Render draws the scene in its current order: every filled polygon first,
// then, with wireframe on, every outline.
func (c *Camera) Render(s poly.Surface) {
	center := image.Pt(c.width/2, c.height/2)
	polygons := c.scene.Polygons()
	for _, p := range polygons {
		p.DrawFilled(s, center)
	}
	if !c.wireframe {
		return
	}
	for _, p := range polygons {
		p.DrawWireframe(s, center)
	}
}
