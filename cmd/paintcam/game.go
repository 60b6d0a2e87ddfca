package main

import (
	"log/slog"

	"paintcam/internal/camera"
	"paintcam/internal/level"
	"paintcam/internal/raster"
)

const (
	// followRadiusSq is the squared distance the camera keeps to the player
	// before it starts to pull in.
	followRadiusSq = 400.0
	followDamping  = 50000.0
)

// game owns one level and steps it frame by frame.
type game struct {
	cam    *camera.Camera
	world  *level.World
	canvas *raster.Canvas
	log    *slog.Logger
}

func newGame(cam *camera.Camera, world *level.World, log *slog.Logger) *game {
	w, h := cam.Viewport()
	return &game{
		cam:    cam,
		world:  world,
		canvas: raster.NewCanvas(w, h),
		log:    log,
	}
}

// update advances the world, then the camera. With a player tank the camera
// keeps looking at it and is pulled in harder the further it falls behind.
func (g *game) update() {
	g.world.Update()
	g.cam.Update()

	p := g.world.Player
	if p == nil {
		return
	}
	target := p.Origin()
	if err := g.cam.SetDirection(target); err != nil {
		g.log.Debug("camera cannot aim at player", "target", target, "err", err)
	}

	dist := g.cam.Origin().VectorTo(target)
	if d := dist.LengthSq(); d > followRadiusSq {
		dist.Scale((d - followRadiusSq) / followDamping)
		dist.Y = 0
		g.cam.Move(dist)
	}
}

// draw renders the current frame into the canvas.
func (g *game) draw() {
	g.canvas.Clear(background)
	g.cam.Render(g.canvas)
}
