package main

import "github.com/go-gl/glfw/v3.3/glfw"

// handleKey maps a key event onto camera and player intents. It reports
// false when the key asks to quit.
//
//	W/S      camera forward/backward
//	Q/E      camera strafe left/right
//	A/D      player turret turn left/right, camera turn without a player
//	arrows   player tank turn, drive while Up is held
//	Space    fire the player's bullet
//	R        toggle wireframe
//	Escape   quit
func (g *game) handleKey(key glfw.Key, action glfw.Action) bool {
	if action == glfw.Repeat {
		return true
	}
	down := action == glfw.Press
	cam := g.cam

	switch key {
	case glfw.KeyEscape:
		return !down
	case glfw.KeyW:
		if down {
			cam.Forward()
		} else {
			cam.StopMove()
		}
	case glfw.KeyS:
		if down {
			cam.Backward()
		} else {
			cam.StopMove()
		}
	case glfw.KeyQ:
		if down {
			cam.StrafeLeft()
		} else {
			cam.StopStrafe()
		}
	case glfw.KeyE:
		if down {
			cam.StrafeRight()
		} else {
			cam.StopStrafe()
		}
	case glfw.KeyA, glfw.KeyD:
		g.turn(key, down)
	case glfw.KeySpace:
		if down && g.world.Fire() {
			g.log.Debug("fired", "from", g.world.Player.Muzzle())
		}
	case glfw.KeyR:
		if down {
			cam.ToggleWireframe()
			g.log.Debug("wireframe toggled", "on", cam.Wireframe())
		}
	case glfw.KeyLeft, glfw.KeyRight, glfw.KeyUp:
		g.drivePlayer(key, down)
	}
	return true
}

// turn swings the player's turret. Without a player it turns the camera,
// which otherwise keeps aiming at the player.
func (g *game) turn(key glfw.Key, down bool) {
	sign := 0
	if down {
		sign = 1
		if key == glfw.KeyA {
			sign = -1
		}
	}
	if p := g.world.Player; p != nil {
		p.TurnTurret(sign)
		return
	}
	switch sign {
	case -1:
		g.cam.TurnLeft()
	case 1:
		g.cam.TurnRight()
	default:
		g.cam.StopTurn()
	}
}

func (g *game) drivePlayer(key glfw.Key, down bool) {
	p := g.world.Player
	if p == nil {
		return
	}
	switch key {
	case glfw.KeyLeft:
		if down {
			p.Turn(-1)
		} else {
			p.Turn(0)
		}
	case glfw.KeyRight:
		if down {
			p.Turn(1)
		} else {
			p.Turn(0)
		}
	case glfw.KeyUp:
		p.SetMoving(down)
	}
}
