package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"paintcam/internal/camera"
	"paintcam/internal/config"
	"paintcam/internal/level"
	"paintcam/internal/scene"
)

const (
	// tick is the fixed update step. All speeds in the scene are per tick.
	tick     = 1.0 / 60
	// maxTicks bounds catch-up work after a stall.
	maxTicks = 5
)

var background = color.RGBA{R: 16, G: 16, B: 24, A: 255}

func main() {
	// glfw and GL calls must stay on the main thread.
	runtime.LockOSThread()

	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := config.DefaultPath
	if p := os.Getenv("PAINTCAM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	slog.Info("paintcam starting", "config", cfgPath, "log_level", cfg.LogLevel)

	lvl, err := level.Load(cfg.Scene.Level)
	if err != nil {
		return fmt.Errorf("loading level: %w", err)
	}
	sc := scene.New(cfg.Scene.Capacity)
	world, err := lvl.Build(sc)
	if err != nil {
		return fmt.Errorf("building level: %w", err)
	}

	opts := append(cfg.Options(), camera.WithLogger(slog.Default()))
	cam, err := camera.New(lvl.Camera.Position.Point(), lvl.Camera.Direction.Vector(), sc, opts...)
	if err != nil {
		return fmt.Errorf("creating camera: %w", err)
	}
	slog.Info("level built",
		"level", cfg.Scene.Level,
		"polygons", sc.Len(),
		"walls", len(world.Walls),
		"cylinders", len(world.Cylinders),
		"boxes", len(world.Boxes),
		"tanks", len(world.Tanks))

	g := newGame(cam, world, slog.Default())

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initializing glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	title := cfg.Window.Title
	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, title, nil, nil)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing gl: %w", err)
	}
	slog.Info("OpenGL ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	scr, err := newScreen(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	defer scr.delete()

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if !g.handleKey(key, action) {
			w.SetShouldClose(true)
		}
	})

	lastFrameTime := glfw.GetTime()
	lastFpsTime := lastFrameTime
	frameCount := 0
	lag := 0.0

	for !window.ShouldClose() {
		currentTime := glfw.GetTime()
		lag += currentTime - lastFrameTime
		lastFrameTime = currentTime

		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | FPS: %d", title, frameCount))
			frameCount = 0
			lastFpsTime = currentTime
		}

		for n := 0; lag >= tick && n < maxTicks; n++ {
			g.update()
			lag -= tick
		}
		if lag > tick {
			lag = 0
		}

		g.draw()
		scr.present(g.canvas.Image())

		window.SwapBuffers()
		glfw.PollEvents()
	}
	slog.Info("paintcam stopped")
	return nil
}
