package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"paintcam/internal/camera"
	"paintcam/internal/scene"
)

// DefaultPath is where the binary looks for its config when PAINTCAM_CONFIG is unset.
const DefaultPath = "config/paintcam.yaml"

// Config holds everything the viewer reads at startup.
type Config struct {
	LogLevel string       `yaml:"log_level"` // debug, info, warn, error
	Window   WindowConfig `yaml:"window"`
	Camera   CameraConfig `yaml:"camera"`
	Scene    SceneConfig  `yaml:"scene"`
}

// WindowConfig sizes the window. The software frame has the same size.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type CameraConfig struct {
	FOV        float64 `yaml:"fov"`
	MoveFactor float64 `yaml:"move_factor"`
	Wireframe  bool    `yaml:"wireframe"`
	Basis      string  `yaml:"basis"` // legacy or orthonormal
}

type SceneConfig struct {
	Capacity int `yaml:"capacity"` // 0 means unbounded

	// Level is a YAML level file. Empty loads the built-in arena.
	Level string `yaml:"level"`
}

// Default returns the config used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Window: WindowConfig{
			Width:  camera.DefaultWidth,
			Height: camera.DefaultHeight,
			Title:  "paintcam",
			VSync:  true,
		},
		Camera: CameraConfig{
			FOV:        camera.DefaultFOV,
			MoveFactor: camera.DefaultMoveFactor,
			Wireframe:  true,
			Basis:      "legacy",
		},
		Scene: SceneConfig{
			Capacity: scene.DefaultCapacity,
		},
	}
}

// Load reads config from a YAML file on top of Default.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.FOV <= 0 {
		errs = append(errs, fmt.Errorf("camera fov %v must be positive", c.Camera.FOV))
	}
	if c.Camera.MoveFactor <= 0 {
		errs = append(errs, fmt.Errorf("camera move_factor %v must be positive", c.Camera.MoveFactor))
	}
	if _, err := c.Camera.ParseBasis(); err != nil {
		errs = append(errs, err)
	}
	if c.Scene.Capacity < 0 {
		errs = append(errs, fmt.Errorf("scene capacity %d must not be negative", c.Scene.Capacity))
	}
	return errors.Join(errs...)
}

// ParseBasis maps the basis name onto a camera basis mode.
func (c CameraConfig) ParseBasis() (camera.Basis, error) {
	switch strings.ToLower(c.Basis) {
	case "", "legacy":
		return camera.BasisLegacy, nil
	case "orthonormal":
		return camera.BasisOrthonormal, nil
	default:
		return camera.BasisLegacy, fmt.Errorf("unknown camera basis %q", c.Basis)
	}
}

// Options turns the camera section and window size into camera options.
func (c Config) Options() []camera.Option {
	basis, _ := c.Camera.ParseBasis()
	return []camera.Option{
		camera.WithViewport(c.Window.Width, c.Window.Height),
		camera.WithFOV(c.Camera.FOV),
		camera.WithMoveFactor(c.Camera.MoveFactor),
		camera.WithWireframe(c.Camera.Wireframe),
		camera.WithBasis(basis),
	}
}

// SlogLevel converts the log level name to slog.Level.
// Defaults to Info if invalid or empty.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
