package level

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paintcam/internal/camera"
	"paintcam/internal/geom"
	"paintcam/internal/poly"
	"paintcam/internal/scene"
	"paintcam/internal/shapes"
)

const smallLevel = `
camera:
  position: [1, -2, 3]
  direction: [0, 0, -1]
walls:
  - {start: [0, 0, 0], end: [2, 0, 0], height: -1, columns: 2, rows: 1, from: "#ff0000", to: "#0000ff"}
cylinders:
  - {center: [5, 0, 5], height: -3, radius: 1, segments: 6, spin: 2}
boxes:
  - {center: [9, -1, 9], size: [1, 1, 1], color: "#804020"}
tanks:
  - {center: [0, -1, 4], size: [1, 1, 1], color: "#10a0ff", turret: "#0000ff", player: true}
`

func TestParse(t *testing.T) {
	lvl, err := Parse(strings.NewReader(smallLevel))
	require.NoError(t, err)

	assert.Equal(t, geom.P(1, -2, 3), lvl.Camera.Position.Point())
	assert.Equal(t, geom.V(0, 0, -1), lvl.Camera.Direction.Vector())
	require.Len(t, lvl.Walls, 1)
	assert.Equal(t, Color{R: 255, A: 255}, lvl.Walls[0].From)
	assert.Equal(t, 2, lvl.Walls[0].Columns)
	require.Len(t, lvl.Cylinders, 1)
	assert.Equal(t, 2.0, lvl.Cylinders[0].Spin)
	require.Len(t, lvl.Boxes, 1)
	assert.Equal(t, Color{R: 0x80, G: 0x40, B: 0x20, A: 255}, lvl.Boxes[0].Color)
	require.Len(t, lvl.Tanks, 1)
	assert.Equal(t, Color{R: 0x10, G: 0xa0, B: 0xff, A: 255}, lvl.Tanks[0].Color)
	assert.Equal(t, Color{B: 0xff, A: 255}, lvl.Tanks[0].Turret)
	assert.True(t, lvl.Tanks[0].Player)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"unknown key", "camera:\n  direction: [0, 0, 1]\nlights: []\n"},
		{"short color", "camera:\n  direction: [0, 0, 1]\nboxes:\n  - {color: \"#fff\"}\n"},
		{"bad hex", "camera:\n  direction: [0, 0, 1]\nboxes:\n  - {color: \"#gg0000\"}\n"},
		{"zero direction", "camera:\n  position: [0, 0, 0]\n"},
		{"two players", "camera:\n  direction: [0, 0, 1]\ntanks:\n  - {player: true}\n  - {player: true}\n"},
		{"player box", "camera:\n  direction: [0, 0, 1]\nboxes:\n  - {player: true}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadDefaultArena(t *testing.T) {
	lvl, err := Load("")
	require.NoError(t, err)
	require.Len(t, lvl.Walls, 14)
	require.Len(t, lvl.Cylinders, 1)
	assert.Equal(t, geom.P(0, -4, 10), lvl.Camera.Position.Point())

	sc := scene.New(scene.DefaultCapacity)
	w, err := lvl.Build(sc)
	require.NoError(t, err)
	require.NotNil(t, w.Player)
	assert.Len(t, w.Walls, 14)
	require.NotNil(t, w.Bullet)
	// 6 long walls of 40x6, 4 of 15x6, 2 gates of 10x3, 2 corridor walls of
	// 20x3, the cylinder, a crate, a tank of three boxes and its bullet
	want := 6*240 + 4*90 + 2*30 + 2*60 + 16 + 6 + 18 + 8
	assert.Equal(t, want, sc.Len())
	assert.Len(t, w.Polygons(), want)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallLevel), 0o644))

	lvl, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, lvl.Walls, 1)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildRollsBack(t *testing.T) {
	lvl, err := Parse(strings.NewReader(smallLevel))
	require.NoError(t, err)

	sc := scene.New(5)
	_, err = lvl.Build(sc)
	require.ErrorIs(t, err, scene.ErrCapacityExceeded)
	assert.Zero(t, sc.Len())
}

func TestWorldUpdate(t *testing.T) {
	lvl, err := Parse(strings.NewReader(smallLevel))
	require.NoError(t, err)
	w, err := lvl.Build(scene.New(0))
	require.NoError(t, err)

	corner := w.Cylinders[0].Polygons()[0].Corners()[0]
	before := *corner
	w.Player.SetMoving(true)
	w.Update()

	assert.NotEqual(t, before, *corner)
	assert.InDelta(t, 4.3, w.Player.Origin().Z, 1e-9)
}

func TestDefaultArenaIsUpright(t *testing.T) {
	lvl, err := Load("")
	require.NoError(t, err)
	sc := scene.New(0)
	w, err := lvl.Build(sc)
	require.NoError(t, err)

	cam, err := camera.New(lvl.Camera.Position.Point(), lvl.Camera.Direction.Vector(), sc)
	require.NoError(t, err)
	require.NoError(t, cam.SetDirection(w.Player.Origin()))

	// a wall face straight ahead: floor corners first, then the top
	floor, top := geom.P(0, 0, -40), geom.P(0, -12, -40)
	side := geom.P(1, 0, -40)
	p, err := poly.New(color.RGBA{}, &floor, &side, &top)
	require.NoError(t, err)
	p.Project(cam)

	vis := p.Visible()
	require.Len(t, vis, 3)
	assert.Positive(t, vis[0].Y, "floor below the screen center")
	assert.Negative(t, vis[2].Y, "wall top above the screen center")
}

func TestFireShootsFromMuzzle(t *testing.T) {
	lvl, err := Parse(strings.NewReader(smallLevel))
	require.NoError(t, err)
	w, err := lvl.Build(scene.New(0))
	require.NoError(t, err)

	muzzle := w.Player.Muzzle()
	require.True(t, w.Fire())
	assert.InDelta(t, muzzle.Z, w.Bullet.Origin().Z, 1e-9)

	w.Update()
	step := shapes.BulletSpeed * shapes.ObjectSpeed
	assert.InDelta(t, muzzle.Z+step, w.Bullet.Origin().Z, 1e-9)

	empty, err := Parse(strings.NewReader("camera:\n  direction: [0, 0, 1]\n"))
	require.NoError(t, err)
	nw, err := empty.Build(scene.New(0))
	require.NoError(t, err)
	assert.Nil(t, nw.Bullet)
	assert.False(t, nw.Fire())
}

func TestColorMarshal(t *testing.T) {
	out, err := Color(color.RGBA{R: 0x3c, G: 0x8c, B: 0x3c, A: 255}).MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "#3c8c3c", out)
}
