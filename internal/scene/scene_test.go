package scene

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paintcam/internal/geom"
	"paintcam/internal/poly"
)

func newTriangle(t *testing.T) *poly.Polygon {
	t.Helper()
	p, err := poly.New(color.RGBA{}, &geom.Point{}, &geom.Point{X: 1}, &geom.Point{Y: 1})
	require.NoError(t, err)
	return p
}

func TestAddRespectsCapacity(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		adds      int
		wantErr   bool
		wantCount int
	}{
		{name: "below capacity", capacity: 3, adds: 2, wantCount: 2},
		{name: "fill to capacity", capacity: 3, adds: 3, wantCount: 3},
		{name: "overflow by one", capacity: 3, adds: 4, wantErr: true, wantCount: 3},
		{name: "unbounded", capacity: 0, adds: 50, wantCount: 50},
		{name: "negative is unbounded", capacity: -1, adds: 5, wantCount: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.capacity)
			var err error
			for n := 0; n < tt.adds; n++ {
				if err = s.Add(newTriangle(t)); err != nil {
					break
				}
			}
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCapacityExceeded)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCount, s.Len())
		})
	}
}

func TestOverflowKeepsExistingPolygons(t *testing.T) {
	s := New(2)
	a, b := newTriangle(t), newTriangle(t)
	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))
	require.ErrorIs(t, s.Add(newTriangle(t)), ErrCapacityExceeded)
	assert.Equal(t, []*poly.Polygon{a, b}, s.Polygons())
}

func TestAddNil(t *testing.T) {
	s := New(0)
	assert.ErrorIs(t, s.Add(nil), poly.ErrMalformed)
	assert.Zero(t, s.Len())
}

func TestRemove(t *testing.T) {
	s := New(2)
	a, b, c := newTriangle(t), newTriangle(t), newTriangle(t)
	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))

	assert.True(t, s.Remove(a))
	assert.False(t, s.Remove(a))
	assert.Equal(t, []*poly.Polygon{b}, s.Polygons())

	// freed slot is usable again
	require.NoError(t, s.Add(c))
	assert.Equal(t, []*poly.Polygon{b, c}, s.Polygons())
}

func TestSortIsStable(t *testing.T) {
	s := New(0)
	ps := []*poly.Polygon{newTriangle(t), newTriangle(t), newTriangle(t)}
	for _, p := range ps {
		require.NoError(t, s.Add(p))
	}
	// none projected yet, so every depth is zero
	s.Sort(poly.ByDepthDescending)
	assert.Equal(t, ps, s.Polygons())
}
