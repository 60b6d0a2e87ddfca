package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func assertVector(t *testing.T, want, got Vector) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func TestNormalizeUnitLength(t *testing.T) {
	tests := []Vector{
		V(1, 0, 0),
		V(3, 4, 0),
		V(-2, 7, 0.5),
		V(1e-6, -1e-6, 1e-6),
		V(1e6, 2e6, -3e6),
	}
	for _, v := range tests {
		t.Run(v.String(), func(t *testing.T) {
			require.NoError(t, v.Normalize())
			assert.InDelta(t, 1, v.Len(), eps)
		})
	}
}

func TestNormalizeZero(t *testing.T) {
	var v Vector
	err := v.Normalize()
	require.ErrorIs(t, err, ErrDegenerate)
	assert.True(t, v.IsZero(), "zero vector must not be changed")

	_, err = Vector{}.Normalized()
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestRotationRoundTrip(t *testing.T) {
	planes := []struct {
		name   string
		rotate func(v *Vector, deg float64)
	}{
		{"XY", (*Vector).RotateXY},
		{"XZ", (*Vector).RotateXZ},
		{"YZ", (*Vector).RotateYZ},
	}
	orig := V(1.5, -2, 3.25)
	for _, pl := range planes {
		for _, deg := range []float64{0, 30, 90, 180, 270} {
			v := orig
			pl.rotate(&v, deg)
			pl.rotate(&v, -deg)
			assertVector(t, orig, v)
		}
	}
}

func TestRotateXZConvention(t *testing.T) {
	v := V(1, 0, 0)
	v.RotateXZ(90)
	assertVector(t, V(0, 0, -1), v)

	v = V(0, 0, 1)
	v.RotateXZ(90)
	assertVector(t, V(1, 0, 0), v)

	// a 30 degree turn, checked against the formula directly
	v = V(2, 5, 3)
	r := 30 * math.Pi / 180
	want := V(2*math.Cos(r)+3*math.Sin(r), 5, -2*math.Sin(r)+3*math.Cos(r))
	v.RotateXZ(30)
	assertVector(t, want, v)
}

func TestRotateXYAndYZConvention(t *testing.T) {
	v := V(1, 0, 0)
	v.RotateXY(90)
	assertVector(t, V(0, 1, 0), v)

	v = V(0, 1, 0)
	v.RotateYZ(90)
	assertVector(t, V(0, 0, 1), v)
}

func TestCrossAndDot(t *testing.T) {
	x, y := V(1, 0, 0), V(0, 1, 0)
	assertVector(t, V(0, 0, 1), x.Cross(y))
	assert.Equal(t, 0.0, x.Dot(y))
	assert.Equal(t, 14.0, V(1, 2, 3).LengthSq())
	assert.Equal(t, 6.0, V(1, 1, 1).DotPoint(P(1, 2, 3)))
}

func TestScalarProjection(t *testing.T) {
	got, err := ScalarProjection(V(3, 4, 0), V(2, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 3, got, eps)

	got, err = ScalarProjection(V(0, 0, -5), V(0, 0, 1))
	require.NoError(t, err)
	assert.InDelta(t, -5, got, eps)

	_, err = ScalarProjection(V(1, 1, 1), Vector{})
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestVectorMutators(t *testing.T) {
	v := V(1, 2, 3)
	v.Add(V(1, 1, 1))
	assertVector(t, V(2, 3, 4), v)
	v.Sub(V(2, 0, 0))
	assertVector(t, V(0, 3, 4), v)
	v.AddScaled(V(1, 0, 0), 0.5)
	assertVector(t, V(0.5, 3, 4), v)
	v.Scale(2)
	assertVector(t, V(1, 6, 8), v)
	v.Invert()
	assertVector(t, V(-1, -6, -8), v)
	assertVector(t, V(1, 6, 8), v.Inverted())
	assertVector(t, V(-1, -6, -8), v)
}

func TestPointMoves(t *testing.T) {
	p := P(1, 1, 1)
	p.AddScaled(V(0, 0, 1), 0.3)
	assert.InDelta(t, 1.3, p.Z, eps)
	p.SubScaled(V(1, 0, 0), 2)
	assert.InDelta(t, -1, p.X, eps)

	var v Vector
	v.SetBetween(P(1, 2, 3), P(4, 6, 3))
	assertVector(t, V(3, 4, 0), v)
	assert.Equal(t, 5.0, v.Len())

	q := P(0, 0, 0).Offset(V(1, 2, 3))
	assert.Equal(t, P(1, 2, 3), q)
}
