package volume

import (
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	"github.com/soypat/isovis/internal/d3"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestIndexXFastest(t *testing.T) {
	dims := [3]int{3, 4, 5}
	require.Equal(t, 0, Index(dims, 0, 0, 0))
	require.Equal(t, 1, Index(dims, 1, 0, 0))
	require.Equal(t, 3, Index(dims, 0, 1, 0))
	require.Equal(t, 12, Index(dims, 0, 0, 1))
	require.Equal(t, 3*4*5-1, Index(dims, 2, 3, 4))
}

func TestGridVersioning(t *testing.T) {
	g := NewGrid(2, 3, 4)
	other := NewGrid(2, 2, 2)
	id, v0 := g.Identity()
	oid, _ := other.Identity()
	require.NotEqual(t, id, oid)

	g.Set(1, 2, 3, 5)
	require.Equal(t, 5.0, g.At(1, 2, 3))
	_, v1 := g.Identity()
	require.Greater(t, v1, v0)

	min, max := g.ValueRange()
	require.Equal(t, 0.0, min)
	require.Equal(t, 5.0, max)

	g.Set(0, 0, 0, -2)
	min, max = g.ValueRange()
	require.Equal(t, -2.0, min, "stale value range after Set")
	require.Equal(t, 5.0, max)
}

func TestGridFill(t *testing.T) {
	g := NewGrid(4, 3, 2)
	g.Fill(func(x, y, z int) float64 { return float64(Index(g.Dims(), x, y, z)) })
	for i, v := range g.Data() {
		require.Equal(t, float64(i), v)
	}
}

func TestNewGridSmallPanics(t *testing.T) {
	require.Panics(t, func() { NewGrid(1, 2, 2) })
	require.Panics(t, func() { NewGrid(2, 2, 0) })
}

func TestHydrogen(t *testing.T) {
	const size = 17
	g := Hydrogen(size)
	require.Equal(t, [3]int{size, size, size}, g.Dims())
	min, max := g.ValueRange()
	require.GreaterOrEqual(t, min, 0.0, "density is a square")
	require.Greater(t, max, min)

	// Origin sample is exactly zero.
	c := size / 2
	require.Equal(t, 0.0, g.At(c, c, c))
	// Orbital is symmetric under z -> -z and x <-> y.
	for _, p := range [][3]int{{3, 5, 2}, {10, 1, 4}, {8, 8, 0}} {
		x, y, z := p[0], p[1], p[2]
		require.InDelta(t, g.At(x, y, z), g.At(x, y, size-1-z), 1e-18)
		require.InDelta(t, g.At(x, y, z), g.At(y, x, z), 1e-18)
	}
	model := g.ModelMatrix()
	require.True(t, d3.EqualWithin(model.Transform(r3.Vec{}), d3.Elem(-18), 1e-12))
	require.True(t, d3.EqualWithin(model.Transform(d3.Elem(1)), d3.Elem(18), 1e-12))
}

func TestHydrogenDensity(t *testing.T) {
	require.Equal(t, 0.0, HydrogenDensity(r3.Vec{}))
	// On the magic angle 3cos²θ = 1 the orbital has a nodal cone.
	theta := math.Acos(1 / math.Sqrt(3))
	p := r3.Vec{X: 5 * math.Sin(theta), Z: 5 * math.Cos(theta)}
	require.InDelta(t, 0, HydrogenDensity(p), 1e-20)
	require.Greater(t, HydrogenDensity(r3.Vec{Z: 6}), HydrogenDensity(r3.Vec{X: 6}))

	// Along +z the angular term is 2, so psi(r) = 2k r² exp(-r/3).
	k := 1 / (81 * math.Sqrt(6*math.Pi))
	psi := 2 * k * 9 * math.Exp(-1)
	require.InDelta(t, psi*psi, HydrogenDensity(r3.Vec{Z: 3}), 1e-15)
}

func TestFromSDF(t *testing.T) {
	s, err := sdf.Sphere3D(1)
	require.NoError(t, err)
	g, err := FromSDF(s, [3]int{9, 9, 9})
	require.NoError(t, err)
	min, max := g.ValueRange()
	require.Less(t, min, 0.0)
	require.Greater(t, max, 0.0)
	// Center sample lies at the sphere center.
	require.InDelta(t, -1, g.At(4, 4, 4), 1e-12)
	// Model matrix maps the lattice center back to the origin.
	center := g.ModelMatrix().Transform(d3.Elem(0.5))
	require.True(t, d3.EqualWithin(center, r3.Vec{}, 1e-12))

	_, err = FromSDF(s, [3]int{1, 9, 9})
	require.Error(t, err)
	_, err = FromSDF(nil, [3]int{9, 9, 9})
	require.Error(t, err)
}
