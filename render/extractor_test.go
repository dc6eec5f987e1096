package render_test

import (
	"testing"

	"github.com/soypat/isovis/render"
	"github.com/soypat/isovis/volume"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestExtractorCache(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ex := render.NewExtractor(zap.New(core))
	g := sphereGrid(8)

	m1 := ex.Extract(g, 2)
	m2 := ex.Extract(g, 2)
	require.Same(t, m1, m2, "unchanged volume and iso must hit cache")
	require.Equal(t, 1, logs.FilterMessage("cache hit").Len())

	m3 := ex.Extract(g, 2.5)
	require.NotSame(t, m1, m3, "iso change must recompute")

	g.Set(0, 0, 0, 100)
	m4 := ex.Extract(g, 2.5)
	require.NotSame(t, m3, m4, "volume change must recompute")
	require.Same(t, m4, ex.Extract(g, 2.5))

	ex.Invalidate()
	m5 := ex.Extract(g, 2.5)
	require.NotSame(t, m4, m5)
	require.Equal(t, m4.Indices, m5.Indices)
	require.Equal(t, 4, logs.FilterMessage("cache miss").Len())
	require.Equal(t, 4, logs.FilterMessage("extracted isosurface").Len())
}

func TestExtractorDifferentVolumes(t *testing.T) {
	ex := render.NewExtractor(nil)
	a, b := sphereGrid(8), sphereGrid(8)
	ma := ex.Extract(a, 2)
	mb := ex.Extract(b, 2)
	require.NotSame(t, ma, mb, "distinct volumes share cache entry")
	require.Equal(t, ma.Indices, mb.Indices)
}

func TestExtractorUncachedVolume(t *testing.T) {
	ex := render.NewExtractor(nil)
	var v volume.Volume = unversioned{sphereGrid(6)}
	m1 := ex.Extract(v, 2)
	m2 := ex.Extract(v, 2)
	require.NotSame(t, m1, m2)
	require.NotZero(t, m1.TriangleCount())
}

// unversioned hides the identity of the wrapped volume.
type unversioned struct{ g *volume.Grid }

func (u unversioned) Dims() [3]int                   { return u.g.Dims() }
func (u unversioned) At(x, y, z int) float64         { return u.g.At(x, y, z) }
func (u unversioned) ValueRange() (min, max float64) { return u.g.ValueRange() }
