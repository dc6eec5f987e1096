package render_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/isovis/internal/d3"
	"github.com/soypat/isovis/render"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSTLCreateWriteRead(t *testing.T) {
	mesh := render.MarchingTetrahedra(sphereGrid(12), 3.7)
	path := filepath.Join(t.TempDir(), "sphere.stl")
	err := render.CreateSTL(path, render.NewMeshRenderer(mesh))
	require.NoError(t, err)
	fp, err := os.Open(path)
	require.NoError(t, err)
	defer fp.Close()
	bfile, err := io.ReadAll(fp)
	require.NoError(t, err)

	model, err := render.RenderAll(render.NewMeshRenderer(mesh))
	require.NoError(t, err)
	require.Equal(t, mesh.Triangles(), model)
	var b bytes.Buffer
	err = render.WriteSTL(&b, model)
	require.NoError(t, err)
	require.Equal(t, len(bfile), b.Len(), "WriteSTL and CreateSTL output length mismatch")
	require.Equal(t, bfile, b.Bytes(), "WriteSTL and CreateSTL output mismatch")
	require.Equal(t, 84+50*mesh.TriangleCount(), b.Len())
}

func TestWriteSTLEmpty(t *testing.T) {
	var b bytes.Buffer
	require.Error(t, render.WriteSTL(&b, nil))
}

func TestWorldRenderer(t *testing.T) {
	g := layeredGrid()
	// Map [0,1]^3 onto [-18,18]^3.
	model := d3.Transform{}.Scale(r3.Vec{}, d3.Elem(36)).Translate(d3.Elem(-18))
	g.SetTransforms(model, d3.Transform{})
	mesh := render.MarchingTetrahedra(g, 0.5)
	tris, err := render.RenderAll(render.NewWorldRenderer(mesh))
	require.NoError(t, err)
	require.Len(t, tris, mesh.TriangleCount())
	for _, tri := range tris {
		for _, v := range tri {
			require.InDelta(t, 0, v.Z, 1e-12) // z=0.5 maps to the origin plane.
			require.True(t, v.X >= -18 && v.X <= 18)
		}
	}
}
