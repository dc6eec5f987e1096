package render

import (
	"math"

	"github.com/soypat/isovis/volume"
	"gonum.org/v1/gonum/spatial/r3"
)

// MarchingTetrahedra extracts the isosurface of v at iso as an indexed
// triangle mesh in normalized [0,1]^3 volume space. Each lattice cube is
// split into six tetrahedra and every tetrahedron crossing iso contributes
// one or two triangles. Vertices on edges shared between tetrahedra and cells
// are emitted once, so the resulting mesh is watertight inside the volume.
//
// Triangle normals point toward samples below iso. An iso at or beyond the
// range of the volume's samples yields an empty mesh.
// If v implements volume.Placed its transforms are copied to the mesh.
// MarchingTetrahedra panics if any dimension of v is smaller than 2.
func MarchingTetrahedra(v volume.Volume, iso float64) *Mesh {
	dims := v.Dims()
	if dims[0] < 2 || dims[1] < 2 || dims[2] < 2 {
		panic("volume dimensions must be 2 or larger")
	}
	var mesh *Mesh
	min, max := v.ValueRange()
	if iso <= min || iso >= max {
		mesh = &Mesh{}
	} else {
		b := newMeshBuilder()
		for z := 0; z < dims[2]-1; z++ {
			for y := 0; y < dims[1]-1; y++ {
				for x := 0; x < dims[0]-1; x++ {
					c := newCell(v, dims, x, y, z)
					tets := c.tetrahedra()
					for i := range tets {
						b.addTetrahedron(&tets[i], iso)
					}
				}
			}
		}
		mesh = b.finalize()
	}
	if p, ok := v.(volume.Placed); ok {
		mesh.Model = p.ModelMatrix()
		mesh.World = p.WorldMatrix()
	}
	return mesh
}

// addTetrahedron emits the triangles of the isosurface inside t.
func (b *meshBuilder) addTetrahedron(t *tetrahedron, iso float64) {
triangles:
	for _, tmpl := range caseTable[caseCode(t, iso)] {
		var handles [3]uint32
		for k, e := range tmpl {
			v0, v1 := t[e[0]], t[e[1]]
			h, ok := b.resolveVertex(interpolate(v0, v1, iso), v0.index, v1.index)
			if !ok {
				continue triangles
			}
			handles[k] = h
		}
		b.appendTriangle(handles[0], handles[1], handles[2])
	}
}

// interpolate returns the point along the edge (a, b) where the linearly
// interpolated value equals iso. The voxel with the lower index is always
// the edge origin so both orientations of an edge give the same point.
// Degenerate edges with equal or non-finite values yield the midpoint.
func interpolate(a, b voxel, iso float64) r3.Vec {
	if a.index > b.index {
		a, b = b, a
	}
	midpoint := r3.Scale(0.5, r3.Add(a.pos, b.pos))
	dv := b.value - a.value
	if dv == 0 {
		return midpoint
	}
	t := (iso - a.value) / dv
	switch {
	case math.IsNaN(t) || math.IsInf(t, 0):
		return midpoint
	case t == 1:
		// Sample exactly on iso.
		return b.pos
	}
	return r3.Add(a.pos, r3.Scale(t, r3.Sub(b.pos, a.pos)))
}
