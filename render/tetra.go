package render

import (
	"github.com/soypat/isovis/volume"
	"gonum.org/v1/gonum/spatial/r3"
)

// voxel is one volume sample visited during traversal.
type voxel struct {
	pos   r3.Vec  // position in normalized [0,1]^3 volume space.
	value float64 // scalar sample.
	index int     // linear index in the source volume.
}

// cell holds the 8 corners of a unit lattice cube. Corner k lies at
// offset (k&1, k>>1&1, k>>2&1) from the cell origin.
type cell [8]voxel

type tetrahedron [4]voxel

// tetrahedraIDs decomposes a cell into 6 positively oriented tetrahedra that
// tile the cube. Every cell cuts its faces along the diagonals through
// corners 2 and 5 so neighboring cells agree on the shared face triangles.
var tetrahedraIDs = [6][4]uint8{
	{0, 1, 2, 5},
	{1, 3, 2, 5},
	{3, 2, 5, 7},
	{0, 2, 4, 5},
	{6, 4, 2, 5},
	{6, 7, 5, 2},
}

// newCell reads the cell with lattice origin (x,y,z). The origin must satisfy
// x < dims[0]-1, y < dims[1]-1 and z < dims[2]-1.
func newCell(v volume.Volume, dims [3]int, x, y, z int) (c cell) {
	inv := r3.Vec{
		X: 1 / float64(dims[0]-1),
		Y: 1 / float64(dims[1]-1),
		Z: 1 / float64(dims[2]-1),
	}
	for k := range c {
		cx := x + k&1
		cy := y + k>>1&1
		cz := z + k>>2&1
		c[k] = voxel{
			pos:   r3.Vec{X: float64(cx) * inv.X, Y: float64(cy) * inv.Y, Z: float64(cz) * inv.Z},
			value: v.At(cx, cy, cz),
			index: volume.Index(dims, cx, cy, cz),
		}
	}
	return c
}

// tetrahedra returns the fixed decomposition of the cell.
func (c *cell) tetrahedra() (tets [6]tetrahedron) {
	for i, ids := range tetrahedraIDs {
		for j, id := range ids {
			tets[i][j] = c[id]
		}
	}
	return tets
}
