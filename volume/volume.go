// Package volume defines the scalar volumes isosurfaces are extracted from
// and a few ways of filling them.
package volume

import (
	"sync/atomic"

	"github.com/soypat/isovis/internal/d3"
	"gonum.org/v1/gonum/floats"
)

// Volume is a read-only 3D lattice of scalar samples.
type Volume interface {
	// Dims returns the number of samples along x, y and z.
	Dims() [3]int
	// At returns the sample at lattice position (x, y, z).
	At(x, y, z int) float64
	// ValueRange returns the smallest and largest sample in the volume.
	ValueRange() (min, max float64)
}

// Versioned is implemented by volumes that can tell when their contents changed.
// Two calls returning the same id and version are guaranteed to observe the same samples.
type Versioned interface {
	Identity() (id, version uint64)
}

// Placed is implemented by volumes carrying model and world transforms.
// Meshes extracted from them inherit the transforms unchanged.
type Placed interface {
	ModelMatrix() d3.Transform
	WorldMatrix() d3.Transform
}

// Index returns the linear index of (x, y, z) in a volume of dimensions dims.
// x varies fastest.
func Index(dims [3]int, x, y, z int) int {
	return x + dims[0]*(y+dims[1]*z)
}

var lastID uint64

// Grid is a dense in-memory Volume.
type Grid struct {
	dims    [3]int
	data    []float64
	model   d3.Transform
	world   d3.Transform
	id      uint64
	version uint64
	// cached value range, valid while rangeOK is set.
	min, max float64
	rangeOK  bool
}

var (
	_ Volume    = (*Grid)(nil)
	_ Versioned = (*Grid)(nil)
	_ Placed    = (*Grid)(nil)
)

// NewGrid returns a zero filled Grid of nx*ny*nz samples.
// It panics if a dimension is smaller than 2: such a volume has no cells.
func NewGrid(nx, ny, nz int) *Grid {
	if nx < 2 || ny < 2 || nz < 2 {
		panic("volume dimensions must be 2 or larger")
	}
	return &Grid{
		dims: [3]int{nx, ny, nz},
		data: make([]float64, nx*ny*nz),
		id:   atomic.AddUint64(&lastID, 1),
	}
}

// Dims returns the sample count along each axis.
func (g *Grid) Dims() [3]int { return g.dims }

// At returns the sample at (x, y, z).
func (g *Grid) At(x, y, z int) float64 {
	return g.data[Index(g.dims, x, y, z)]
}

// Set sets the sample at (x, y, z).
func (g *Grid) Set(x, y, z int, v float64) {
	g.data[Index(g.dims, x, y, z)] = v
	g.touch()
}

// Fill sets every sample of the grid to f evaluated at the sample's lattice position.
func (g *Grid) Fill(f func(x, y, z int) float64) {
	i := 0
	for z := 0; z < g.dims[2]; z++ {
		for y := 0; y < g.dims[1]; y++ {
			for x := 0; x < g.dims[0]; x++ {
				g.data[i] = f(x, y, z)
				i++
			}
		}
	}
	g.touch()
}

// Data returns the underlying samples in linear index order.
// Callers modifying the returned slice must call Touch afterwards.
func (g *Grid) Data() []float64 { return g.data }

// Touch marks the grid as modified.
func (g *Grid) Touch() { g.touch() }

func (g *Grid) touch() {
	g.version++
	g.rangeOK = false
}

// ValueRange returns the minimum and maximum sample of the grid.
func (g *Grid) ValueRange() (min, max float64) {
	if !g.rangeOK {
		g.min = floats.Min(g.data)
		g.max = floats.Max(g.data)
		g.rangeOK = true
	}
	return g.min, g.max
}

// Identity returns the grid's unique id and its modification count.
func (g *Grid) Identity() (id, version uint64) { return g.id, g.version }

// ModelMatrix returns the grid's model transform.
func (g *Grid) ModelMatrix() d3.Transform { return g.model }

// WorldMatrix returns the grid's world transform.
func (g *Grid) WorldMatrix() d3.Transform { return g.world }

// SetTransforms sets the model and world transforms of the grid.
func (g *Grid) SetTransforms(model, world d3.Transform) {
	g.model = model
	g.world = world
	g.version++
}
