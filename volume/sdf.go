package volume

import (
	"errors"

	"github.com/deadsy/sdfx/sdf"
	"github.com/soypat/isovis/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// FromSDF samples a signed distance function over its bounding box into a grid
// of the given dimensions. Samples are negative inside the solid so the
// surface of s is the iso-value 0 level set of the returned grid.
func FromSDF(s sdf.SDF3, dims [3]int) (*Grid, error) {
	if s == nil {
		return nil, errors.New("nil SDF3")
	}
	if dims[0] < 2 || dims[1] < 2 || dims[2] < 2 {
		return nil, errors.New("volume dimensions must be 2 or larger")
	}
	// Scale the bounding box about the center to make sure the boundaries
	// aren't on the object surface.
	bb := s.BoundingBox()
	min := r3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z}
	max := r3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z}
	center := r3.Scale(0.5, r3.Add(min, max))
	size := r3.Scale(1.1, r3.Sub(max, min))
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, errors.New("SDF3 has empty bounding box")
	}
	origin := r3.Sub(center, r3.Scale(0.5, size))
	step := d3.DivElem(size, r3.Vec{X: float64(dims[0] - 1), Y: float64(dims[1] - 1), Z: float64(dims[2] - 1)})

	g := NewGrid(dims[0], dims[1], dims[2])
	g.Fill(func(x, y, z int) float64 {
		return s.Evaluate(sdf.V3{
			X: origin.X + float64(x)*step.X,
			Y: origin.Y + float64(y)*step.Y,
			Z: origin.Z + float64(z)*step.Z,
		})
	})
	g.SetTransforms(d3.Transform{}.Scale(r3.Vec{}, size).Translate(origin), d3.Transform{})
	return g, nil
}
