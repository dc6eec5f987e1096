package volume

import (
	"math"

	"github.com/soypat/isovis/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// hydrogenExtent is the half side of the cube, in Bohr radii, sampled by Hydrogen.
const hydrogenExtent = 18

// Hydrogen returns a size^3 grid sampling the probability density of the
// hydrogen 3d_z² orbital over [-18, 18]^3 Bohr radii. The model matrix
// of the grid maps normalized [0,1]^3 positions back to that cube.
func Hydrogen(size int) *Grid {
	g := NewGrid(size, size, size)
	scale := 2 * hydrogenExtent / float64(size-1)
	g.Fill(func(x, y, z int) float64 {
		p := r3.Vec{
			X: float64(x)*scale - hydrogenExtent,
			Y: float64(y)*scale - hydrogenExtent,
			Z: float64(z)*scale - hydrogenExtent,
		}
		return HydrogenDensity(p)
	})
	model := d3.Transform{}.Scale(r3.Vec{}, d3.Elem(2*hydrogenExtent)).Translate(d3.Elem(-hydrogenExtent))
	g.SetTransforms(model, d3.Transform{})
	return g
}

// HydrogenDensity evaluates the 3d_z² orbital probability density at cartesian point p.
func HydrogenDensity(p r3.Vec) float64 {
	r, theta, _ := spherical(p)
	k := 1 / (81 * math.Sqrt(6*math.Pi))
	cos := math.Cos(theta)
	psi := k * r * r * math.Exp(-r/3) * (3*cos*cos - 1)
	return psi * psi
}

// spherical converts p to radius, polar and azimuthal angle.
// Points too close to the origin map to the origin.
func spherical(p r3.Vec) (r, theta, phi float64) {
	r = r3.Norm(p)
	if r < 1e-7 {
		return 0, 0, 0
	}
	return r, math.Acos(p.Z / r), math.Atan2(p.Y, p.X)
}
