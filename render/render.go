package render

import (
	"github.com/soypat/isovis/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer streams triangles of a model.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a 3D triangle in counter clockwise order.
type Triangle3 [3]r3.Vec

// Normal returns the unit normal of the triangle following the right hand rule.
// Triangles without area have a zero normal.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t[1], t[0])
	e2 := r3.Sub(t[2], t[0])
	return d3.UnitOrZero(r3.Cross(e1, e2))
}

// Area returns the surface area of the triangle.
func (t Triangle3) Area() float64 {
	e1 := r3.Sub(t[1], t[0])
	e2 := r3.Sub(t[2], t[0])
	return 0.5 * r3.Norm(r3.Cross(e1, e2))
}

// Degenerate returns true if two vertices of the triangle are within tol of each other.
func (t Triangle3) Degenerate(tol float64) bool {
	return r3.Norm(r3.Sub(t[0], t[1])) <= tol ||
		r3.Norm(r3.Sub(t[1], t[2])) <= tol ||
		r3.Norm(r3.Sub(t[2], t[0])) <= tol
}
