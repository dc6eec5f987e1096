// Package interp implements the scalar interpolation kernels used to
// resample images.
//
// Two dimensional kernels take the values at the corners of a unit
// square ordered as
//
//	2------3
//	|      |
//	|      |
//	0------1
//
// where corner 1 lies at x=1 and corner 2 at y=1.
package interp

import (
	"gonum.org/v1/gonum/mat"
)

// Float is the set of types the kernels interpolate.
type Float interface {
	~float32 | ~float64
}

// Linear interpolates between a and b. x is clamped to [0, 1].
func Linear[T Float](a, b T, x float64) T {
	if x <= 0 {
		return a
	}
	if x >= 1 {
		return b
	}
	return T((1-x)*float64(a) + x*float64(b))
}

// Bilinear interpolates the corner values v at (x, y) in the unit square.
func Bilinear[T Float](v [4]T, x, y float64) T {
	bottom := Linear(v[0], v[1], x)
	top := Linear(v[2], v[3], x)
	return Linear(bottom, top, y)
}

// Quadratic interpolates the values a, b and c placed at x=0, x=0.5
// and x=1 with the unique parabola through them.
func Quadratic[T Float](a, b, c T, x float64) T {
	return T((1-x)*(1-2*x)*float64(a) + 4*x*(1-x)*float64(b) + x*(2*x-1)*float64(c))
}

// BiQuadratic interpolates a 3x3 grid of values at (x, y) in the unit square.
// Rows are stored bottom to top:
//
//	6---7---8
//	3---4---5
//	0---1---2
func BiQuadratic[T Float](v [9]T, x, y float64) T {
	r0 := Quadratic(v[0], v[1], v[2], x)
	r1 := Quadratic(v[3], v[4], v[5], x)
	r2 := Quadratic(v[6], v[7], v[8], x)
	return Quadratic(r0, r1, r2, y)
}

// squareCorners are the positions of the corners of the unit square.
var squareCorners = [4][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// Barycentric interpolates the corner values v at (x, y) over one of the
// two triangles the diagonal from corner 1 to corner 2 splits the unit
// square into. x and y are clamped to [0, 1].
func Barycentric[T Float](v [4]T, x, y float64) T {
	x, y = clamp01(x), clamp01(y)
	tri := [3]int{0, 1, 2}
	if x+y > 1 {
		tri = [3]int{3, 2, 1}
	}
	a, b, c := squareCorners[tri[0]], squareCorners[tri[1]], squareCorners[tri[2]]
	p := [2]float64{x, y}
	area := signedArea(a, b, c)
	wa := signedArea(p, b, c) / area
	wb := signedArea(a, p, c) / area
	wc := signedArea(a, b, p) / area
	return T(wa*float64(v[tri[0]]) + wb*float64(v[tri[1]]) + wc*float64(v[tri[2]]))
}

// signedArea returns the signed area of triangle (a, b, c), positive when
// the corners are counter clockwise.
func signedArea(a, b, c [2]float64) float64 {
	m := mat.NewDense(3, 3, []float64{
		a[0], a[1], 1,
		b[0], b[1], 1,
		c[0], c[1], 1,
	})
	return 0.5 * mat.Det(m)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
