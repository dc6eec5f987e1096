package render

// localEdge is an edge of a tetrahedron given by its two local vertex indices.
type localEdge [2]uint8

// triangleTemplate lists the three tetrahedron edges a triangle's vertices lie on.
type triangleTemplate [3]localEdge

// caseTable maps a tetrahedron case code to the triangles that approximate
// the isosurface inside it. Triangles are wound so their face normal points
// toward the vertices below the iso value. Complementary codes list the same
// edges in reverse winding order.
var caseTable = [16][]triangleTemplate{
	0: nil,
	1: {{{0, 1}, {0, 3}, {0, 2}}},
	2: {{{1, 0}, {1, 2}, {1, 3}}},
	3: {
		{{0, 2}, {1, 2}, {1, 3}},
		{{0, 2}, {1, 3}, {0, 3}},
	},
	4: {{{2, 3}, {2, 1}, {2, 0}}},
	5: {
		{{0, 3}, {2, 3}, {1, 2}},
		{{0, 3}, {1, 2}, {0, 1}},
	},
	6: {
		{{0, 1}, {0, 2}, {2, 3}},
		{{0, 1}, {2, 3}, {1, 3}},
	},
	7: {{{3, 1}, {3, 0}, {3, 2}}},
	8: {{{3, 1}, {3, 2}, {3, 0}}},
	9: {
		{{0, 1}, {1, 3}, {2, 3}},
		{{0, 1}, {2, 3}, {0, 2}},
	},
	10: {
		{{0, 1}, {1, 2}, {2, 3}},
		{{0, 1}, {2, 3}, {0, 3}},
	},
	11: {{{2, 3}, {2, 0}, {2, 1}}},
	12: {
		{{0, 2}, {0, 3}, {1, 3}},
		{{0, 2}, {1, 3}, {1, 2}},
	},
	13: {{{1, 0}, {1, 3}, {1, 2}}},
	14: {{{0, 1}, {0, 2}, {0, 3}}},
	15: nil,
}

// caseCode classifies the tetrahedron against iso. Bit k is set when
// vertex k lies strictly below iso.
func caseCode(t *tetrahedron, iso float64) uint8 {
	var code uint8
	for k := range t {
		if t[k].value < iso {
			code |= 1 << k
		}
	}
	return code
}
