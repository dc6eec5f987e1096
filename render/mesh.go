package render

import (
	"github.com/soypat/isovis/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultColor is the RGBA color assigned to extracted vertices.
var DefaultColor = [4]float32{0.7, 0.7, 0.7, 1}

// Vertex is a mesh vertex. Positions are in normalized [0,1]^3 volume space.
type Vertex struct {
	Pos    r3.Vec
	Normal r3.Vec
	// TexPos is the 3D texture coordinate, equal to Pos for extracted meshes.
	TexPos r3.Vec
	Color  [4]float32
}

// Mesh is an indexed triangle list. Every three consecutive Indices form
// a triangle wound counter clockwise around its face normal.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	// Model maps volume space to model space, World maps model space to world space.
	Model, World d3.Transform
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Triangle returns the i'th triangle of the mesh in volume space.
func (m *Mesh) Triangle(i int) Triangle3 {
	idx := m.Indices[3*i : 3*i+3]
	return Triangle3{
		m.Vertices[idx[0]].Pos,
		m.Vertices[idx[1]].Pos,
		m.Vertices[idx[2]].Pos,
	}
}

// Triangles returns all triangles of the mesh in volume space.
func (m *Mesh) Triangles() []Triangle3 {
	out := make([]Triangle3, m.TriangleCount())
	for i := range out {
		out[i] = m.Triangle(i)
	}
	return out
}

// Bounds returns the bounding box of the mesh vertices. An empty mesh
// returns an empty box.
func (m *Mesh) Bounds() d3.Box {
	bb := d3.EmptyBox()
	for i := range m.Vertices {
		bb = bb.Include(m.Vertices[i].Pos)
	}
	return bb
}

// meshBuilder accumulates a mesh while sharing vertices between triangles
// that meet on the same volume edge.
type meshBuilder struct {
	vertices []Vertex
	indices  []uint32
	// edges maps a volume edge, given by its two voxel indices with the
	// smaller one first, to the vertex on it.
	edges map[[2]int]uint32
}

func newMeshBuilder() *meshBuilder {
	return &meshBuilder{edges: make(map[[2]int]uint32)}
}

// resolveVertex returns the vertex on the edge between voxels i and j,
// creating it at pos if the edge has not been seen before. ok is false
// when the request is invalid and was dropped.
func (b *meshBuilder) resolveVertex(pos r3.Vec, i, j int) (handle uint32, ok bool) {
	if !assert(i != j, "vertex edge with equal voxel indices") {
		return 0, false
	}
	if i > j {
		i, j = j, i
	}
	key := [2]int{i, j}
	if h, ok := b.edges[key]; ok {
		return h, true
	}
	handle = uint32(len(b.vertices))
	b.vertices = append(b.vertices, Vertex{
		Pos:    pos,
		TexPos: pos,
		Color:  DefaultColor,
	})
	b.edges[key] = handle
	return handle, true
}

// appendTriangle adds the triangle (v0, v1, v2) and accumulates its face
// normal into its vertices.
func (b *meshBuilder) appendTriangle(v0, v1, v2 uint32) {
	n := uint32(len(b.vertices))
	if !assert(v0 < n && v1 < n && v2 < n, "triangle vertex handle out of range") ||
		!assert(v0 != v1 && v1 != v2 && v2 != v0, "triangle with repeated vertex") {
		return
	}
	b.indices = append(b.indices, v0, v1, v2)
	p0, p1, p2 := b.vertices[v0].Pos, b.vertices[v1].Pos, b.vertices[v2].Pos
	normal := d3.UnitOrZero(r3.Cross(r3.Sub(p1, p0), r3.Sub(p2, p0)))
	if normal == (r3.Vec{}) {
		return // zero area.
	}
	for _, h := range [3]uint32{v0, v1, v2} {
		b.vertices[h].Normal = r3.Add(b.vertices[h].Normal, normal)
	}
}

// finalize normalizes the accumulated vertex normals and returns the
// finished mesh. The builder must not be used afterwards.
func (b *meshBuilder) finalize() *Mesh {
	for i := range b.vertices {
		b.vertices[i].Normal = d3.UnitOrZero(b.vertices[i].Normal)
	}
	m := &Mesh{Vertices: b.vertices, Indices: b.indices}
	b.vertices, b.indices, b.edges = nil, nil, nil
	return m
}

// assert reports whether cond holds. Under the isodebug build tag a
// failed assertion panics.
func assert(cond bool, msg string) bool {
	if !cond && isodebug {
		panic("bug: " + msg)
	}
	return cond
}
