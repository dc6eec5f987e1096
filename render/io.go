package render

import "io"

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like the io.RenderAll implementation.
func RenderAll(r Renderer) ([]Triangle3, error) {
	var err error
	var nt int
	result := make([]Triangle3, 0, 1<<12)
	buf := make([]Triangle3, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

// meshRenderer reads the triangles of a finished Mesh, optionally placed
// in world space through the mesh's transforms.
type meshRenderer struct {
	m     *Mesh
	next  int // next triangle index to be read.
	world bool
}

// NewMeshRenderer returns a Renderer over the triangles of m in the
// normalized volume space they were extracted in.
func NewMeshRenderer(m *Mesh) Renderer {
	return &meshRenderer{m: m}
}

// NewWorldRenderer returns a Renderer over the triangles of m after applying
// the mesh's model and world transforms.
func NewWorldRenderer(m *Mesh) Renderer {
	return &meshRenderer{m: m, world: true}
}

func (r *meshRenderer) ReadTriangles(dst []Triangle3) (n int, err error) {
	if len(dst) == 0 {
		return 0, io.ErrShortBuffer
	}
	total := r.m.TriangleCount()
	T := r.m.World.Mul(r.m.Model)
	for n < len(dst) && r.next < total {
		tri := r.m.Triangle(r.next)
		if r.world {
			for i := range tri {
				tri[i] = T.Transform(tri[i])
			}
		}
		dst[n] = tri
		n++
		r.next++
	}
	if r.next == total {
		return n, io.EOF
	}
	return n, nil
}
