// Package preview rasterizes extracted meshes to images on the CPU.
package preview

import (
	"errors"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/isovis/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the camera and shading of a preview.
type View struct {
	Width, Height int // output size in pixels.
	Supersample   int // rendering scale factor for antialiasing.
	FOV           float64
	Near, Far     float64
	Eye           r3.Vec // camera position.
	Center        r3.Vec // view center position.
	Up            r3.Vec
	Light         r3.Vec // light direction.
	Color         string // object color in hex.
	Background    string
	// FlipNormals renders the side of the surface facing samples above
	// the iso value, as needed for signed distance volumes.
	FlipNormals bool
}

// DefaultView returns a view looking at the mesh from a corner.
func DefaultView() View {
	return View{
		Width:       800,
		Height:      600,
		Supersample: 2,
		FOV:         30,
		Near:        1,
		Far:         10,
		Eye:         r3.Vec{X: 3, Y: 2, Z: 4},
		Up:          r3.Vec{Z: 1},
		Light:       r3.Vec{X: -0.75, Y: 1, Z: 0.25},
		Color:       "#468966",
		Background:  "#FFF8E3",
	}
}

// Render draws m with Phong shading. The mesh is placed with its model and
// world transforms and then fit in a bi-unit cube centered at the origin.
func Render(m *render.Mesh, v View) (image.Image, error) {
	if m == nil || m.TriangleCount() == 0 {
		return nil, errors.New("empty mesh")
	}
	if v.Width <= 0 || v.Height <= 0 {
		return nil, errors.New("preview dimensions must be positive")
	}
	if v.Supersample <= 0 {
		v.Supersample = 1
	}
	mesh := toFauxgl(m, v.FlipNormals)
	mesh.BiUnitCube()

	w, h := v.Width*v.Supersample, v.Height*v.Supersample
	ctx := fauxgl.NewContext(w, h)
	ctx.ClearColorBufferWith(fauxgl.HexColor(v.Background))
	aspect := float64(v.Width) / float64(v.Height)
	eye := vec(v.Eye)
	matrix := fauxgl.LookAt(eye, vec(v.Center), vec(v.Up)).Perspective(v.FOV, aspect, v.Near, v.Far)
	shader := fauxgl.NewPhongShader(matrix, vec(v.Light).Normalize(), eye)
	shader.ObjectColor = fauxgl.HexColor(v.Color)
	ctx.Shader = shader
	ctx.DrawMesh(mesh)
	// downsample image for antialiasing
	img := resize.Resize(uint(v.Width), uint(v.Height), ctx.Image(), resize.Bilinear)
	return img, nil
}

// SavePNG writes img to a PNG file at path.
func SavePNG(path string, img image.Image) error {
	return fauxgl.SavePNG(path, img)
}

func toFauxgl(m *render.Mesh, flip bool) *fauxgl.Mesh {
	T := m.World.Mul(m.Model)
	tris := make([]*fauxgl.Triangle, 0, m.TriangleCount())
	for i := 0; i < len(m.Indices); i += 3 {
		var vs [3]fauxgl.Vertex
		for j := range vs {
			mv := m.Vertices[m.Indices[i+j]]
			n := vec(mv.Normal)
			if flip {
				n = n.Negate()
			}
			vs[j] = fauxgl.Vertex{
				Position: vec(T.Transform(mv.Pos)),
				Normal:   n,
				Color:    fauxgl.Color{R: float64(mv.Color[0]), G: float64(mv.Color[1]), B: float64(mv.Color[2]), A: float64(mv.Color[3])},
			}
		}
		if flip {
			vs[1], vs[2] = vs[2], vs[1]
		}
		tris = append(tris, fauxgl.NewTriangle(vs[0], vs[1], vs[2]))
	}
	return fauxgl.NewTriangleMesh(tris)
}

func vec(v r3.Vec) fauxgl.Vector {
	return fauxgl.V(v.X, v.Y, v.Z)
}
