package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"github.com/soypat/isovis/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	stlHeaderSize = 84
	stlFacetSize  = 50
	// facetTol is the distance under which two single precision vertices coincide.
	facetTol = 1e-12
	// facetNormalTol bounds the difference between a stored and a recomputed normal.
	facetNormalTol = 5e-2
	// trianglesInBuffer is the batch size used when draining a Renderer.
	trianglesInBuffer = 1 << 10
)

var (
	errEmptySTL                 = errors.New("no triangles with area to write")
	errCalculatedNormalMismatch = errors.New("facet normal differs from normal of its vertices")
)

// stlHeader is the fixed prefix of a binary STL file.
type stlHeader struct {
	_     [80]uint8
	Count uint32
}

// CreateSTL drains r into a binary STL file at path. Triangles without
// area at single precision carry no surface and are left out.
func CreateSTL(path string, r Renderer) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	// Facet count is known once r is drained so the header goes in last.
	if _, err = fp.Seek(stlHeaderSize, io.SeekStart); err != nil {
		return err
	}
	bw := bufio.NewWriterSize(fp, stlFacetSize*trianglesInBuffer)
	count, err := writeFacets(bw, r)
	if err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", path, errEmptySTL)
	}
	if _, err = fp.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if err = binary.Write(fp, binary.LittleEndian, &stlHeader{Count: uint32(count)}); err != nil {
		return err
	}
	return fp.Close()
}

// WriteSTL writes model to w in binary STL format. Triangles without
// area at single precision are left out. It fails if none remain.
func WriteSTL(w io.Writer, model []Triangle3) error {
	facets := make([]byte, 0, stlFacetSize*len(model))
	var rec [stlFacetSize]byte
	for _, t := range model {
		if encodeFacet(rec[:], t) {
			facets = append(facets, rec[:]...)
		}
	}
	count := len(facets) / stlFacetSize
	if count == 0 {
		return errEmptySTL
	}
	if err := binary.Write(w, binary.LittleEndian, &stlHeader{Count: uint32(count)}); err != nil {
		return err
	}
	_, err := w.Write(facets)
	return err
}

// writeFacets encodes every triangle r yields and returns how many facets were written.
func writeFacets(w io.Writer, r Renderer) (count int, err error) {
	var (
		batch [trianglesInBuffer]Triangle3
		rec   [stlFacetSize]byte
	)
	for {
		n, rerr := r.ReadTriangles(batch[:])
		for _, t := range batch[:n] {
			if !encodeFacet(rec[:], t) {
				continue
			}
			if _, err = w.Write(rec[:]); err != nil {
				return count, err
			}
			count++
		}
		switch {
		case errors.Is(rerr, io.EOF):
			return count, nil
		case rerr != nil:
			return count, rerr
		case n == 0:
			return count, io.ErrNoProgress
		}
	}
}

// encodeFacet stores t as a facet record in b. It reports false and
// leaves b untouched when t collapses at single precision.
func encodeFacet(b []byte, t Triangle3) bool {
	f := stlFacet{Normal: toF32(t.Normal())}
	for i, v := range t {
		f.Vertex[i] = toF32(v)
	}
	if f.Normal == ([3]float32{}) || f.degenerate(facetTol) {
		return false
	}
	f.put(b)
	return true
}

// readBinarySTL decodes a binary STL stream. A normal mismatch is not
// fatal: all triangles are returned along with errCalculatedNormalMismatch.
func readBinarySTL(r io.Reader) ([]Triangle3, error) {
	var header stlHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("reading STL header: %w", err)
	}
	if header.Count == 0 {
		return nil, errors.New("STL header declares no facets")
	}
	var (
		rec        [stlFacetSize]byte
		f          stlFacet
		mismatches int
		model      = make([]Triangle3, 0, header.Count)
	)
	for i := 0; i < int(header.Count); i++ {
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return nil, fmt.Errorf("facet %d/%d: %w", i+1, header.Count, err)
		}
		f.get(rec[:])
		err := f.validate()
		switch {
		case errors.Is(err, errCalculatedNormalMismatch):
			mismatches++
		case err != nil:
			return nil, fmt.Errorf("facet %d/%d: %w", i+1, header.Count, err)
		}
		model = append(model, f.triangle())
	}
	if mismatches > 0 {
		return model, fmt.Errorf("%d facets: %w", mismatches, errCalculatedNormalMismatch)
	}
	return model, nil
}

// stlFacet is a triangle as laid out in a binary STL record. The
// trailing attribute count is always written as zero.
type stlFacet struct {
	Normal [3]float32
	Vertex [3][3]float32
}

func (f *stlFacet) put(b []byte) {
	_ = b[stlFacetSize-1]
	put3F32(b, f.Normal)
	for i := range f.Vertex {
		put3F32(b[12*(i+1):], f.Vertex[i])
	}
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (f *stlFacet) get(b []byte) {
	_ = b[stlFacetSize-1]
	f.Normal = get3F32(b)
	for i := range f.Vertex {
		f.Vertex[i] = get3F32(b[12*(i+1):])
	}
}

func (f *stlFacet) validate() error {
	if !finite3F32(f.Normal) {
		return errors.New("facet normal is not finite")
	}
	for i := range f.Vertex {
		if !finite3F32(f.Vertex[i]) {
			return fmt.Errorf("facet vertex %d is not finite", i)
		}
	}
	if f.degenerate(facetTol) {
		return errors.New("facet is degenerate")
	}
	// Some writers flip facet orientation so either sign is accepted.
	calc := f.triangle().Normal()
	n := r3From3F32(f.Normal)
	if !d3.EqualWithin(calc, n, facetNormalTol) && !d3.EqualWithin(r3.Scale(-1, calc), n, facetNormalTol) {
		return errCalculatedNormalMismatch
	}
	return nil
}

func (f *stlFacet) degenerate(tol float32) bool {
	v := &f.Vertex
	return equalWithin3F32(v[0], v[1], tol) ||
		equalWithin3F32(v[1], v[2], tol) ||
		equalWithin3F32(v[2], v[0], tol)
}

func (f *stlFacet) triangle() Triangle3 {
	return Triangle3{r3From3F32(f.Vertex[0]), r3From3F32(f.Vertex[1]), r3From3F32(f.Vertex[2])}
}

func toF32(v r3.Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

func r3From3F32(f [3]float32) r3.Vec {
	return r3.Vec{X: float64(f[0]), Y: float64(f[1]), Z: float64(f[2])}
}

func put3F32(b []byte, f [3]float32) {
	for i, c := range f {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(c))
	}
}

func get3F32(b []byte) (f [3]float32) {
	for i := range f {
		f[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return f
}

func finite3F32(f [3]float32) bool {
	for _, c := range f {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func equalWithin3F32(a, b [3]float32, tol float32) bool {
	return math32.Abs(a[0]-b[0]) <= tol &&
		math32.Abs(a[1]-b[1]) <= tol &&
		math32.Abs(a[2]-b[2]) <= tol
}
