package upsample

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/nfnt/resize"
	"github.com/soypat/isovis/interp"
	"gonum.org/v1/gonum/spatial/r2"
)

// Method selects the interpolation used by Upsample.
type Method int

const (
	// PiecewiseConstant copies the nearest input sample.
	PiecewiseConstant Method = iota
	// Bilinear interpolates the 2x2 samples around a point.
	Bilinear
	// Quadratic interpolates a 3x3 sample neighborhood with bi-quadratic kernels.
	Quadratic
	// Barycentric interpolates over a triangle of the 2x2 samples around a point.
	Barycentric
	// Lanczos resamples with a Lanczos3 filter.
	Lanczos
)

var methodNames = [...]string{
	PiecewiseConstant: "piecewiseconstant",
	Bilinear:          "bilinear",
	Quadratic:         "quadratic",
	Barycentric:       "barycentric",
	Lanczos:           "lanczos",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ErrUnknownMethod is returned for interpolation methods that do not exist.
var ErrUnknownMethod = errors.New("unknown interpolation method")

// ParseMethod returns the Method named s. Names are case insensitive.
func ParseMethod(s string) (Method, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range methodNames {
		if s == name {
			return Method(m), nil
		}
	}
	if s == "nearest" {
		return PiecewiseConstant, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMethod, s)
}

// ConvertCoordinate maps output pixel coordinates to the continuous
// coordinates of the input image they sample.
func ConvertCoordinate(out image.Point, inSize, outSize image.Point) r2.Vec {
	return r2.Vec{
		X: float64(out.X) * float64(inSize.X) / float64(outSize.X),
		Y: float64(out.Y) * float64(inSize.Y) / float64(outSize.Y),
	}
}

// Upsample returns src resampled to w by h samples using method m.
func Upsample(src *Raster, w, h int, m Method) (*Raster, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.New("output dimensions must be positive")
	}
	if src == nil || src.Width <= 0 || src.Height <= 0 || len(src.Pix) != src.Width*src.Height {
		return nil, errors.New("invalid source raster")
	}
	if m == Lanczos {
		img := resize.Resize(uint(w), uint(h), src.Gray16(), resize.Lanczos3)
		return FromImage(img), nil
	}
	var sample func(src *Raster, p r2.Vec) float64
	switch m {
	case PiecewiseConstant:
		sample = samplePiecewiseConstant
	case Bilinear:
		sample = sampleBilinear
	case Quadratic:
		sample = sampleQuadratic
	case Barycentric:
		sample = sampleBarycentric
	default:
		return nil, fmt.Errorf("%w %v", ErrUnknownMethod, m)
	}
	dst := NewRaster(w, h)
	inSize := image.Pt(src.Width, src.Height)
	outSize := image.Pt(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := ConvertCoordinate(image.Pt(x, y), inSize, outSize)
			dst.Pix[x+y*w] = sample(src, p)
		}
	}
	return dst, nil
}

func samplePiecewiseConstant(src *Raster, p r2.Vec) float64 {
	return src.At(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// cellAround returns the sample whose pixel center lies below and left of
// p and the offset of p from that center.
func cellAround(p r2.Vec) (x, y int, fx, fy float64) {
	c := r2.Sub(p, r2.Vec{X: 0.5, Y: 0.5})
	bx, by := math.Floor(c.X), math.Floor(c.Y)
	return int(bx), int(by), c.X - bx, c.Y - by
}

func quad(src *Raster, x, y int) [4]float64 {
	return [4]float64{
		src.At(x, y), src.At(x+1, y),
		src.At(x, y+1), src.At(x+1, y+1),
	}
}

func sampleBilinear(src *Raster, p r2.Vec) float64 {
	x, y, fx, fy := cellAround(p)
	return interp.Bilinear(quad(src, x, y), fx, fy)
}

func sampleBarycentric(src *Raster, p r2.Vec) float64 {
	x, y, fx, fy := cellAround(p)
	return interp.Barycentric(quad(src, x, y), fx, fy)
}

// sampleQuadratic fits the 3x3 samples starting at the cell around p. The
// kernel nodes lie at 0, 0.5 and 1 so the offsets are halved.
func sampleQuadratic(src *Raster, p r2.Vec) float64 {
	x, y, fx, fy := cellAround(p)
	var v [9]float64
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			v[3*j+i] = src.At(x+i, y+j)
		}
	}
	return interp.BiQuadratic(v, fx/2, fy/2)
}
