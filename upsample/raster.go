// Package upsample resizes images with the interpolation kernels of
// package interp. Rasters hold one channel; color images are split into
// channels and resampled independently.
package upsample

import (
	"image"
	"image/color"

	"github.com/soypat/isovis/interp"
)

// Raster is a single channel image with samples stored row by row.
type Raster struct {
	Width, Height int
	Pix           []float64
}

// NewRaster returns a zeroed w by h raster.
func NewRaster(w, h int) *Raster {
	if w <= 0 || h <= 0 {
		panic("raster dimensions must be positive")
	}
	return &Raster{Width: w, Height: h, Pix: make([]float64, w*h)}
}

// At returns the sample at (x, y). Coordinates outside the raster are
// clamped to the nearest edge.
func (r *Raster) At(x, y int) float64 {
	x = clampInt(x, 0, r.Width-1)
	y = clampInt(y, 0, r.Height-1)
	return r.Pix[x+y*r.Width]
}

// Set sets the sample at (x, y).
func (r *Raster) Set(x, y int, v float64) {
	r.Pix[x+y*r.Width] = v
}

// FromImage returns the luminance of img as a raster normalized to [0, 1].
// Use Channels to keep the color of img.
func FromImage(img image.Image) *Raster {
	b := img.Bounds()
	r := NewRaster(b.Dx(), b.Dy())
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			g := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			r.Pix[x+y*r.Width] = float64(g.Y) / 0xffff
		}
	}
	return r
}

// Gray16 returns the raster as a 16 bit grayscale image. Samples are
// clamped to [0, 1].
func (r *Raster) Gray16() *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			img.SetGray16(x, y, color.Gray16{Y: unitToUint16(r.Pix[x+y*r.Width])})
		}
	}
	return img
}

// Colorize maps every sample through cm.
func (r *Raster) Colorize(cm *interp.ColorMap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			c := cm.Sample(float32(r.Pix[x+y*r.Width]))
			img.SetRGBA(x, y, color.RGBA{
				R: unitToByte(c[0]),
				G: unitToByte(c[1]),
				B: unitToByte(c[2]),
				A: unitToByte(c[3]),
			})
		}
	}
	return img
}

func unitToByte(f float32) uint8 {
	return uint8(clamp01(float64(f))*0xff + 0.5)
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

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
