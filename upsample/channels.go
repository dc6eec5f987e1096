package upsample

import (
	"errors"
	"image"
	"image/color"
)

// Channels splits img into non premultiplied red, green, blue and alpha
// rasters normalized to [0, 1].
func Channels(img image.Image) [4]*Raster {
	b := img.Bounds()
	var ch [4]*Raster
	for i := range ch {
		ch[i] = NewRaster(b.Dx(), b.Dy())
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
			i := x + y*b.Dx()
			ch[0].Pix[i] = float64(c.R) / 0xffff
			ch[1].Pix[i] = float64(c.G) / 0xffff
			ch[2].Pix[i] = float64(c.B) / 0xffff
			ch[3].Pix[i] = float64(c.A) / 0xffff
		}
	}
	return ch
}

// Merge joins red, green, blue and alpha rasters of equal size into an
// image. Samples are clamped to [0, 1].
func Merge(ch [4]*Raster) (*image.NRGBA64, error) {
	w, h := ch[0].Width, ch[0].Height
	for _, c := range ch[1:] {
		if c.Width != w || c.Height != h {
			return nil, errors.New("channel rasters differ in size")
		}
	}
	img := image.NewNRGBA64(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := x + y*w
			img.SetNRGBA64(x, y, color.NRGBA64{
				R: unitToUint16(ch[0].Pix[i]),
				G: unitToUint16(ch[1].Pix[i]),
				B: unitToUint16(ch[2].Pix[i]),
				A: unitToUint16(ch[3].Pix[i]),
			})
		}
	}
	return img, nil
}

// UpsampleImage resamples img to w by h pixels using method m. Grayscale
// images are resampled as a single channel and color images channel by
// channel.
func UpsampleImage(img image.Image, w, h int, m Method) (image.Image, error) {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		dst, err := Upsample(FromImage(img), w, h, m)
		if err != nil {
			return nil, err
		}
		return dst.Gray16(), nil
	}
	var dst [4]*Raster
	for i, src := range Channels(img) {
		out, err := Upsample(src, w, h, m)
		if err != nil {
			return nil, err
		}
		dst[i] = out
	}
	return Merge(dst)
}

func unitToUint16(v float64) uint16 {
	return uint16(clamp01(v)*0xffff + 0.5)
}
