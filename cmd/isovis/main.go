// Command isovis extracts isosurfaces from scalar volumes and resamples
// images.
//
// Usage:
//
//	isovis extract [-config f] [-source hydrogen|sphere|box] [-size n] [-iso v | -iso-step n] [-stl out.stl] [-png out.png]
//	isovis upsample -in in.png -out out.png [-width w] [-height h] [-method bilinear] [-colormap]
//	isovis hydrogen [-size n] [-iso-step n]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/deadsy/sdfx/sdf"
	"github.com/fogleman/fauxgl"
	"github.com/soypat/isovis/interp"
	"github.com/soypat/isovis/internal/config"
	"github.com/soypat/isovis/internal/logger"
	"github.com/soypat/isovis/preview"
	"github.com/soypat/isovis/render"
	"github.com/soypat/isovis/upsample"
	"github.com/soypat/isovis/volume"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	args := os.Args[2:]
	switch os.Args[1] {
	case "extract":
		err = runExtract(args)
	case "upsample":
		err = runUpsample(args)
	case "hydrogen":
		err = runHydrogen(args)
	case "-h", "-help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "isovis:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: isovis <extract|upsample|hydrogen> [flags]")
}

// setup parses the command flags, loads the configuration and builds the logger.
func setup(name string, args []string, register func(*config.Flags, *flag.FlagSet)) (*config.Config, *config.Flags, *zap.Logger, error) {
	var f config.Flags
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	register(&f, fs)
	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}
	cfg, err := config.Load(&f)
	if err != nil {
		return nil, nil, nil, err
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	return cfg, &f, log, nil
}

func runExtract(args []string) error {
	cfg, _, log, err := setup("extract", args, (*config.Flags).RegisterExtract)
	if err != nil {
		return err
	}
	defer log.Sync()

	vol, err := loadVolume(cfg.Extract)
	if err != nil {
		return err
	}
	min, max := vol.ValueRange()
	iso := isoValue(cfg.Extract, min, max)
	log.Info("volume loaded",
		zap.String("source", cfg.Extract.Source),
		zap.Int("size", cfg.Extract.Size),
		zap.Float64("min", min),
		zap.Float64("max", max),
		zap.Float64("iso", iso),
	)
	ex := render.NewExtractor(log)
	mesh := ex.Extract(vol, iso)
	if mesh.TriangleCount() == 0 {
		log.Warn("iso value outside volume range, mesh is empty", zap.Float64("iso", iso))
	}
	fmt.Printf("%d vertices, %d triangles at iso %g\n", len(mesh.Vertices), mesh.TriangleCount(), iso)

	if cfg.Extract.STL != "" {
		if err := render.CreateSTL(cfg.Extract.STL, render.NewWorldRenderer(mesh)); err != nil {
			return fmt.Errorf("writing STL: %w", err)
		}
		log.Info("wrote STL", zap.String("path", cfg.Extract.STL))
	}
	if cfg.Extract.PNG != "" {
		view := previewView(cfg.Preview)
		view.FlipNormals = cfg.Extract.Source != "hydrogen"
		img, err := preview.Render(mesh, view)
		if err != nil {
			return fmt.Errorf("rendering preview: %w", err)
		}
		if err := preview.SavePNG(cfg.Extract.PNG, img); err != nil {
			return err
		}
		log.Info("wrote preview", zap.String("path", cfg.Extract.PNG))
	}
	return nil
}

// loadVolume builds the volume selected by cfg.
func loadVolume(cfg config.ExtractConfig) (*volume.Grid, error) {
	dims := [3]int{cfg.Size, cfg.Size, cfg.Size}
	var (
		s   sdf.SDF3
		err error
	)
	switch cfg.Source {
	case "hydrogen":
		return volume.Hydrogen(cfg.Size), nil
	case "sphere":
		s, err = sdf.Sphere3D(1)
	case "box":
		s, err = sdf.Box3D(sdf.V3{X: 2, Y: 1.5, Z: 1}, 0.25)
	default:
		return nil, fmt.Errorf("unknown volume source %q", cfg.Source)
	}
	if err != nil {
		return nil, err
	}
	return volume.FromSDF(s, dims)
}

// isoSlider maps a slider centered on the unit range onto [min, max] and
// moves it by cfg.IsoStep increments. Signed distance sources start on
// their surface instead of the middle of the range.
func isoSlider(cfg config.ExtractConfig, min, max float64) render.IsoRange {
	r := render.NewIsoRange(0, 1)
	r.Rescale(min, max)
	if cfg.Source != "hydrogen" {
		r.Value = 0
	}
	r.Step(cfg.IsoStep)
	return r
}

// isoValue returns the configured iso value, falling back to the slider position.
func isoValue(cfg config.ExtractConfig, min, max float64) float64 {
	if cfg.Iso != nil {
		return *cfg.Iso
	}
	return isoSlider(cfg, min, max).Value
}

func previewView(cfg config.PreviewConfig) preview.View {
	view := preview.DefaultView()
	view.Width = cfg.Width
	view.Height = cfg.Height
	view.Supersample = cfg.Supersample
	view.FOV = cfg.FOV
	view.Eye = r3.Vec{X: cfg.Eye[0], Y: cfg.Eye[1], Z: cfg.Eye[2]}
	view.Color = cfg.Color
	view.Background = cfg.Background
	return view
}

func runUpsample(args []string) error {
	var in, out string
	cfg, f, log, err := setup("upsample", args, func(f *config.Flags, fs *flag.FlagSet) {
		f.RegisterUpsample(fs)
		fs.StringVar(&in, "in", "", "input image")
		fs.StringVar(&out, "out", "", "output PNG image")
	})
	if err != nil {
		return err
	}
	defer log.Sync()
	if in == "" || out == "" {
		return errors.New("upsample requires -in and -out")
	}
	method, err := upsample.ParseMethod(cfg.Upsample.Method)
	if err != nil {
		return err
	}
	fp, err := os.Open(in)
	if err != nil {
		return err
	}
	defer fp.Close()
	img, _, err := image.Decode(fp)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", in, err)
	}
	var result image.Image
	if f.ColorMap {
		dst, err := upsample.Upsample(upsample.FromImage(img), cfg.Upsample.Width, cfg.Upsample.Height, method)
		if err != nil {
			return err
		}
		result = dst.Colorize(colorMap(cfg.Upsample.ColorMap))
	} else {
		result, err = upsample.UpsampleImage(img, cfg.Upsample.Width, cfg.Upsample.Height, method)
		if err != nil {
			return err
		}
	}
	log.Info("upsampled image",
		zap.Stringer("method", method),
		zap.Stringer("in", img.Bounds().Size()),
		zap.Stringer("out", result.Bounds().Size()),
		zap.Bool("colormap", f.ColorMap),
	)
	return preview.SavePNG(out, result)
}

// colorMap builds a color map from hex color strings.
func colorMap(hex []string) *interp.ColorMap {
	cm := interp.NewColorMap()
	for _, h := range hex {
		c := fauxgl.HexColor(h)
		cm.Add(interp.Color{float32(c.R), float32(c.G), float32(c.B), float32(c.A)})
	}
	return cm
}

func runHydrogen(args []string) error {
	cfg, _, log, err := setup("hydrogen", args, (*config.Flags).RegisterHydrogen)
	if err != nil {
		return err
	}
	defer log.Sync()
	g := volume.Hydrogen(cfg.Extract.Size)
	min, max := g.ValueRange()
	slider := isoSlider(cfg.Extract, min, max)
	log.Debug("sampled hydrogen orbital",
		zap.Int("size", cfg.Extract.Size),
		zap.Float64("increment", slider.Increment),
	)
	fmt.Printf("size %d: density range [%g, %g]\n", cfg.Extract.Size, slider.Min, slider.Max)
	fmt.Printf("iso slider at %g, step %g\n", slider.Value, slider.Increment)
	return nil
}
