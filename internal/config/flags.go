package config

import (
	"flag"
	"strconv"
)

// Flags holds command line overrides. Zero values leave the loaded
// configuration untouched.
type Flags struct {
	Config string
	Debug  bool

	Source  string
	Size    int
	Iso     *float64
	IsoStep int
	STL     string
	PNG     string

	Method   string
	Width    int
	Height   int
	ColorMap bool
}

func (f *Flags) registerCommon(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "enable debug logging")
}

// RegisterExtract defines the extract command flags on fs.
func (f *Flags) RegisterExtract(fs *flag.FlagSet) {
	f.registerCommon(fs)
	fs.StringVar(&f.Source, "source", "", "volume source: hydrogen, sphere or box")
	fs.IntVar(&f.Size, "size", 0, "samples per volume axis")
	fs.Func("iso", "iso value (default middle of value range)", func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		f.Iso = &v
		return nil
	})
	fs.IntVar(&f.IsoStep, "iso-step", 0, "slider increments to move the default iso value by")
	fs.StringVar(&f.STL, "stl", "", "output STL file")
	fs.StringVar(&f.PNG, "png", "", "output preview PNG file")
}

// RegisterUpsample defines the upsample command flags on fs.
func (f *Flags) RegisterUpsample(fs *flag.FlagSet) {
	f.registerCommon(fs)
	fs.StringVar(&f.Method, "method", "", "interpolation method")
	fs.IntVar(&f.Width, "width", 0, "output width in pixels")
	fs.IntVar(&f.Height, "height", 0, "output height in pixels")
	fs.BoolVar(&f.ColorMap, "colormap", false, "colorize output with the configured color map")
}

// RegisterHydrogen defines the hydrogen command flags on fs.
func (f *Flags) RegisterHydrogen(fs *flag.FlagSet) {
	f.registerCommon(fs)
	fs.IntVar(&f.Size, "size", 0, "samples per volume axis")
	fs.IntVar(&f.IsoStep, "iso-step", 0, "slider increments to move the default iso value by")
}

// apply applies the set overrides to cfg.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Source != "" {
		cfg.Extract.Source = f.Source
	}
	if f.Size > 0 {
		cfg.Extract.Size = f.Size
	}
	if f.Iso != nil {
		iso := *f.Iso
		cfg.Extract.Iso = &iso
	}
	if f.IsoStep != 0 {
		cfg.Extract.IsoStep = f.IsoStep
	}
	if f.STL != "" {
		cfg.Extract.STL = f.STL
	}
	if f.PNG != "" {
		cfg.Extract.PNG = f.PNG
	}
	if f.Method != "" {
		cfg.Upsample.Method = f.Method
	}
	if f.Width > 0 {
		cfg.Upsample.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Upsample.Height = f.Height
	}
}
