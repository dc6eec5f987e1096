package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "hydrogen", cfg.Extract.Source)
	require.Equal(t, 64, cfg.Extract.Size)
	require.Nil(t, cfg.Extract.Iso)
	require.Equal(t, "bilinear", cfg.Upsample.Method)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Empty(t, cfg.Logging.LogFile)
	require.NoError(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
extract:
  source: sphere
  size: 32
  iso: 0.25
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	cfg, err := Load(&Flags{Config: path})
	require.NoError(t, err)
	require.Equal(t, "sphere", cfg.Extract.Source)
	require.Equal(t, 32, cfg.Extract.Size)
	require.NotNil(t, cfg.Extract.Iso)
	require.Equal(t, 0.25, *cfg.Extract.Iso)
	require.Equal(t, "debug", cfg.Logging.Level)
	// Unset values keep their defaults.
	require.Equal(t, 800, cfg.Preview.Width)
	require.Equal(t, "bilinear", cfg.Upsample.Method)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("extract:\n  source: box\n  size: 10\n"), 0o644))
	var f Flags
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	f.RegisterExtract(fs)
	err := fs.Parse([]string{"-config", path, "-size", "20", "-iso", "-0.5", "-iso-step", "-3", "-debug"})
	require.NoError(t, err)

	cfg, err := Load(&f)
	require.NoError(t, err)
	require.Equal(t, "box", cfg.Extract.Source)
	require.Equal(t, 20, cfg.Extract.Size)
	require.Equal(t, -0.5, *cfg.Extract.Iso)
	require.Equal(t, -3, cfg.Extract.IsoStep)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestUpsampleFlags(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("upsample", flag.ContinueOnError)
	f.RegisterUpsample(fs)
	require.NoError(t, fs.Parse([]string{"-method", "quadratic", "-width", "64", "-height", "32", "-colormap"}))
	cfg := Default()
	f.apply(cfg)
	require.Equal(t, "quadratic", cfg.Upsample.Method)
	require.Equal(t, 64, cfg.Upsample.Width)
	require.Equal(t, 32, cfg.Upsample.Height)
	require.True(t, f.ColorMap)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(&Flags{Config: filepath.Join(dir, "missing.yaml")})
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("extract: [1, 2"), 0o644))
	_, err = Load(&Flags{Config: bad})
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("extract:\n  source: teapot\n"), 0o644))
	_, err = Load(&Flags{Config: invalid})
	require.ErrorContains(t, err, "teapot")
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cfg := Default()
	iso := 1e-4
	cfg.Extract.Iso = &iso
	cfg.Upsample.ColorMap = []string{"#ff0000", "#0000ff"}
	require.NoError(t, cfg.SaveTo(path))

	got, err := Load(&Flags{Config: path})
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"size":    func(c *Config) { c.Extract.Size = 1 },
		"preview": func(c *Config) { c.Preview.Width = 0 },
		"fov":     func(c *Config) { c.Preview.FOV = 180 },
		"output":  func(c *Config) { c.Upsample.Height = -1 },
	} {
		cfg := Default()
		mutate(cfg)
		require.Error(t, cfg.Validate(), name)
	}
}
