package main

import (
	"path/filepath"
	"testing"

	"github.com/soypat/isovis/internal/config"
	"github.com/soypat/isovis/render"
	"github.com/stretchr/testify/require"
)

func TestLoadVolume(t *testing.T) {
	for _, source := range []string{"hydrogen", "sphere", "box"} {
		cfg := config.ExtractConfig{Source: source, Size: 12}
		vol, err := loadVolume(cfg)
		require.NoError(t, err, source)
		require.Equal(t, [3]int{12, 12, 12}, vol.Dims())
		min, max := vol.ValueRange()
		iso := isoValue(cfg, min, max)
		require.True(t, iso > min && iso < max, "%s: iso %g outside (%g, %g)", source, iso, min, max)
		require.NotZero(t, render.MarchingTetrahedra(vol, iso).TriangleCount(), source)
	}
	_, err := loadVolume(config.ExtractConfig{Source: "torus", Size: 4})
	require.Error(t, err)
}

func TestIsoValueOverride(t *testing.T) {
	iso := 0.125
	require.Equal(t, iso, isoValue(config.ExtractConfig{Source: "hydrogen", Iso: &iso}, 0, 1))
	require.Equal(t, 0.5, isoValue(config.ExtractConfig{Source: "hydrogen"}, 0, 1))
}

func TestIsoSlider(t *testing.T) {
	s := isoSlider(config.ExtractConfig{Source: "hydrogen"}, 2, 4)
	require.Equal(t, 2.0, s.Min)
	require.Equal(t, 4.0, s.Max)
	require.InDelta(t, 3, s.Value, 1e-12)
	require.InDelta(t, 2.0/50, s.Increment, 1e-12)

	s = isoSlider(config.ExtractConfig{Source: "hydrogen", IsoStep: 5}, 2, 4)
	require.InDelta(t, 3.2, s.Value, 1e-12)
	s = isoSlider(config.ExtractConfig{Source: "hydrogen", IsoStep: -1000}, 2, 4)
	require.Equal(t, 2.0, s.Value)

	// Signed distance volumes start on the surface.
	s = isoSlider(config.ExtractConfig{Source: "sphere", IsoStep: -2}, -1, 3)
	require.InDelta(t, -0.16, s.Value, 1e-12)
	iso := 0.75
	require.Equal(t, iso, isoValue(config.ExtractConfig{Source: "sphere", Iso: &iso, IsoStep: 4}, -1, 3))
}

func TestRunHydrogen(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runHydrogen([]string{"-config", writeConfig(t, dir), "-size", "8", "-iso-step", "2"}))
}

func TestColorMap(t *testing.T) {
	cm := colorMap([]string{"#000000", "#ffffff"})
	require.Equal(t, 2, cm.Len())
	c := cm.Sample(0.5)
	require.InDelta(t, 0.5, c[0], 1e-6)
}

func TestRunExtract(t *testing.T) {
	dir := t.TempDir()
	stl := filepath.Join(dir, "h.stl")
	png := filepath.Join(dir, "h.png")
	err := runExtract([]string{"-config", writeConfig(t, dir), "-size", "16", "-stl", stl, "-png", png})
	require.NoError(t, err)
	require.FileExists(t, stl)
	require.FileExists(t, png)
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	cfg := config.Default()
	cfg.Preview.Width, cfg.Preview.Height, cfg.Preview.Supersample = 64, 48, 1
	cfg.Logging.Level = "error"
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, cfg.SaveTo(path))
	return path
}
