package render_test

import (
	"testing"

	"github.com/soypat/isovis/render"
	"github.com/stretchr/testify/require"
)

func TestIsoRangeRescale(t *testing.T) {
	r := render.NewIsoRange(0, 1)
	require.Equal(t, 0.5, r.Value)
	r.Value = 0.25
	r.Rescale(10, 20)
	require.InDelta(t, 12.5, r.Value, 1e-12)
	require.InDelta(t, 0.2, r.Increment, 1e-12)
	require.Equal(t, 10.0, r.Min)
	require.Equal(t, 20.0, r.Max)

	r.Rescale(-4, 0)
	require.InDelta(t, -3, r.Value, 1e-12)
	require.InDelta(t, 4.0/50, r.Increment, 1e-12)
}

func TestIsoRangeRescaleFromEmpty(t *testing.T) {
	r := render.IsoRange{Min: 3, Max: 3, Value: 3}
	r.Rescale(0, 2)
	require.Equal(t, 1.0, r.Value)
}

func TestIsoRangeStep(t *testing.T) {
	r := render.NewIsoRange(0, 1)
	r.Step(5)
	require.InDelta(t, 0.6, r.Value, 1e-12)
	r.Step(1000)
	require.Equal(t, 1.0, r.Value)
	r.Step(-1000)
	require.Equal(t, 0.0, r.Value)
}
