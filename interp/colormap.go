package interp

import "github.com/chewxy/math32"

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// ColorMap maps scalars in [0, 1] to colors by linear interpolation between
// evenly spaced base colors.
type ColorMap struct {
	colors []Color
}

// NewColorMap returns a ColorMap over the given base colors, lowest first.
func NewColorMap(colors ...Color) *ColorMap {
	return &ColorMap{colors: append([]Color(nil), colors...)}
}

// Add appends a base color to the high end of the map.
func (m *ColorMap) Add(c Color) { m.colors = append(m.colors, c) }

// Clear removes all base colors.
func (m *ColorMap) Clear() { m.colors = m.colors[:0] }

// Len returns the number of base colors.
func (m *ColorMap) Len() int { return len(m.colors) }

// Sample returns the color at t. A map without colors returns the gray
// {t, t, t, t}. Values of t outside [0, 1] clamp to the end colors.
func (m *ColorMap) Sample(t float32) Color {
	n := len(m.colors)
	switch {
	case n == 0:
		return Color{t, t, t, t}
	case n == 1:
		return m.colors[0]
	case t <= 0:
		return m.colors[0]
	case t >= 1:
		return m.colors[n-1]
	}
	pos := t * float32(n-1)
	i := int(math32.Floor(pos))
	if i >= n-1 {
		// Rounding may land t just below 1 on the last color.
		return m.colors[n-1]
	}
	frac := pos - float32(i)
	lo, hi := m.colors[i], m.colors[i+1]
	var c Color
	for k := range c {
		c[k] = lo[k] + (hi[k]-lo[k])*frac
	}
	return c
}
