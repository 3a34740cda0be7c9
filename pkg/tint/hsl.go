package tint

import "math"

// HSL represents a color in hue-saturation-lightness space.
// H is in degrees [0, 360); S and L are percentages in [0, 100].
type HSL struct {
	H, S, L float64
}

// RGBAToHSL converts an RGBA color to HSL. The alpha channel is not part
// of the HSL value; callers carry it separately.
func RGBAToHSL(c RGBA) HSL {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	delta := max - min

	var h, s float64
	l := (max + min) / 2

	if delta != 0 {
		switch max {
		case c.R:
			h = (c.G - c.B) / delta
		case c.G:
			h = (c.B-c.R)/delta + 2
		default:
			h = (c.R-c.G)/delta + 4
		}

		if l == 0 || l == 1 {
			s = 0
		} else {
			s = delta / (1 - math.Abs(2*l-1))
		}

		h *= 60
		if h < 0 {
			h += 360
		}
	}

	return HSL{H: h, S: s * 100, L: l * 100}
}

// RGBA converts an HSL color back to RGBA with the given alpha using the
// chroma/hue-sector formula. Channels are clamped to [0, 1] here; this is
// the only clamp in the darken/lighten round trip, so an out-of-range
// lightness saturates instead of wrapping.
func (hsl HSL) RGBA(alpha float64) RGBA {
	s := hsl.S / 100
	l := hsl.L / 100
	h := hsl.H

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGBA{
		R: clamp01(r + m),
		G: clamp01(g + m),
		B: clamp01(b + m),
		A: alpha,
	}
}

// Darken reduces the color's HSL lightness by pct percent of its current
// value. Darken(c, 0) returns c unchanged.
func Darken(c RGBA, pct float64) RGBA {
	hsl := RGBAToHSL(c)
	hsl.L -= hsl.L * pct / 100
	return hsl.RGBA(c.A)
}

// Lighten increases the color's HSL lightness by pct percent of its
// current value. Lighten(c, 0) returns c unchanged.
func Lighten(c RGBA, pct float64) RGBA {
	hsl := RGBAToHSL(c)
	hsl.L += hsl.L * pct / 100
	return hsl.RGBA(c.A)
}
