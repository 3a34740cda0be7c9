package tint

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// NRGBA converts c to an 8-bit non-premultiplied color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(clamp01(c.R) * 255)),
		G: uint8(math.Round(clamp01(c.G) * 255)),
		B: uint8(math.Round(clamp01(c.B) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

// Color converts c to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return c.NRGBA()
}

// Hex encodes c as a hex string with # prefix.
// Format: #rrggbb, or #rrggbbaa when the color is not fully opaque.
func (c RGBA) Hex() string {
	r := uint8(math.Round(clamp01(c.R) * 255))
	g := uint8(math.Round(clamp01(c.G) * 255))
	b := uint8(math.Round(clamp01(c.B) * 255))
	a := uint8(math.Round(clamp01(c.A) * 255))
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// clamp01 restricts a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// defaultRGBA is the fallback color for tokens that match no known shape.
func defaultRGBA() RGBA {
	return RGBA{A: 1}
}

// Stop is a color at a fixed position along a gradient.
// Position is in the range [0, 1].
type Stop struct {
	Position float64
	Color    RGBA
}

// Coordinates are the normalized start and end points of a gradient's
// progression line. Each component is a fraction of a bounding box in
// [0, 1]; consumers scale them to pixel space.
type Coordinates struct {
	Start [2]float64 `yaml:"start" json:"start"`
	End   [2]float64 `yaml:"end" json:"end"`
}

// Color is a parsed color value: either a *Solid or a *Gradient.
// This is a sealed interface - only types in this package implement it.
type Color interface {
	// colorMarker is an unexported method that seals this interface.
	colorMarker()

	// Opacity returns the rendering opacity in [0, 1].
	Opacity() float64

	// SetOpacity sets the rendering opacity, clamped to [0, 1].
	SetOpacity(opacity float64)
}

// Solid is a single-color value with a rendering opacity.
type Solid struct {
	// Color is the RGBA value of the solid color.
	Color RGBA

	opacity float64
}

// NewSolid creates a fully opaque solid color.
func NewSolid(c RGBA) *Solid {
	return &Solid{Color: c, opacity: 1}
}

func (s *Solid) colorMarker() {}

// Opacity implements Color.
func (s *Solid) Opacity() float64 { return s.opacity }

// SetOpacity implements Color.
func (s *Solid) SetOpacity(opacity float64) { s.opacity = clamp01(opacity) }

// Gradient is a linear multi-stop color value. Stops are ordered by
// increasing position; Direction holds the normalized progression line.
type Gradient struct {
	// Stops are the gradient's color stops in increasing position order.
	Stops []Stop

	// Direction is the gradient's progression line in unit-square
	// coordinates.
	Direction Coordinates

	opacity float64
}

// NewGradient creates a fully opaque gradient from stops and a direction.
func NewGradient(stops []Stop, direction Coordinates) *Gradient {
	return &Gradient{Stops: stops, Direction: direction, opacity: 1}
}

func (g *Gradient) colorMarker() {}

// Opacity implements Color.
func (g *Gradient) Opacity() float64 { return g.opacity }

// SetOpacity implements Color.
func (g *Gradient) SetOpacity(opacity float64) { g.opacity = clamp01(opacity) }

// At returns the interpolated color at the given position along the
// gradient. Positions outside [0, 1] clamp to the first or last stop.
func (g *Gradient) At(position float64) RGBA {
	if len(g.Stops) == 0 {
		return RGBA{}
	}
	if len(g.Stops) == 1 || position <= g.Stops[0].Position {
		return g.Stops[0].Color
	}
	last := g.Stops[len(g.Stops)-1]
	if position >= last.Position {
		return last.Color
	}

	var i int
	for i = 1; i < len(g.Stops); i++ {
		if g.Stops[i].Position >= position {
			break
		}
	}

	prev := g.Stops[i-1]
	next := g.Stops[i]
	span := next.Position - prev.Position
	if span == 0 {
		return prev.Color
	}
	return prev.Color.Lerp(next.Color, (position-prev.Position)/span)
}
