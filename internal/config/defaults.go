package config

import "github.com/tintkit/tint/pkg/tint"

// Default values for theme options.
const (
	// DefaultWidth is the default border thickness in pixels.
	DefaultWidth = 8
	// DefaultOffset is the default border offset in pixels.
	DefaultOffset = -1
	// DefaultRadius is the default corner radius in pixels.
	DefaultRadius = 0.0
	// DefaultColorExpr is the color expression used when none is configured.
	// The accent token renders differently for active and inactive borders,
	// so one expression covers both defaults.
	DefaultColorExpr = "accent"
)

// DefaultTheme returns a Theme with sensible default values.
func DefaultTheme() Theme {
	return Theme{
		ActiveColor:   tint.ValueExpr(DefaultColorExpr),
		InactiveColor: tint.ValueExpr(DefaultColorExpr),
		Width:         DefaultWidth,
		Offset:        DefaultOffset,
		Radius:        DefaultRadius,
	}
}
