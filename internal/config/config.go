// Package config loads window border themes from Lua and YAML files.
//
// A theme names the colors painted on focused and unfocused window
// borders plus the border geometry. Both formats describe the same
// structure; the Lua form assigns a table to the tint.theme global
// while the YAML form nests the same fields under a theme key.
package config

import (
	"github.com/tintkit/tint/pkg/tint"
)

// Theme holds the window border theme settings.
type Theme struct {
	// ActiveColor paints the border of the focused window.
	ActiveColor tint.Value

	// InactiveColor paints the borders of unfocused windows.
	InactiveColor tint.Value

	// Width is the border thickness in pixels.
	Width int

	// Offset moves the border relative to the window edge, in pixels.
	// Negative values draw inside the window bounds.
	Offset int

	// Radius rounds the border corners, in pixels.
	Radius float64
}

// Active resolves the focused border color. Accent tokens take their
// active form.
func (t *Theme) Active() (tint.Color, error) {
	return tint.FromValueActive(t.ActiveColor, true)
}

// Inactive resolves the unfocused border color. Accent tokens take
// their muted inactive form.
func (t *Theme) Inactive() (tint.Color, error) {
	return tint.FromValueActive(t.InactiveColor, false)
}
