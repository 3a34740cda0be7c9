// Package platform resolves the operating system accent color.
//
// Each supported OS implements the Source interface over its native
// accent mechanism: the DWM colorization color on Windows, X resources
// and desktop settings on Linux, and the system accent preference on
// macOS. The factory returns the implementation matching the runtime OS.
//
// Sources are compiled per platform; asking for a foreign one yields a
// Source whose Colorization always fails, never a panic. Callers that
// need a fixed color (tests, headless configurations) use Static.
package platform

import "fmt"

// Source supplies the OS accent color as an RGB triple.
type Source interface {
	// Name returns the source identifier (e.g., "linux", "windows", "darwin").
	Name() string

	// Colorization returns the current accent color. It queries the OS
	// on every call; callers cache if they need to.
	Colorization() (r, g, b uint8, err error)
}

// Static is a Source that always reports a fixed color.
type Static struct {
	R, G, B uint8
}

// Name returns "static".
func (Static) Name() string { return "static" }

// Colorization returns the fixed color. It never fails.
func (s Static) Colorization() (uint8, uint8, uint8, error) {
	return s.R, s.G, s.B, nil
}

// unavailableSource stands in for a source compiled out of this build.
type unavailableSource struct {
	name string
}

func (s unavailableSource) Name() string { return s.name }

func (s unavailableSource) Colorization() (uint8, uint8, uint8, error) {
	return 0, 0, 0, fmt.Errorf("%s accent color source not available in this build", s.name)
}
