package tint

import (
	"sync"

	"golang.org/x/image/colornames"
)

// namedTable lazily builds the process-wide named color table. The table
// is read-only after construction, so concurrent lookups need no locking.
var namedTable = sync.OnceValue(buildNamedTable)

// buildNamedTable seeds the table with the SVG 1.1 color names plus
// "transparent". Keys are the lowercase canonical names.
func buildNamedTable() map[string]RGBA {
	m := make(map[string]RGBA, len(colornames.Map)+1)
	for name, c := range colornames.Map {
		m[name] = RGBA{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
			A: float64(c.A) / 255,
		}
	}
	m["transparent"] = RGBA{}
	return m
}

// NamedColor looks up a color by its lowercase canonical name.
// Lookups are case-sensitive; "Red" does not match.
func NamedColor(name string) (RGBA, bool) {
	c, ok := namedTable()[name]
	return c, ok
}
