// Package tint parses a small color expression language into solid colors
// and linear gradients suitable for rendering.
//
// # Basic Usage
//
// The entry point is [Parse], which turns an expression into a [Color]:
//
//	c, err := tint.Parse("darken(#89b4fa, 15%)")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// An expression holding two or more color tokens becomes a [Gradient]:
//
//	c, _ := tint.Parse("#ff0000, rgb(0, 255, 0), blue, to bottom")
//	g := c.(*tint.Gradient)
//
// # Color Tokens
//
// A token is one of:
//
//   - Hex: #rgb, #rgba, #rrggbb, #rrggbbaa
//   - Functional: rgb(r, g, b) and rgba(r, g, b, a), with byte or
//     percentage channels
//   - Derived: darken(color, amount) and lighten(color, amount)
//   - Named: the SVG 1.1 color keywords plus "transparent"
//   - accent: the operating system accent color
//
// # Gradient Directions
//
// The trailing fields of a gradient expression may carry a direction,
// either a side/corner keyword ("to right", "to top left") or an angle
// ("45deg", "0.25turn"). [ResolveDirection] exposes the same resolution
// for callers that handle directions separately.
//
// # Accent Colors
//
// The "accent" token resolves against the operating system accent color.
// [Parse] renders it in its inactive (muted) form; [ParseActive] selects
// the active form. [SetAccentSource] swaps the lookup, which is what
// tests and headless environments use:
//
//	tint.SetAccentSource(tint.StaticAccent(tint.RGBA{R: 0.2, G: 0.4, B: 0.8, A: 1}))
//	defer tint.SetAccentSource(nil)
//
// # Configuration Values
//
// Theme files describe colors either as expression strings or as
// declarative colors/direction mappings. [Value] models that union and
// decodes from both YAML and JSON; [FromValue] turns it into a [Color].
//
// # Watching Theme Files
//
// [WatchTheme] watches a theme file and invokes a callback on change,
// debounced so editor save storms trigger a single reload:
//
//	w, err := tint.WatchTheme(path, reload, tint.DefaultWatchOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	w.Start()
//	defer w.Stop()
package tint
